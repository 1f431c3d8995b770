package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
	// No omitempty: an empty result list must serialize as [], not vanish.
	Data interface{} `json:"data"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service errors onto the HTTP surface. Client input
// errors carry the offending values; infrastructure errors are logged and
// surfaced as opaque 500s.
func HandleServiceError(c *gin.Context, err error) {
	var dup *DuplicateDayNumberError
	var missing *MissingReferenceError

	switch {
	case errors.As(err, &dup):
		RespondError(c, http.StatusBadRequest, dup.Error())
	case errors.As(err, &missing):
		RespondError(c, http.StatusBadRequest, missing.Error())
	case errors.Is(err, ErrConstraintViolation):
		RespondError(c, http.StatusBadRequest, "Database constraint violation. Check input data.")
	case errors.Is(err, ErrItineraryNotFound):
		RespondError(c, http.StatusNotFound, "Itinerary not found")
	case errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusUnprocessableEntity, "Duration must be between 2 and 8 nights")
	case errors.Is(err, ErrInvalidPagination):
		RespondError(c, http.StatusBadRequest, "Invalid pagination parameters")
	case errors.Is(err, ErrValidationLookup):
		log.Printf("Validation lookup error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to validate related itinerary items")
	case errors.Is(err, ErrPostCommitRead):
		log.Printf("Post-commit read error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Itinerary created, but failed to retrieve full details for response")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
