package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

const (
	defaultListSkip  = 0
	defaultListLimit = 100
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary godoc
// @Summary Create a new travel itinerary
// @Description Creates an itinerary with its day structure. Referenced accommodations, activities and transfers must already exist in the catalog.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary metadata and day specs"
// @Success 201 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse "Duplicate day numbers or missing referenced IDs"
// @Failure 422 {object} utils.APIResponse "Schema violation"
// @Router /itineraries/ [post]
func (ic *ItineraryController) CreateItinerary(c *gin.Context) {

	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	created, err := ic.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Itinerary created successfully")
}

// ListItineraries godoc
// @Summary List all itineraries
// @Description Paginated summary list of itineraries, both recommended and user-created, ordered by id.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Max rows to return" default(100)
// @Success 200 {array} response_models.ItinerarySummaryResponse
// @Router /itineraries/ [get]
func (ic *ItineraryController) ListItineraries(c *gin.Context) {

	skipStr := c.DefaultQuery("skip", strconv.Itoa(defaultListSkip))
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultListLimit))

	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid skip parameter")
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit parameter")
		return
	}

	itineraries, err := ic.itineraryService.ListItineraries(c.Request.Context(), skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryByID godoc
// @Summary Get details of a specific itinerary
// @Description Full day-by-day detail including accommodation links, ordered activities and transfers.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param itineraryId path int true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId} [get]
func (ic *ItineraryController) GetItineraryByID(c *gin.Context) {

	idStr := c.Param("itineraryId")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	itinerary, err := ic.itineraryService.GetItineraryByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary details fetched successfully")
}

// GetRecommendedItineraries godoc
// @Summary Get recommended itineraries by duration
// @Description Curated itineraries whose duration_nights equals the requested value. Duration must be between 2 and 8 nights.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param duration query int true "Number of nights (2-8)"
// @Success 200 {array} response_models.ItineraryDetailResponse
// @Failure 422 {object} utils.APIResponse "Duration outside 2-8"
// @Router /itineraries/recommended/ [get]
func (ic *ItineraryController) GetRecommendedItineraries(c *gin.Context) {

	durationStr := c.Query("duration")
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Duration must be an integer between 2 and 8")
		return
	}

	itineraries, err := ic.itineraryService.GetRecommendedByDuration(c.Request.Context(), duration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Recommended itineraries fetched successfully")
}
