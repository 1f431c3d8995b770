package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrInvalidDuration     = errors.New("duration out of range")
	ErrInvalidPagination   = errors.New("invalid pagination parameters")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrValidationLookup    = errors.New("failed to validate related itinerary items")
	ErrPostCommitRead      = errors.New("itinerary created but could not be re-read")
	ErrDatabaseError       = errors.New("database error")
)

// DuplicateDayNumberError reports every day_number that appears more than
// once in a creation request.
type DuplicateDayNumberError struct {
	DayNumbers []int
}

func (e *DuplicateDayNumberError) Error() string {
	nums := make([]string, 0, len(e.DayNumbers))
	for _, n := range e.DayNumbers {
		nums = append(nums, fmt.Sprintf("%d", n))
	}
	return "Duplicate day numbers found in the itinerary request: " + strings.Join(nums, ", ")
}

// MissingReferenceError lists every referenced catalog ID that does not
// exist, grouped by entity kind.
type MissingReferenceError struct {
	Accommodations []uint
	Activities     []uint
	Transfers      []uint
}

func (e *MissingReferenceError) Error() string {
	var parts []string
	if len(e.Accommodations) > 0 {
		parts = append(parts, "Accommodations not found with IDs: "+joinIDs(e.Accommodations))
	}
	if len(e.Activities) > 0 {
		parts = append(parts, "Activities not found with IDs: "+joinIDs(e.Activities))
	}
	if len(e.Transfers) > 0 {
		parts = append(parts, "Transfers not found with IDs: "+joinIDs(e.Transfers))
	}
	return strings.Join(parts, "; ")
}

func joinIDs(ids []uint) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, fmt.Sprintf("%d", id))
	}
	return strings.Join(out, ", ")
}
