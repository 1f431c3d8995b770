package response_models

import "time"

// Summary shape used by the list endpoint; no day detail.
type ItinerarySummaryResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	DurationNights int    `json:"duration_nights"`
	Region         string `json:"region"`
	IsRecommended  bool   `json:"is_recommended"`
}

// Fully hydrated itinerary returned by create, detail and recommended lookups.
type ItineraryDetailResponse struct {
	ID             uint                `json:"id"`
	Name           string              `json:"name"`
	DurationNights int                 `json:"duration_nights"`
	Region         string              `json:"region"`
	IsRecommended  bool                `json:"is_recommended"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Days           []DayDetailResponse `json:"days"`
}

type DayDetailResponse struct {
	ID                uint                       `json:"id"`
	DayNumber         int                        `json:"day_number"`
	DaySummary        *string                    `json:"day_summary"`
	AccommodationLink *AccommodationLinkResponse `json:"accommodation_link"`
	Activities        []ActivityResponse         `json:"activities"`
	Transfers         []TransferResponse         `json:"transfers"`
}

type AccommodationLinkResponse struct {
	Accommodation AccommodationResponse `json:"accommodation"`
}

type AccommodationResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Type     *string `json:"type"`
	Rating   *int    `json:"rating"`
}

type ActivityResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Location      string  `json:"location"`
	DurationHours *int    `json:"duration_hours"`
	Type          *string `json:"type"`
}

type TransferResponse struct {
	ID              uint   `json:"id"`
	Description     string `json:"description"`
	FromLocation    string `json:"from_location"`
	ToLocation      string `json:"to_location"`
	Method          string `json:"method"`
	DurationMinutes *int   `json:"duration_minutes"`
}
