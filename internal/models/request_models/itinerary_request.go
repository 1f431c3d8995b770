package request_models

type CreateItineraryRequest struct {
	Name           string    `json:"name" binding:"required"`
	DurationNights int       `json:"duration_nights" binding:"required,gt=0"`
	Region         string    `json:"region"`
	Days           []DaySpec `json:"days" binding:"dive"`
}

type DaySpec struct {
	DayNumber       int     `json:"day_number" binding:"gte=1"`
	DaySummary      *string `json:"day_summary"`
	AccommodationID *uint   `json:"accommodation_id"`
	ActivityIDs     []uint  `json:"activity_ids"`
	TransferIDs     []uint  `json:"transfer_ids"`
}
