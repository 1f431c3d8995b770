package db_models

// Day numbers are unique per itinerary; the composite index backs the
// in-request duplicate check against concurrent writers.
type Day struct {
	ID          uint    `gorm:"primaryKey"`
	ItineraryID uint    `gorm:"not null;uniqueIndex:uq_itinerary_day_number"`
	DayNumber   int     `gorm:"not null;uniqueIndex:uq_itinerary_day_number"`
	DaySummary  *string `gorm:"type:text"`

	AccommodationLink *DayAccommodation `gorm:"constraint:OnDelete:CASCADE"`
	Activities        []DayActivity     `gorm:"constraint:OnDelete:CASCADE"`
	Transfers         []DayTransfer     `gorm:"constraint:OnDelete:CASCADE"`
}

func (Day) TableName() string { return "days" }

// One accommodation per day at most; day_id is unique.
type DayAccommodation struct {
	ID              uint `gorm:"primaryKey"`
	DayID           uint `gorm:"uniqueIndex;not null"`
	AccommodationID uint `gorm:"not null"`

	Accommodation Accommodation
}

func (DayAccommodation) TableName() string { return "day_accommodations" }

// Join row for Day <-> Activity. Order is the position of the activity in the
// day as submitted at creation time, starting at 0.
type DayActivity struct {
	DayID      uint `gorm:"primaryKey"`
	ActivityID uint `gorm:"primaryKey"`
	Order      int  `gorm:"column:order;not null;default:0"`

	Activity Activity
}

func (DayActivity) TableName() string { return "day_activity_association" }

// Join row for Day <-> Transfer, ordered the same way.
type DayTransfer struct {
	DayID      uint `gorm:"primaryKey"`
	TransferID uint `gorm:"primaryKey"`
	Order      int  `gorm:"column:order;not null;default:0"`

	Transfer Transfer
}

func (DayTransfer) TableName() string { return "day_transfer_association" }
