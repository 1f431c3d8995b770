package db_models

type Accommodation struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"not null;index"`
	Location string  `gorm:"index"`
	Type     *string // e.g. Hotel, Villa, Resort
	Rating   *int    // star rating

	DayAssignments []DayAccommodation `gorm:"foreignKey:AccommodationID"`
}

func (Accommodation) TableName() string { return "accommodations" }
