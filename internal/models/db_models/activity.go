package db_models

type Activity struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"not null;index"`
	Description   *string `gorm:"type:text"`
	Location      string  `gorm:"index"`
	DurationHours *int
	Type          *string // e.g. Tour, Sightseeing, Beach, Adventure
}

func (Activity) TableName() string { return "activities" }
