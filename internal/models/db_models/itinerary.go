package db_models

import (
	"time"
)

type Itinerary struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"index;not null"`
	DurationNights int    `gorm:"not null"`
	Region         string `gorm:"index"`
	IsRecommended  bool   `gorm:"index;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Days []Day `gorm:"constraint:OnDelete:CASCADE"`
}

func (Itinerary) TableName() string { return "itineraries" }
