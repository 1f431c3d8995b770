package db_models

type Transfer struct {
	ID              uint   `gorm:"primaryKey"`
	Description     string `gorm:"not null"` // e.g. Airport Pickup, Ferry to Krabi
	FromLocation    string
	ToLocation      string
	Method          string // e.g. Private Car, Ferry, Speedboat
	DurationMinutes *int
}

func (Transfer) TableName() string { return "transfers" }
