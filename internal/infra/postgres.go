package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbm "itinera/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError turns driver constraint failures into
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&dbm.Accommodation{},
		&dbm.Activity{},
		&dbm.Transfer{},
		&dbm.Itinerary{},
		&dbm.Day{},
		&dbm.DayAccommodation{},
		&dbm.DayActivity{},
		&dbm.DayTransfer{},
	)
}
