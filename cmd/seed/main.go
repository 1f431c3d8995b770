package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"itinera/internal/infra"
	dbm "itinera/internal/models/db_models"
	"itinera/internal/repositories"
)

// Seeds the Phuket & Krabi catalog and the curated recommended itineraries.
// Drops and recreates the schema, so only run against a disposable database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := resetSchema(db); err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeded successfully")
}

func resetSchema(db *gorm.DB) error {
	log.Println("Dropping and recreating database tables...")
	err := db.Migrator().DropTable(
		&dbm.DayActivity{},
		&dbm.DayTransfer{},
		&dbm.DayAccommodation{},
		&dbm.Day{},
		&dbm.Itinerary{},
		&dbm.Accommodation{},
		&dbm.Activity{},
		&dbm.Transfer{},
	)
	if err != nil {
		return err
	}
	return infra.MigrateSchema(db)
}

func seed(db *gorm.DB) error {
	ctx := context.Background()
	catalog := repositories.NewCatalogRepository(db)
	itineraries := repositories.NewItineraryRepository(db)

	log.Println("Seeding base data (Accommodations, Activities, Transfers)...")

	accPhuketBeach := &dbm.Accommodation{Name: "Phuket Marriott Resort & Spa, Merlin Beach", Location: "Patong, Phuket", Type: strPtr("Resort"), Rating: intPtr(5)}
	accPhuketTown := &dbm.Accommodation{Name: "Casa Blanca Boutique Hotel", Location: "Phuket Town, Phuket", Type: strPtr("Hotel"), Rating: intPtr(4)}
	accKrabiAoNang := &dbm.Accommodation{Name: "Centara Ao Nang Beach Resort & Spa", Location: "Ao Nang, Krabi", Type: strPtr("Resort"), Rating: intPtr(4)}
	accKrabiRailay := &dbm.Accommodation{Name: "Rayavadee", Location: "Railay Beach, Krabi", Type: strPtr("Resort"), Rating: intPtr(5)}
	accPhuketKata := &dbm.Accommodation{Name: "Katathani Phuket Beach Resort", Location: "Kata Noi Beach, Phuket", Type: strPtr("Resort"), Rating: intPtr(5)}
	accKrabiKlongMuang := &dbm.Accommodation{Name: "Dusit Thani Krabi Beach Resort", Location: "Klong Muang Beach, Krabi", Type: strPtr("Resort"), Rating: intPtr(5)}

	if err := catalog.CreateAccommodations(ctx, []*dbm.Accommodation{
		accPhuketBeach, accPhuketTown, accKrabiAoNang,
		accKrabiRailay, accPhuketKata, accKrabiKlongMuang,
	}); err != nil {
		return err
	}

	actPhiPhi := &dbm.Activity{Name: "Phi Phi Islands Day Tour", Description: strPtr("Full day tour by speedboat visiting Maya Bay, Pileh Lagoon, Viking Cave, Monkey Beach."), Location: "Phuket/Krabi", DurationHours: intPtr(8), Type: strPtr("Tour")}
	actBigBuddha := &dbm.Activity{Name: "Visit Big Buddha & Wat Chalong", Description: strPtr("Explore the iconic Big Buddha statue and the historic Wat Chalong temple."), Location: "Phuket", DurationHours: intPtr(4), Type: strPtr("Sightseeing")}
	actOldTown := &dbm.Activity{Name: "Explore Phuket Old Town", Description: strPtr("Wander through charming streets with Sino-Portuguese architecture, cafes, and shops."), Location: "Phuket Town, Phuket", DurationHours: intPtr(3), Type: strPtr("Sightseeing")}
	actJamesBond := &dbm.Activity{Name: "James Bond Island (Phang Nga Bay) Tour", Description: strPtr("Visit the famous Khao Phing Kan, sea kayaking through caves."), Location: "Phang Nga Bay (from Phuket/Krabi)", DurationHours: intPtr(8), Type: strPtr("Tour")}
	actRailayBeach := &dbm.Activity{Name: "Relax at Railay Beach", Description: strPtr("Enjoy the stunning limestone cliffs and clear waters, accessible only by boat."), Location: "Railay Beach, Krabi", DurationHours: intPtr(5), Type: strPtr("Beach")}
	actKrabi4Islands := &dbm.Activity{Name: "Krabi 4 Islands Tour", Description: strPtr("Longtail boat trip to Phra Nang Cave, Tup Island, Chicken Island, Poda Island."), Location: "Ao Nang, Krabi", DurationHours: intPtr(6), Type: strPtr("Tour")}
	actKayaking := &dbm.Activity{Name: "Sea Kayaking in Ao Thalane", Description: strPtr("Paddle through mangrove forests and hidden lagoons."), Location: "Ao Thalane, Krabi", DurationHours: intPtr(4), Type: strPtr("Adventure")}
	actCookingClass := &dbm.Activity{Name: "Thai Cooking Class", Description: strPtr("Learn to cook authentic Thai dishes."), Location: "Phuket/Krabi", DurationHours: intPtr(4), Type: strPtr("Cultural")}
	actSimilan := &dbm.Activity{Name: "Similan Islands Day Trip (Seasonal)", Description: strPtr("Snorkeling/diving in pristine waters (typically Nov-May)."), Location: "From Phuket (Khao Lak Pier)", DurationHours: intPtr(10), Type: strPtr("Tour")}
	actFantaSea := &dbm.Activity{Name: "Phuket FantaSea Show", Description: strPtr("Cultural theme park with extravagant show and buffet dinner."), Location: "Kamala, Phuket", DurationHours: intPtr(4), Type: strPtr("Entertainment")}

	if err := catalog.CreateActivities(ctx, []*dbm.Activity{
		actPhiPhi, actBigBuddha, actOldTown, actJamesBond,
		actRailayBeach, actKrabi4Islands, actKayaking,
		actCookingClass, actSimilan, actFantaSea,
	}); err != nil {
		return err
	}

	transHktArrival := &dbm.Transfer{Description: "Phuket Airport to Hotel Transfer", FromLocation: "Phuket Airport (HKT)", ToLocation: "Phuket Hotel", Method: "Private Car/Minivan", DurationMinutes: intPtr(60)}
	transKbvArrival := &dbm.Transfer{Description: "Krabi Airport to Hotel Transfer", FromLocation: "Krabi Airport (KBV)", ToLocation: "Krabi Hotel", Method: "Private Car/Minivan", DurationMinutes: intPtr(45)}
	transPhuketPier := &dbm.Transfer{Description: "Phuket Hotel to Rassada Pier", FromLocation: "Phuket Hotel", ToLocation: "Rassada Pier, Phuket", Method: "Minivan", DurationMinutes: intPtr(45)}
	transKrabiPier := &dbm.Transfer{Description: "Ao Nang Hotel to Nopparat Thara Pier", FromLocation: "Ao Nang Hotel", ToLocation: "Nopparat Thara Pier, Krabi", Method: "Local Taxi/Songthaew", DurationMinutes: intPtr(15)}
	transFerryPkKb := &dbm.Transfer{Description: "Ferry Transfer Phuket to Krabi", FromLocation: "Rassada Pier, Phuket", ToLocation: "Klong Jilad Pier, Krabi", Method: "Ferry", DurationMinutes: intPtr(120)}
	transFerryKbPk := &dbm.Transfer{Description: "Ferry Transfer Krabi to Phuket", FromLocation: "Klong Jilad Pier, Krabi", ToLocation: "Rassada Pier, Phuket", Method: "Ferry", DurationMinutes: intPtr(120)}
	transKrabiPierHotel := &dbm.Transfer{Description: "Krabi Pier to Hotel Transfer", FromLocation: "Klong Jilad Pier, Krabi", ToLocation: "Krabi Hotel", Method: "Minivan", DurationMinutes: intPtr(30)}
	transPhuketPierHotel := &dbm.Transfer{Description: "Rassada Pier to Phuket Hotel", FromLocation: "Rassada Pier, Phuket", ToLocation: "Phuket Hotel", Method: "Minivan", DurationMinutes: intPtr(45)}
	transHktDeparture := &dbm.Transfer{Description: "Phuket Hotel to Airport Transfer", FromLocation: "Phuket Hotel", ToLocation: "Phuket Airport (HKT)", Method: "Private Car/Minivan", DurationMinutes: intPtr(60)}
	transKbvDeparture := &dbm.Transfer{Description: "Krabi Hotel to Airport Transfer", FromLocation: "Krabi Hotel", ToLocation: "Krabi Airport (KBV)", Method: "Private Car/Minivan", DurationMinutes: intPtr(45)}

	if err := catalog.CreateTransfers(ctx, []*dbm.Transfer{
		transHktArrival, transKbvArrival, transPhuketPier, transKrabiPier,
		transFerryPkKb, transFerryKbPk, transKrabiPierHotel, transPhuketPierHotel,
		transHktDeparture, transKbvDeparture,
	}); err != nil {
		return err
	}

	log.Println("Seeding recommended itineraries...")

	recommended := []*repositories.CreateItineraryInput{
		{
			Name:           "Phuket Explorer (3 Nights)",
			DurationNights: 3,
			Region:         "Phuket",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, DaySummary: strPtr("Arrive in Phuket, transfer to Patong area."), AccommodationID: &accPhuketBeach.ID, TransferIDs: []uint{transHktArrival.ID}},
				{DayNumber: 2, DaySummary: strPtr("Full day exploring the stunning Phi Phi Islands."), AccommodationID: &accPhuketBeach.ID, ActivityIDs: []uint{actPhiPhi.ID}},
				{DayNumber: 3, DaySummary: strPtr("Visit Big Buddha, Wat Chalong, and explore Phuket Town."), AccommodationID: &accPhuketBeach.ID, ActivityIDs: []uint{actBigBuddha.ID, actOldTown.ID}},
				{DayNumber: 4, DaySummary: strPtr("Departure from Phuket."), TransferIDs: []uint{transHktDeparture.ID}},
			},
		},
		{
			Name:           "Phuket & Krabi Discovery (5 Nights)",
			DurationNights: 5,
			Region:         "Phuket & Krabi",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, DaySummary: strPtr("Arrive Phuket, transfer to Kata Beach area."), AccommodationID: &accPhuketKata.ID, TransferIDs: []uint{transHktArrival.ID}},
				{DayNumber: 2, DaySummary: strPtr("Day trip to Phang Nga Bay (James Bond Island)."), AccommodationID: &accPhuketKata.ID, ActivityIDs: []uint{actJamesBond.ID}},
				{DayNumber: 3, DaySummary: strPtr("Transfer from Phuket to Ao Nang, Krabi via ferry."), AccommodationID: &accKrabiAoNang.ID, TransferIDs: []uint{transPhuketPier.ID, transFerryPkKb.ID, transKrabiPierHotel.ID}},
				{DayNumber: 4, DaySummary: strPtr("Krabi 4 Islands tour by longtail boat."), AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actKrabi4Islands.ID}},
				{DayNumber: 5, DaySummary: strPtr("Relax at Railay Beach or go sea kayaking."), AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actRailayBeach.ID}},
				{DayNumber: 6, DaySummary: strPtr("Departure from Krabi."), TransferIDs: []uint{transKbvDeparture.ID}},
			},
		},
		{
			Name:           "Phuket Quick Escape (2 Nights)",
			DurationNights: 2,
			Region:         "Phuket",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, AccommodationID: &accPhuketTown.ID, TransferIDs: []uint{transHktArrival.ID}, ActivityIDs: []uint{actBigBuddha.ID}},
				{DayNumber: 2, AccommodationID: &accPhuketTown.ID, ActivityIDs: []uint{actPhiPhi.ID}},
				{DayNumber: 3, TransferIDs: []uint{transHktDeparture.ID}},
			},
		},
		{
			Name:           "Krabi Castaway (4 Nights)",
			DurationNights: 4,
			Region:         "Krabi",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, DaySummary: strPtr("Arrive Krabi, transfer to Ao Nang."), AccommodationID: &accKrabiAoNang.ID, TransferIDs: []uint{transKbvArrival.ID}},
				{DayNumber: 2, DaySummary: strPtr("Krabi 4 Islands tour."), AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actKrabi4Islands.ID}},
				{DayNumber: 3, DaySummary: strPtr("Railay Beach day trip."), AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actRailayBeach.ID}},
				{DayNumber: 4, DaySummary: strPtr("Sea kayaking and Thai cooking class."), AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actKayaking.ID, actCookingClass.ID}},
				{DayNumber: 5, DaySummary: strPtr("Departure from Krabi."), TransferIDs: []uint{transKbvDeparture.ID}},
			},
		},
		{
			Name:           "Phuket & Krabi Relaxation (6 Nights)",
			DurationNights: 6,
			Region:         "Phuket & Krabi",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, AccommodationID: &accPhuketKata.ID, TransferIDs: []uint{transHktArrival.ID}},
				{DayNumber: 2, DaySummary: strPtr("Free day at Kata Beach or optional visit to Old Town"), AccommodationID: &accPhuketKata.ID},
				{DayNumber: 3, AccommodationID: &accPhuketKata.ID, ActivityIDs: []uint{actPhiPhi.ID}},
				{DayNumber: 4, AccommodationID: &accKrabiRailay.ID, TransferIDs: []uint{transPhuketPier.ID, transFerryPkKb.ID, transKrabiPierHotel.ID}},
				{DayNumber: 5, AccommodationID: &accKrabiRailay.ID, ActivityIDs: []uint{actRailayBeach.ID}},
				{DayNumber: 6, AccommodationID: &accKrabiRailay.ID, ActivityIDs: []uint{actKrabi4Islands.ID}},
				{DayNumber: 7, TransferIDs: []uint{transKbvDeparture.ID}},
			},
		},
		{
			Name:           "Southern Thailand Explorer (7 Nights)",
			DurationNights: 7,
			Region:         "Phuket & Krabi",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, AccommodationID: &accPhuketBeach.ID, TransferIDs: []uint{transHktArrival.ID}},
				{DayNumber: 2, AccommodationID: &accPhuketBeach.ID, ActivityIDs: []uint{actJamesBond.ID}},
				{DayNumber: 3, AccommodationID: &accPhuketBeach.ID, ActivityIDs: []uint{actBigBuddha.ID, actOldTown.ID}},
				{DayNumber: 4, AccommodationID: &accKrabiAoNang.ID, TransferIDs: []uint{transPhuketPier.ID, transFerryPkKb.ID, transKrabiPierHotel.ID}},
				{DayNumber: 5, AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actKrabi4Islands.ID}},
				{DayNumber: 6, AccommodationID: &accKrabiAoNang.ID, ActivityIDs: []uint{actRailayBeach.ID}},
				{DayNumber: 7, DaySummary: strPtr("Optional Thai Cooking Class or free day"), AccommodationID: &accKrabiAoNang.ID},
				{DayNumber: 8, TransferIDs: []uint{transKbvDeparture.ID}},
			},
		},
		{
			Name:           "Ultimate Phuket & Krabi (8 Nights)",
			DurationNights: 8,
			Region:         "Phuket & Krabi",
			Recommended:    true,
			Days: []repositories.CreateDayInput{
				{DayNumber: 1, AccommodationID: &accPhuketKata.ID, TransferIDs: []uint{transHktArrival.ID}},
				{DayNumber: 2, AccommodationID: &accPhuketKata.ID, ActivityIDs: []uint{actPhiPhi.ID}},
				{DayNumber: 3, AccommodationID: &accPhuketKata.ID, ActivityIDs: []uint{actJamesBond.ID}},
				{DayNumber: 4, AccommodationID: &accPhuketKata.ID, ActivityIDs: []uint{actBigBuddha.ID, actFantaSea.ID}},
				{DayNumber: 5, AccommodationID: &accKrabiKlongMuang.ID, TransferIDs: []uint{transPhuketPier.ID, transFerryPkKb.ID, transKrabiPierHotel.ID}},
				{DayNumber: 6, AccommodationID: &accKrabiKlongMuang.ID, ActivityIDs: []uint{actKrabi4Islands.ID}},
				{DayNumber: 7, AccommodationID: &accKrabiKlongMuang.ID, ActivityIDs: []uint{actKayaking.ID}},
				{DayNumber: 8, AccommodationID: &accKrabiKlongMuang.ID, ActivityIDs: []uint{actRailayBeach.ID}},
				{DayNumber: 9, TransferIDs: []uint{transKbvDeparture.ID}},
			},
		},
	}

	for _, in := range recommended {
		if _, err := itineraries.CreateItinerary(ctx, in); err != nil {
			return err
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
