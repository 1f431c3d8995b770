package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbm "itinera/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&dbm.Accommodation{},
		&dbm.Activity{},
		&dbm.Transfer{},
		&dbm.Itinerary{},
		&dbm.Day{},
		&dbm.DayAccommodation{},
		&dbm.DayActivity{},
		&dbm.DayTransfer{},
	))

	return db
}

func seedCatalogRows(t *testing.T, db *gorm.DB) (dbm.Accommodation, []dbm.Activity, []dbm.Transfer) {
	t.Helper()
	ctx := context.Background()
	catalog := NewCatalogRepository(db)

	acc := &dbm.Accommodation{Name: "Centara Ao Nang Beach Resort & Spa", Location: "Ao Nang, Krabi"}
	require.NoError(t, catalog.CreateAccommodations(ctx, []*dbm.Accommodation{acc}))

	acts := []*dbm.Activity{
		{Name: "Relax at Railay Beach", Location: "Krabi"},
		{Name: "Sea Kayaking in Ao Thalane", Location: "Krabi"},
	}
	require.NoError(t, catalog.CreateActivities(ctx, acts))

	trans := []*dbm.Transfer{
		{Description: "Krabi Airport to Hotel Transfer", Method: "Private Car"},
	}
	require.NoError(t, catalog.CreateTransfers(ctx, trans))

	return *acc, []dbm.Activity{*acts[0], *acts[1]}, []dbm.Transfer{*trans[0]}
}

func TestCreateItinerary_AssignsLinkOrderByPosition(t *testing.T) {
	db := setupTestDB(t)
	acc, acts, trans := seedCatalogRows(t, db)
	repo := NewItineraryRepository(db)

	id, err := repo.CreateItinerary(context.Background(), &CreateItineraryInput{
		Name:           "Krabi Weekend",
		DurationNights: 2,
		Region:         "Krabi",
		Days: []CreateDayInput{
			{
				DayNumber:       1,
				AccommodationID: &acc.ID,
				ActivityIDs:     []uint{acts[1].ID, acts[0].ID},
				TransferIDs:     []uint{trans[0].ID},
			},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	var links []dbm.DayActivity
	require.NoError(t, db.Order(`"order" ASC`).Find(&links).Error)
	require.Len(t, links, 2)
	require.Equal(t, acts[1].ID, links[0].ActivityID)
	require.Equal(t, 0, links[0].Order)
	require.Equal(t, acts[0].ID, links[1].ActivityID)
	require.Equal(t, 1, links[1].Order)
}

func TestCreateItinerary_ForeignKeyFailureRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	acc, _, _ := seedCatalogRows(t, db)
	repo := NewItineraryRepository(db)

	// Activity 424242 does not exist; the join-row insert must fail and take
	// the itinerary and day rows down with it.
	_, err := repo.CreateItinerary(context.Background(), &CreateItineraryInput{
		Name:           "Doomed Trip",
		DurationNights: 2,
		Days: []CreateDayInput{
			{DayNumber: 1, AccommodationID: &acc.ID},
			{DayNumber: 2, ActivityIDs: []uint{424242}},
		},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&dbm.Itinerary{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&dbm.Day{}).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, db.Model(&dbm.DayAccommodation{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGetItineraryByID_HydratesNestedAssociations(t *testing.T) {
	db := setupTestDB(t)
	acc, acts, trans := seedCatalogRows(t, db)
	repo := NewItineraryRepository(db)

	id, err := repo.CreateItinerary(context.Background(), &CreateItineraryInput{
		Name:           "Hydration Check",
		DurationNights: 3,
		Days: []CreateDayInput{
			{DayNumber: 3, TransferIDs: []uint{trans[0].ID}},
			{DayNumber: 1, AccommodationID: &acc.ID, ActivityIDs: []uint{acts[0].ID, acts[1].ID}},
			{DayNumber: 2},
		},
	})
	require.NoError(t, err)

	it, err := repo.GetItineraryByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, it)
	require.Len(t, it.Days, 3)

	require.Equal(t, []int{1, 2, 3}, []int{it.Days[0].DayNumber, it.Days[1].DayNumber, it.Days[2].DayNumber})

	day1 := it.Days[0]
	require.NotNil(t, day1.AccommodationLink)
	require.Equal(t, acc.Name, day1.AccommodationLink.Accommodation.Name)
	require.Len(t, day1.Activities, 2)
	require.Equal(t, acts[0].Name, day1.Activities[0].Activity.Name)
	require.Equal(t, acts[1].Name, day1.Activities[1].Activity.Name)

	require.Nil(t, it.Days[1].AccommodationLink)
	require.Empty(t, it.Days[1].Activities)

	require.Len(t, it.Days[2].Transfers, 1)
	require.Equal(t, trans[0].Description, it.Days[2].Transfers[0].Transfer.Description)
}

func TestGetItineraryByID_MissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItineraryRepository(db)

	it, err := repo.GetItineraryByID(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, it)
}

func TestListItineraries_OrderedByIDWithOffsetLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewItineraryRepository(db)

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := repo.CreateItinerary(context.Background(), &CreateItineraryInput{
			Name:           name,
			DurationNights: 2,
		})
		require.NoError(t, err)
	}

	page, err := repo.ListItineraries(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "B", page[0].Name)
	require.Equal(t, "C", page[1].Name)
}

func TestFilterExistingIDs(t *testing.T) {
	db := setupTestDB(t)
	acc, acts, _ := seedCatalogRows(t, db)
	catalog := NewCatalogRepository(db)

	existing, err := catalog.FilterExistingAccommodationIDs(context.Background(), []uint{acc.ID, 9999})
	require.NoError(t, err)
	require.Equal(t, []uint{acc.ID}, existing)

	existing, err = catalog.FilterExistingActivityIDs(context.Background(), []uint{acts[0].ID, acts[1].ID})
	require.NoError(t, err)
	require.ElementsMatch(t, []uint{acts[0].ID, acts[1].ID}, existing)

	existing, err = catalog.FilterExistingTransferIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, existing)
}
