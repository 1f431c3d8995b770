package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbm "itinera/internal/models/db_models"
	"itinera/internal/repositories"
)

func TestSeed_CoversEveryRecommendedDuration(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, resetSchema(db))
	require.NoError(t, seed(db))

	repo := repositories.NewItineraryRepository(db)
	for nights := 2; nights <= 8; nights++ {
		out, err := repo.ListRecommendedByDuration(context.Background(), nights)
		require.NoError(t, err)
		require.NotEmpty(t, out, "a curated itinerary must exist for %d nights", nights)
		for _, it := range out {
			require.True(t, it.IsRecommended)
			require.Equal(t, nights, it.DurationNights)
			require.NotEmpty(t, it.Days)
		}
	}

	var count int64
	require.NoError(t, db.Model(&dbm.Itinerary{}).Count(&count).Error)
	require.EqualValues(t, 7, count)
}

func TestSeed_IsRepeatable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, resetSchema(db))
	require.NoError(t, seed(db))
	require.NoError(t, resetSchema(db))
	require.NoError(t, seed(db))

	var count int64
	require.NoError(t, db.Model(&dbm.Itinerary{}).Count(&count).Error)
	require.EqualValues(t, 7, count)
}
