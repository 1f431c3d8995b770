package repositories

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	dbm "itinera/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, in *CreateItineraryInput) (uint, error)
	GetItineraryByID(ctx context.Context, id uint) (*dbm.Itinerary, error)
	ListItineraries(ctx context.Context, skip int, limit int) ([]dbm.Itinerary, error)
	ListRecommendedByDuration(ctx context.Context, durationNights int) ([]dbm.Itinerary, error)
}

type CreateItineraryInput struct {
	Name           string
	DurationNights int
	Region         string
	Recommended    bool
	Days           []CreateDayInput
}

type CreateDayInput struct {
	DayNumber       int
	DaySummary      *string
	AccommodationID *uint
	ActivityIDs     []uint
	TransferIDs     []uint
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// CreateItinerary persists the whole aggregate in one transaction: the
// itinerary row, then each day in ascending day_number order, then the day's
// accommodation link and its activity/transfer rows with `order` set to the
// position in the input list. Any failure rolls the whole thing back.
func (r *itineraryRepository) CreateItinerary(ctx context.Context, in *CreateItineraryInput) (uint, error) {

	var outID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		it := dbm.Itinerary{
			Name:           in.Name,
			DurationNights: in.DurationNights,
			Region:         in.Region,
			IsRecommended:  in.Recommended,
		}
		if err := tx.Create(&it).Error; err != nil {
			return err
		}
		outID = it.ID

		days := make([]CreateDayInput, len(in.Days))
		copy(days, in.Days)
		sort.Slice(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

		for _, d := range days {
			day := dbm.Day{
				ItineraryID: it.ID,
				DayNumber:   d.DayNumber,
				DaySummary:  d.DaySummary,
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}

			if d.AccommodationID != nil {
				link := dbm.DayAccommodation{
					DayID:           day.ID,
					AccommodationID: *d.AccommodationID,
				}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}

			if len(d.ActivityIDs) > 0 {
				rows := make([]dbm.DayActivity, 0, len(d.ActivityIDs))
				for i, actID := range d.ActivityIDs {
					rows = append(rows, dbm.DayActivity{
						DayID:      day.ID,
						ActivityID: actID,
						Order:      i,
					})
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}

			if len(d.TransferIDs) > 0 {
				rows := make([]dbm.DayTransfer, 0, len(d.TransferIDs))
				for i, transID := range d.TransferIDs {
					rows = append(rows, dbm.DayTransfer{
						DayID:      day.ID,
						TransferID: transID,
						Order:      i,
					})
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return 0, err
	}
	return outID, nil
}

// GetItineraryByID returns the itinerary with all nested associations eagerly
// loaded, or nil when no row exists.
func (r *itineraryRepository) GetItineraryByID(ctx context.Context, id uint) (*dbm.Itinerary, error) {

	var it dbm.Itinerary
	err := hydrated(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&it).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &it, nil
}

func (r *itineraryRepository) ListItineraries(ctx context.Context, skip int, limit int) ([]dbm.Itinerary, error) {

	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (r *itineraryRepository) ListRecommendedByDuration(ctx context.Context, durationNights int) ([]dbm.Itinerary, error) {

	var itineraries []dbm.Itinerary
	err := hydrated(r.db.WithContext(ctx)).
		Where("is_recommended = ? AND duration_nights = ?", true, durationNights).
		Order("id ASC").
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

// hydrated attaches every nested association the detail response needs, with
// days sorted by day_number and link rows by their `order` column. All
// collections are batch-fetched; nothing is loaded lazily per row.
func hydrated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.AccommodationLink.Accommodation").
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Preload("Days.Activities.Activity").
		Preload("Days.Transfers", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		Preload("Days.Transfers.Transfer")
}
