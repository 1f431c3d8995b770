package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "itinera/internal/models/db_models"
)

// CatalogRepositoryInterface covers the reusable catalog entities referenced
// by itinerary days. Entities are created by seeding only; itinerary creation
// just checks they exist.
type CatalogRepositoryInterface interface {
	FilterExistingAccommodationIDs(ctx context.Context, ids []uint) ([]uint, error)
	FilterExistingActivityIDs(ctx context.Context, ids []uint) ([]uint, error)
	FilterExistingTransferIDs(ctx context.Context, ids []uint) ([]uint, error)
	CreateAccommodations(ctx context.Context, accommodations []*dbm.Accommodation) error
	CreateActivities(ctx context.Context, activities []*dbm.Activity) error
	CreateTransfers(ctx context.Context, transfers []*dbm.Transfer) error
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &CatalogRepository{db: db}
}

type CatalogRepository struct {
	db *gorm.DB
}

func (r *CatalogRepository) FilterExistingAccommodationIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.filterExisting(ctx, &dbm.Accommodation{}, ids)
}

func (r *CatalogRepository) FilterExistingActivityIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.filterExisting(ctx, &dbm.Activity{}, ids)
}

func (r *CatalogRepository) FilterExistingTransferIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.filterExisting(ctx, &dbm.Transfer{}, ids)
}

func (r *CatalogRepository) filterExisting(ctx context.Context, model interface{}, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []uint
	err := r.db.WithContext(ctx).
		Model(model).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *CatalogRepository) CreateAccommodations(ctx context.Context, accommodations []*dbm.Accommodation) error {
	if len(accommodations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(accommodations).Error
}

func (r *CatalogRepository) CreateActivities(ctx context.Context, activities []*dbm.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(activities).Error
}

func (r *CatalogRepository) CreateTransfers(ctx context.Context, transfers []*dbm.Transfer) error {
	if len(transfers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(transfers).Error
}
