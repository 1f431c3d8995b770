package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

// Recommended lookups only serve the curated 2..8 night range.
const (
	MinRecommendedNights = 2
	MaxRecommendedNights = 8
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	ListItineraries(ctx context.Context, skip int, limit int) ([]response_models.ItinerarySummaryResponse, error)
	GetItineraryByID(ctx context.Context, id uint) (*response_models.ItineraryDetailResponse, error)
	GetRecommendedByDuration(ctx context.Context, durationNights int) ([]response_models.ItineraryDetailResponse, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	catalogRepo   repositories.CatalogRepositoryInterface
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	catalogRepo repositories.CatalogRepositoryInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		catalogRepo:   catalogRepo,
	}
}

// CreateItinerary validates the request against the catalog, persists the
// aggregate in one transaction and returns it fully hydrated. Nothing is
// written when validation fails; after a successful commit a read failure
// degrades only the response, never the stored data.
func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {

	if err := s.validateDaySpecs(ctx, req.Days); err != nil {
		return nil, err
	}

	in := &repositories.CreateItineraryInput{
		Name:           req.Name,
		DurationNights: req.DurationNights,
		Region:         req.Region,
		Days:           make([]repositories.CreateDayInput, 0, len(req.Days)),
	}
	for _, d := range req.Days {
		in.Days = append(in.Days, repositories.CreateDayInput{
			DayNumber:       d.DayNumber,
			DaySummary:      d.DaySummary,
			AccommodationID: d.AccommodationID,
			ActivityIDs:     d.ActivityIDs,
			TransferIDs:     d.TransferIDs,
		})
	}

	id, err := s.itineraryRepo.CreateItinerary(ctx, in)
	if err != nil {
		// A constraint failure here means the catalog changed between the
		// existence check and the write; that is stale client input, not an
		// infrastructure fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w: %v", utils.ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	created, err := s.itineraryRepo.GetItineraryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPostCommitRead, err)
	}
	if created == nil {
		return nil, fmt.Errorf("%w: itinerary %d missing after commit", utils.ErrPostCommitRead, id)
	}

	return db_models.BuildItineraryDetailResponse(created), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, skip int, limit int) ([]response_models.ItinerarySummaryResponse, error) {

	if skip < 0 || limit <= 0 {
		return nil, utils.ErrInvalidPagination
	}

	itineraries, err := s.itineraryRepo.ListItineraries(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ItinerarySummaryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, db_models.BuildItinerarySummaryResponse(&itineraries[i]))
	}
	return out, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, id uint) (*response_models.ItineraryDetailResponse, error) {

	it, err := s.itineraryRepo.GetItineraryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if it == nil {
		return nil, utils.ErrItineraryNotFound
	}

	return db_models.BuildItineraryDetailResponse(it), nil
}

func (s *ItineraryService) GetRecommendedByDuration(ctx context.Context, durationNights int) ([]response_models.ItineraryDetailResponse, error) {

	if durationNights < MinRecommendedNights || durationNights > MaxRecommendedNights {
		return nil, utils.ErrInvalidDuration
	}

	itineraries, err := s.itineraryRepo.ListRecommendedByDuration(ctx, durationNights)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.ItineraryDetailResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, *db_models.BuildItineraryDetailResponse(&itineraries[i]))
	}
	return out, nil
}

// validateDaySpecs rejects duplicate day numbers within the request, then
// checks every referenced catalog ID in one batch per entity kind. It reads
// the store but never writes.
func (s *ItineraryService) validateDaySpecs(ctx context.Context, days []request_models.DaySpec) error {

	seen := make(map[int]bool, len(days))
	dupSeen := make(map[int]bool)
	var duplicates []int
	for _, d := range days {
		if seen[d.DayNumber] && !dupSeen[d.DayNumber] {
			duplicates = append(duplicates, d.DayNumber)
			dupSeen[d.DayNumber] = true
		}
		seen[d.DayNumber] = true
	}
	if len(duplicates) > 0 {
		sort.Ints(duplicates)
		return &utils.DuplicateDayNumberError{DayNumbers: duplicates}
	}

	accIDs := make(map[uint]bool)
	actIDs := make(map[uint]bool)
	transIDs := make(map[uint]bool)
	for _, d := range days {
		if d.AccommodationID != nil {
			accIDs[*d.AccommodationID] = true
		}
		for _, id := range d.ActivityIDs {
			actIDs[id] = true
		}
		for _, id := range d.TransferIDs {
			transIDs[id] = true
		}
	}

	missingAcc, err := s.missingIDs(ctx, accIDs, s.catalogRepo.FilterExistingAccommodationIDs)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrValidationLookup, err)
	}
	missingAct, err := s.missingIDs(ctx, actIDs, s.catalogRepo.FilterExistingActivityIDs)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrValidationLookup, err)
	}
	missingTrans, err := s.missingIDs(ctx, transIDs, s.catalogRepo.FilterExistingTransferIDs)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrValidationLookup, err)
	}

	if len(missingAcc) > 0 || len(missingAct) > 0 || len(missingTrans) > 0 {
		return &utils.MissingReferenceError{
			Accommodations: missingAcc,
			Activities:     missingAct,
			Transfers:      missingTrans,
		}
	}

	return nil
}

func (s *ItineraryService) missingIDs(
	ctx context.Context,
	required map[uint]bool,
	filterExisting func(context.Context, []uint) ([]uint, error),
) ([]uint, error) {

	if len(required) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}

	existing, err := filterExisting(ctx, ids)
	if err != nil {
		return nil, err
	}

	existingSet := make(map[uint]bool, len(existing))
	for _, id := range existing {
		existingSet[id] = true
	}

	var missing []uint
	for _, id := range ids {
		if !existingSet[id] {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing, nil
}
