package db_models

import (
	resp "itinera/internal/models/response_models"
)

// BuildItineraryDetailResponse maps a hydrated itinerary to its response
// shape. Days and their activity/transfer lists are expected to arrive
// pre-sorted by the repository's preload ordering.
func BuildItineraryDetailResponse(it *Itinerary) *resp.ItineraryDetailResponse {
	out := &resp.ItineraryDetailResponse{
		ID:             it.ID,
		Name:           it.Name,
		DurationNights: it.DurationNights,
		Region:         it.Region,
		IsRecommended:  it.IsRecommended,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
		Days:           make([]resp.DayDetailResponse, 0, len(it.Days)),
	}

	for _, day := range it.Days {
		d := resp.DayDetailResponse{
			ID:         day.ID,
			DayNumber:  day.DayNumber,
			DaySummary: day.DaySummary,
			Activities: make([]resp.ActivityResponse, 0, len(day.Activities)),
			Transfers:  make([]resp.TransferResponse, 0, len(day.Transfers)),
		}

		if link := day.AccommodationLink; link != nil {
			d.AccommodationLink = &resp.AccommodationLinkResponse{
				Accommodation: resp.AccommodationResponse{
					ID:       link.Accommodation.ID,
					Name:     link.Accommodation.Name,
					Location: link.Accommodation.Location,
					Type:     link.Accommodation.Type,
					Rating:   link.Accommodation.Rating,
				},
			}
		}

		for _, da := range day.Activities {
			d.Activities = append(d.Activities, resp.ActivityResponse{
				ID:            da.Activity.ID,
				Name:          da.Activity.Name,
				Description:   da.Activity.Description,
				Location:      da.Activity.Location,
				DurationHours: da.Activity.DurationHours,
				Type:          da.Activity.Type,
			})
		}

		for _, dt := range day.Transfers {
			d.Transfers = append(d.Transfers, resp.TransferResponse{
				ID:              dt.Transfer.ID,
				Description:     dt.Transfer.Description,
				FromLocation:    dt.Transfer.FromLocation,
				ToLocation:      dt.Transfer.ToLocation,
				Method:          dt.Transfer.Method,
				DurationMinutes: dt.Transfer.DurationMinutes,
			})
		}

		out.Days = append(out.Days, d)
	}

	return out
}

func BuildItinerarySummaryResponse(it *Itinerary) resp.ItinerarySummaryResponse {
	return resp.ItinerarySummaryResponse{
		ID:             it.ID,
		Name:           it.Name,
		DurationNights: it.DurationNights,
		Region:         it.Region,
		IsRecommended:  it.IsRecommended,
	}
}
