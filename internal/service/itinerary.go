package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/repo"
)

// ItineraryService implements business logic for a trip's itinerary items.
type ItineraryService struct {
	repo repo.StateRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided
// StateRepo.
func NewItineraryService(r repo.StateRepo) *ItineraryService {
	return &ItineraryService{repo: r}
}

// Add validates and appends a new itinerary item to the end of its day:
// the item's SortOrder is one past the day's current maximum.
// Returns domain.ErrValidation if the title is empty, domain.ErrNotFound if
// the trip does not exist.
func (s *ItineraryService) Add(ctx context.Context, tripID string, in domain.ItineraryItem) (domain.Trip, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Trip{}, fmt.Errorf("%w: itinerary title is required", domain.ErrValidation)
	}

	day := in.DayNumber
	if day < 1 {
		day = 1
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		trip.Itinerary = append(trip.Itinerary, domain.ItineraryItem{
			ID:        uuid.NewString(),
			DayNumber: day,
			Title:     title,
			Details:   strings.TrimSpace(in.Details),
			SortOrder: domain.NextSortOrder(trip.Itinerary, day),
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Add: %w", err)
	}
	return trip, nil
}

// Update overwrites the day, title, and details of an existing item,
// preserving its completion flag and sort order. A stale item ID is a silent
// no-op.
// Returns domain.ErrValidation if the title is empty, domain.ErrNotFound if
// the trip does not exist.
func (s *ItineraryService) Update(ctx context.Context, tripID string, in domain.ItineraryItem) (domain.Trip, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Trip{}, fmt.Errorf("%w: itinerary title is required", domain.ErrValidation)
	}

	day := in.DayNumber
	if day < 1 {
		day = 1
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i, item := range trip.Itinerary {
			if item.ID != in.ID {
				continue
			}
			item.DayNumber = day
			item.Title = title
			item.Details = strings.TrimSpace(in.Details)
			trip.Itinerary[i] = item
			break
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	return trip, nil
}

// SetComplete marks one itinerary item complete or incomplete. A stale item
// ID is a silent no-op.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ItineraryService) SetComplete(ctx context.Context, tripID, itemID string, complete bool) (domain.Trip, error) {
	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i := range trip.Itinerary {
			if trip.Itinerary[i].ID == itemID {
				trip.Itinerary[i].IsComplete = complete
				break
			}
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.SetComplete: %w", err)
	}
	return trip, nil
}

// Move swaps an item's sort order with its neighbour within the same day.
// Moving past the boundary of the day group, or a stale item ID, is a silent
// no-op.
// Returns domain.ErrValidation for an unknown direction, domain.ErrNotFound
// if the trip does not exist.
func (s *ItineraryService) Move(ctx context.Context, tripID, itemID string, direction domain.MoveDirection) (domain.Trip, error) {
	if !direction.Valid() {
		return domain.Trip{}, fmt.Errorf("%w: move direction must be %q or %q", domain.ErrValidation, domain.MoveUp, domain.MoveDown)
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		trip.Itinerary = domain.MoveItineraryItem(trip.Itinerary, itemID, direction)
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Move: %w", err)
	}
	return trip, nil
}

// Delete removes an itinerary item from the trip. Deleting an ID that is
// already gone is a no-op.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ItineraryService) Delete(ctx context.Context, tripID, itemID string) (domain.Trip, error) {
	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		kept := trip.Itinerary[:0]
		for _, item := range trip.Itinerary {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		trip.Itinerary = kept
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return trip, nil
}
