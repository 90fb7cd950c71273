// Package service contains the business logic for the Trail Planner API.
// Services validate inputs, enforce planning rules, and orchestrate snapshot
// load/save cycles via repo.StateRepo. No SQL and no JSON shaping live here.
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

// TripFilter selects a subset of trips by status for List.
type TripFilter string

const (
	// FilterAll returns every trip.
	FilterAll TripFilter = "all"
	// FilterPlanning returns trips still being worked on
	// (idea, planning, in_progress).
	FilterPlanning TripFilter = "planning"
	// FilterBooked returns trips with status booked.
	FilterBooked TripFilter = "booked"
	// FilterCompleted returns trips with status completed.
	FilterCompleted TripFilter = "completed"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.StateRepo
}

// NewTripService constructs a TripService backed by the provided StateRepo.
func NewTripService(r repo.StateRepo) *TripService {
	return &TripService{repo: r}
}

// List returns trips ordered by start date ascending (undated trips last),
// optionally filtered by status group. The second return value is the
// advisory migration note from loading the snapshot ("" when clean).
// Unknown filters behave like FilterAll.
func (s *TripService) List(ctx context.Context, filter TripFilter) ([]domain.Trip, string, error) {
	trips, note, err := s.repo.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("service.TripService.List: %w", err)
	}

	sorted := domain.SortTripsByStartDate(trips)
	filtered := make([]domain.Trip, 0, len(sorted))
	for _, trip := range sorted {
		if matchesFilter(trip, filter) {
			filtered = append(filtered, trip)
		}
	}
	return filtered, note, nil
}

func matchesFilter(trip domain.Trip, filter TripFilter) bool {
	switch filter {
	case FilterPlanning:
		return trip.Status == domain.TripStatusIdea ||
			trip.Status == domain.TripStatusPlanning ||
			trip.Status == domain.TripStatusInProgress
	case FilterBooked:
		return trip.Status == domain.TripStatusBooked
	case FilterCompleted:
		return trip.Status == domain.TripStatusCompleted
	default:
		return true
	}
}

// Get returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Get(ctx context.Context, id string) (domain.Trip, error) {
	trips, _, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	if i := findTrip(trips, id); i >= 0 {
		return trips[i], nil
	}
	return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", domain.ErrNotFound)
}

// Create validates and persists a new trip. The caller supplies name,
// location, dates, status, type, and notes; identity, timestamps, and empty
// child collections are assigned here.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, in domain.Trip) (domain.Trip, error) {
	if err := validateTrip(in); err != nil {
		return domain.Trip{}, err
	}

	now := time.Now().UTC()
	trip := domain.Trip{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Location:  strings.TrimSpace(in.Location),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    domain.TripStatusOrDefault(string(in.Status)),
		Type:      in.Type,
		Notes:     strings.TrimSpace(in.Notes),
		Invitees:  []domain.Invitee{},
		Campsites: []domain.Campsite{},
		Itinerary: []domain.ItineraryItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if trip.Type == "" {
		trip.Type = "Camping"
	}

	_, err := s.repo.Update(ctx, func(trips []domain.Trip) ([]domain.Trip, error) {
		return append(trips, trip), nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Update validates and overwrites the editable fields of an existing trip,
// leaving its child collections intact.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, in domain.Trip) (domain.Trip, error) {
	if err := validateTrip(in); err != nil {
		return domain.Trip{}, err
	}

	var updated domain.Trip
	_, err := s.repo.Update(ctx, func(trips []domain.Trip) ([]domain.Trip, error) {
		i := findTrip(trips, in.ID)
		if i < 0 {
			return nil, fmt.Errorf("service.TripService.Update: %w", domain.ErrNotFound)
		}
		trip := trips[i]
		trip.Name = strings.TrimSpace(in.Name)
		trip.Location = strings.TrimSpace(in.Location)
		trip.StartDate = in.StartDate
		trip.EndDate = in.EndDate
		trip.Status = domain.TripStatusOrDefault(string(in.Status))
		if in.Type != "" {
			trip.Type = in.Type
		}
		trip.Notes = strings.TrimSpace(in.Notes)
		trip.UpdatedAt = time.Now().UTC()
		trips[i] = trip
		updated = trip
		return trips, nil
	})
	if err != nil {
		return domain.Trip{}, err
	}
	return updated, nil
}

// Delete removes a trip and, with it, all owned invitees, campsites, and
// itinerary items. Deleting an ID that is already gone is a no-op.
func (s *TripService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Update(ctx, func(trips []domain.Trip) ([]domain.Trip, error) {
		kept := trips[:0]
		for _, trip := range trips {
			if trip.ID != id {
				kept = append(kept, trip)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Stats derives collection-wide planning statistics.
func (s *TripService) Stats(ctx context.Context) (domain.Stats, error) {
	trips, _, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("service.TripService.Stats: %w", err)
	}
	return domain.ComputeStats(trips), nil
}

// validateTrip enforces the trip submission rules common to Create and Update.
//   - Name and location must be non-empty (whitespace-only is rejected).
//   - Both dates must be present and parseable calendar dates.
//   - The end date must not be before the start date.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: trip name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	start, startOK := domain.ParseDate(trip.StartDate)
	end, endOK := domain.ParseDate(trip.EndDate)
	if !startOK || !endOK {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date must be the same as or after the start date", domain.ErrValidation)
	}
	return nil
}

// findTrip returns the index of the trip with id, or -1.
func findTrip(trips []domain.Trip, id string) int {
	for i, trip := range trips {
		if trip.ID == id {
			return i
		}
	}
	return -1
}
