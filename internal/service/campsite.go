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

// VoteDirection selects which vote counter an upvote/downvote increments.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// CampsiteService implements business logic for a trip's campsite candidates.
// It owns the single-booked invariant: any path that sets a campsite's status
// to booked runs domain.EnforceSingleBooked before the snapshot is saved.
type CampsiteService struct {
	repo repo.StateRepo
}

// NewCampsiteService constructs a CampsiteService backed by the provided
// StateRepo.
func NewCampsiteService(r repo.StateRepo) *CampsiteService {
	return &CampsiteService{repo: r}
}

// Add validates and appends a new campsite candidate. Adding a candidate
// directly as booked demotes any previously booked campsite to searching.
// Returns domain.ErrValidation if the name is empty, domain.ErrNotFound if
// the trip does not exist.
func (s *CampsiteService) Add(ctx context.Context, tripID string, in domain.Campsite) (domain.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: campsite name is required", domain.ErrValidation)
	}

	site := domain.Campsite{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    strings.TrimSpace(in.Source),
		Status:    domain.CampsiteStatusOrDefault(string(in.Status)),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: time.Now().UTC(),
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		trip.Campsites = append(trip.Campsites, site)
		if site.Status == domain.CampsiteStatusBooked {
			trip.Campsites = domain.EnforceSingleBooked(trip.Campsites, site.ID)
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CampsiteService.Add: %w", err)
	}
	return trip, nil
}

// Update overwrites the editable fields of an existing campsite, preserving
// its vote counts. Setting the status to booked demotes any other booked
// campsite. A stale campsite ID is a silent no-op.
// Returns domain.ErrValidation if the name is empty, domain.ErrNotFound if
// the trip does not exist.
func (s *CampsiteService) Update(ctx context.Context, tripID string, in domain.Campsite) (domain.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: campsite name is required", domain.ErrValidation)
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i, site := range trip.Campsites {
			if site.ID != in.ID {
				continue
			}
			site.Name = name
			site.Source = strings.TrimSpace(in.Source)
			site.Status = domain.CampsiteStatusOrDefault(string(in.Status))
			site.Notes = strings.TrimSpace(in.Notes)
			trip.Campsites[i] = site
			if site.Status == domain.CampsiteStatusBooked {
				trip.Campsites = domain.EnforceSingleBooked(trip.Campsites, site.ID)
			}
			break
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CampsiteService.Update: %w", err)
	}
	return trip, nil
}

// SetStatus changes one campsite's status, coercing unknown values to
// unsearched. Booking a campsite demotes any other booked campsite to
// searching. A stale campsite ID is a silent no-op.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *CampsiteService) SetStatus(ctx context.Context, tripID, campsiteID, status string) (domain.Trip, error) {
	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i := range trip.Campsites {
			if trip.Campsites[i].ID != campsiteID {
				continue
			}
			next := domain.CampsiteStatusOrDefault(status)
			trip.Campsites[i].Status = next
			if next == domain.CampsiteStatusBooked {
				trip.Campsites = domain.EnforceSingleBooked(trip.Campsites, campsiteID)
			}
			break
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CampsiteService.SetStatus: %w", err)
	}
	return trip, nil
}

// Vote increments one campsite's upvote or downvote counter. A stale campsite
// ID is a silent no-op.
// Returns domain.ErrValidation for an unknown direction, domain.ErrNotFound
// if the trip does not exist.
func (s *CampsiteService) Vote(ctx context.Context, tripID, campsiteID string, direction VoteDirection) (domain.Trip, error) {
	if direction != VoteUp && direction != VoteDown {
		return domain.Trip{}, fmt.Errorf("%w: vote direction must be %q or %q", domain.ErrValidation, VoteUp, VoteDown)
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i := range trip.Campsites {
			if trip.Campsites[i].ID != campsiteID {
				continue
			}
			if direction == VoteUp {
				trip.Campsites[i].Upvotes++
			} else {
				trip.Campsites[i].Downvotes++
			}
			break
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CampsiteService.Vote: %w", err)
	}
	return trip, nil
}

// Delete removes a campsite from the trip. Deleting an ID that is already
// gone is a no-op.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *CampsiteService) Delete(ctx context.Context, tripID, campsiteID string) (domain.Trip, error) {
	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		kept := trip.Campsites[:0]
		for _, site := range trip.Campsites {
			if site.ID != campsiteID {
				kept = append(kept, site)
			}
		}
		trip.Campsites = kept
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.CampsiteService.Delete: %w", err)
	}
	return trip, nil
}
