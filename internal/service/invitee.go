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

// InviteeService implements business logic for a trip's invitees.
// Every mutation returns the full updated trip: callers re-render from the
// trip rather than patching shared objects in place.
type InviteeService struct {
	repo repo.StateRepo
}

// NewInviteeService constructs an InviteeService backed by the provided
// StateRepo.
func NewInviteeService(r repo.StateRepo) *InviteeService {
	return &InviteeService{repo: r}
}

// Add validates and appends a new invitee to the trip.
// Returns domain.ErrValidation if the name is empty, domain.ErrNotFound if
// the trip does not exist.
func (s *InviteeService) Add(ctx context.Context, tripID string, in domain.Invitee) (domain.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: invitee name is required", domain.ErrValidation)
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		trip.Invitees = append(trip.Invitees, domain.Invitee{
			ID:        uuid.NewString(),
			Name:      name,
			Status:    domain.InviteeStatusOrDefault(string(in.Status)),
			Notes:     strings.TrimSpace(in.Notes),
			CreatedAt: time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.InviteeService.Add: %w", err)
	}
	return trip, nil
}

// Update overwrites the editable fields of an existing invitee. An invitee ID
// no longer present is a silent no-op: the edit may have raced a delete in
// the same session, so the trip is returned unchanged.
// Returns domain.ErrValidation if the name is empty, domain.ErrNotFound if
// the trip does not exist.
func (s *InviteeService) Update(ctx context.Context, tripID string, in domain.Invitee) (domain.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("%w: invitee name is required", domain.ErrValidation)
	}

	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i, invitee := range trip.Invitees {
			if invitee.ID != in.ID {
				continue
			}
			invitee.Name = name
			invitee.Status = domain.InviteeStatusOrDefault(string(in.Status))
			invitee.Notes = strings.TrimSpace(in.Notes)
			trip.Invitees[i] = invitee
			break
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.InviteeService.Update: %w", err)
	}
	return trip, nil
}

// SetStatus changes one invitee's RSVP status, coercing unknown values to
// pending. A stale invitee ID is a silent no-op.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *InviteeService) SetStatus(ctx context.Context, tripID, inviteeID, status string) (domain.Trip, error) {
	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		for i := range trip.Invitees {
			if trip.Invitees[i].ID == inviteeID {
				trip.Invitees[i].Status = domain.InviteeStatusOrDefault(status)
				break
			}
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.InviteeService.SetStatus: %w", err)
	}
	return trip, nil
}

// Delete removes an invitee from the trip. Deleting an ID that is already
// gone is a no-op.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *InviteeService) Delete(ctx context.Context, tripID, inviteeID string) (domain.Trip, error) {
	trip, err := mutateTrip(ctx, s.repo, tripID, func(trip *domain.Trip) error {
		kept := trip.Invitees[:0]
		for _, invitee := range trip.Invitees {
			if invitee.ID != inviteeID {
				kept = append(kept, invitee)
			}
		}
		trip.Invitees = kept
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.InviteeService.Delete: %w", err)
	}
	return trip, nil
}
