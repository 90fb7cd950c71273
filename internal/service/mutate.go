package service

import (
	"context"
	"time"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/repo"
)

// mutateTrip applies fn to the trip with tripID inside a serialized snapshot
// update, refreshes the trip's UpdatedAt stamp, and returns the updated trip.
// Every child-entity mutation goes through here so the parent's updated
// timestamp can never be missed.
// Returns domain.ErrNotFound when the trip does not exist; when fn returns an
// error nothing is saved.
func mutateTrip(ctx context.Context, r repo.StateRepo, tripID string, fn func(trip *domain.Trip) error) (domain.Trip, error) {
	var out domain.Trip
	_, err := r.Update(ctx, func(trips []domain.Trip) ([]domain.Trip, error) {
		i := findTrip(trips, tripID)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		trip := trips[i]
		if err := fn(&trip); err != nil {
			return nil, err
		}
		trip.UpdatedAt = time.Now().UTC()
		trips[i] = trip
		out = trip
		return trips, nil
	})
	if err != nil {
		return domain.Trip{}, err
	}
	return out, nil
}
