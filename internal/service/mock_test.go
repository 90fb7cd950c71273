package service_test

import (
	"context"

	"github.com/trailhead-app/trail-planner/internal/domain"
)

// fakeRepo is an in-memory StateRepo for service tests. Errors can be
// injected per call to exercise failure paths.
type fakeRepo struct {
	trips   []domain.Trip
	note    string
	loadErr error
	saveErr error
}

func (f *fakeRepo) Load(ctx context.Context) ([]domain.Trip, string, error) {
	if f.loadErr != nil {
		return nil, "", f.loadErr
	}
	return append([]domain.Trip(nil), f.trips...), f.note, nil
}

func (f *fakeRepo) Save(ctx context.Context, trips []domain.Trip) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.trips = trips
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, fn func(trips []domain.Trip) ([]domain.Trip, error)) ([]domain.Trip, error) {
	trips, _, err := f.Load(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(trips)
	if err != nil {
		return nil, err
	}
	if err := f.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
