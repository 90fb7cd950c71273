package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/service"
)

func newTrip(id, name, start string, status domain.TripStatus) domain.Trip {
	now := time.Now().UTC()
	return domain.Trip{
		ID:        id,
		Name:      name,
		Location:  "Somewhere",
		StartDate: start,
		EndDate:   start,
		Status:    status,
		Type:      "Camping",
		Invitees:  []domain.Invitee{},
		Campsites: []domain.Campsite{},
		Itinerary: []domain.ItineraryItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTripService_ListSortsAndFilters(t *testing.T) {
	repo := &fakeRepo{trips: []domain.Trip{
		newTrip("t1", "May trip", "2025-05-01", domain.TripStatusBooked),
		newTrip("t2", "March trip", "2025-03-01", domain.TripStatusPlanning),
		newTrip("t3", "Done trip", "2025-01-01", domain.TripStatusCompleted),
	}}
	svc := service.NewTripService(repo)
	ctx := context.Background()

	all, _, err := svc.List(ctx, service.FilterAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"t3", "t2", "t1"}, tripIDs(all))

	planning, _, err := svc.List(ctx, service.FilterPlanning)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, tripIDs(planning))

	booked, _, err := svc.List(ctx, service.FilterBooked)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, tripIDs(booked))

	completed, _, err := svc.List(ctx, service.FilterCompleted)
	require.NoError(t, err)
	assert.Equal(t, []string{"t3"}, tripIDs(completed))

	// Unknown filters behave like "all".
	unknown, _, err := svc.List(ctx, service.TripFilter("bogus"))
	require.NoError(t, err)
	assert.Len(t, unknown, 3)
}

func TestTripService_ListPassesMigrationNote(t *testing.T) {
	repo := &fakeRepo{note: "Migrated stored trips to the current snapshot format."}
	svc := service.NewTripService(repo)

	_, note, err := svc.List(context.Background(), service.FilterAll)

	require.NoError(t, err)
	assert.Equal(t, repo.note, note)
}

func TestTripService_Get(t *testing.T) {
	repo := &fakeRepo{trips: []domain.Trip{newTrip("t1", "Found", "2025-06-01", domain.TripStatusIdea)}}
	svc := service.NewTripService(repo)

	trip, err := svc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Found", trip.Name)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_Create(t *testing.T) {
	repo := &fakeRepo{}
	svc := service.NewTripService(repo)

	trip, err := svc.Create(context.Background(), domain.Trip{
		Name:      "  Algonquin Loop  ",
		Location:  "Algonquin Park",
		StartDate: "2025-07-10",
		EndDate:   "2025-07-14",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "Algonquin Loop", trip.Name, "name is trimmed")
	assert.Equal(t, domain.TripStatusPlanning, trip.Status, "status defaults to planning")
	assert.Equal(t, "Camping", trip.Type)
	assert.NotNil(t, trip.Invitees)
	assert.NotNil(t, trip.Campsites)
	assert.NotNil(t, trip.Itinerary)
	assert.False(t, trip.CreatedAt.IsZero())
	require.Len(t, repo.trips, 1)
	assert.Equal(t, trip.ID, repo.trips[0].ID)
}

func TestTripService_CreateValidation(t *testing.T) {
	svc := service.NewTripService(&fakeRepo{})
	ctx := context.Background()

	cases := map[string]domain.Trip{
		"blank name":       {Name: "   ", Location: "X", StartDate: "2025-07-10", EndDate: "2025-07-14"},
		"blank location":   {Name: "Trip", Location: " ", StartDate: "2025-07-10", EndDate: "2025-07-14"},
		"missing dates":    {Name: "Trip", Location: "X"},
		"unparseable date": {Name: "Trip", Location: "X", StartDate: "soonish", EndDate: "2025-07-14"},
		"end before start": {Name: "Trip", Location: "X", StartDate: "2025-07-14", EndDate: "2025-07-10"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTripService_UpdatePreservesChildren(t *testing.T) {
	stored := newTrip("t1", "Before", "2025-05-01", domain.TripStatusPlanning)
	stored.Invitees = []domain.Invitee{{ID: "i1", Name: "Sam", Status: domain.InviteeStatusAccepted}}
	repo := &fakeRepo{trips: []domain.Trip{stored}}
	svc := service.NewTripService(repo)

	updated, err := svc.Update(context.Background(), domain.Trip{
		ID:        "t1",
		Name:      "After",
		Location:  "New spot",
		StartDate: "2025-05-02",
		EndDate:   "2025-05-04",
		Status:    domain.TripStatusBooked,
	})

	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, domain.TripStatusBooked, updated.Status)
	require.Len(t, updated.Invitees, 1, "children survive a trip edit")
	assert.Equal(t, "Sam", updated.Invitees[0].Name)
	assert.True(t, updated.UpdatedAt.After(stored.UpdatedAt) || updated.UpdatedAt.Equal(stored.UpdatedAt))
}

func TestTripService_UpdateMissingTrip(t *testing.T) {
	svc := service.NewTripService(&fakeRepo{})

	_, err := svc.Update(context.Background(), domain.Trip{
		ID: "missing", Name: "X", Location: "Y",
		StartDate: "2025-05-01", EndDate: "2025-05-02",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_DeleteIsIdempotent(t *testing.T) {
	repo := &fakeRepo{trips: []domain.Trip{newTrip("t1", "Gone", "2025-05-01", domain.TripStatusIdea)}}
	svc := service.NewTripService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "t1"))
	assert.Empty(t, repo.trips)

	require.NoError(t, svc.Delete(ctx, "t1"), "deleting again is a no-op")
}

func TestTripService_Stats(t *testing.T) {
	repo := &fakeRepo{trips: []domain.Trip{
		newTrip("t1", "A", "2025-05-01", domain.TripStatusPlanning),
		newTrip("t2", "B", "2025-06-01", domain.TripStatusBooked),
	}}
	svc := service.NewTripService(repo)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Planning)
	assert.Equal(t, 1, stats.Booked)
}

func tripIDs(trips []domain.Trip) []string {
	ids := make([]string, len(trips))
	for i, trip := range trips {
		ids[i] = trip.ID
	}
	return ids
}
