package repo_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/repo"
	"github.com/trailhead-app/trail-planner/internal/snapshot"
	"github.com/trailhead-app/trail-planner/testutil"
)

// seed writes a raw value under an arbitrary snapshot key, bypassing the repo.
func seed(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, '2024-01-01T00:00:00Z')`,
		key, value,
	)
	require.NoError(t, err)
}

func TestStateRepo_LoadEmpty(t *testing.T) {
	r := repo.NewStateRepo(testutil.NewDB(t))

	trips, note, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.Empty(t, note)
}

func TestStateRepo_SaveLoadRoundTrip(t *testing.T) {
	r := repo.NewStateRepo(testutil.NewDB(t))
	ctx := context.Background()

	saved := []domain.Trip{snapshot.NormalizeTrip(map[string]any{
		"id":     "t1",
		"name":   "Killarney",
		"status": "booked",
		"campsites": []any{map[string]any{
			"id": "c1", "name": "George Lake", "status": "booked",
		}},
	})}
	require.NoError(t, r.Save(ctx, saved))

	trips, note, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, note)
	assert.Equal(t, saved, trips)
}

func TestStateRepo_LoadMigratesLegacyShape(t *testing.T) {
	db := testutil.NewDB(t)
	r := repo.NewStateRepo(db)
	ctx := context.Background()

	// A bare array under the current key predates the versioned wrapper.
	seed(t, db, "trail_planner_state", `[{"id":"t1","name":"Algonquin"}]`)

	trips, note, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Migrated stored trips to the current snapshot format.", note)
	require.Len(t, trips, 1)
	assert.Equal(t, "Algonquin", trips[0].Name)

	// The migration re-saves immediately; a second load is already current.
	trips, note, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, note)
	assert.Len(t, trips, 1)
}

func TestStateRepo_LoadProbesLegacyKeys(t *testing.T) {
	db := testutil.NewDB(t)
	r := repo.NewStateRepo(db)
	ctx := context.Background()

	seed(t, db, "trail_planner_trips_v2", `[{"id":"t1","name":"Bruce Trail"}]`)

	trips, note, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `Migrated trips from legacy storage key "trail_planner_trips_v2".`, note)
	require.Len(t, trips, 1)
	assert.Equal(t, "Bruce Trail", trips[0].Name)

	trips, note, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, note)
	assert.Len(t, trips, 1)
}

func TestStateRepo_LoadSkipsUnreadableLegacyKey(t *testing.T) {
	db := testutil.NewDB(t)
	r := repo.NewStateRepo(db)

	seed(t, db, "trail_planner_trips_v2", `{garbage`)
	seed(t, db, "trail_planner_trips_v1", `[{"id":"t1","name":"Rideau"}]`)

	trips, note, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, `Migrated trips from legacy storage key "trail_planner_trips_v1".`, note)
	require.Len(t, trips, 1)
	assert.Equal(t, "Rideau", trips[0].Name)
}

func TestStateRepo_LoadCorruptCurrentKey(t *testing.T) {
	db := testutil.NewDB(t)
	r := repo.NewStateRepo(db)

	seed(t, db, "trail_planner_state", `{not json at all`)

	trips, note, err := r.Load(context.Background())

	require.NoError(t, err, "corruption is recovered, not surfaced as an error")
	assert.Empty(t, trips)
	assert.Equal(t, "Saved data looked corrupted. Starting with a clean state.", note)
}

func TestStateRepo_UpdatePersists(t *testing.T) {
	r := repo.NewStateRepo(testutil.NewDB(t))
	ctx := context.Background()

	added := snapshot.NormalizeTrip(map[string]any{"id": "t1", "name": "Gatineau"})
	updated, err := r.Update(ctx, func(trips []domain.Trip) ([]domain.Trip, error) {
		return append(trips, added), nil
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	trips, _, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, trips)
}

func TestStateRepo_UpdateErrorSavesNothing(t *testing.T) {
	r := repo.NewStateRepo(testutil.NewDB(t))
	ctx := context.Background()

	seedTrip := snapshot.NormalizeTrip(map[string]any{"id": "t1", "name": "Tremblant"})
	require.NoError(t, r.Save(ctx, []domain.Trip{seedTrip}))

	boom := errors.New("boom")
	_, err := r.Update(ctx, func(trips []domain.Trip) ([]domain.Trip, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	trips, _, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Tremblant", trips[0].Name)
}
