// Package repo contains the persistence adapter for the Trail Planner API.
// The entire trip collection is stored as one versioned JSON snapshot in a
// SQLite key/value table; no business logic lives here.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/snapshot"
)

// snapshotKey is where the current snapshot lives. legacyKeys are older
// storage locations, probed in order when the current key is empty; a hit is
// migrated and re-saved under snapshotKey.
const snapshotKey = "trail_planner_state"

var legacyKeys = []string{"trail_planner_trips_v2", "trail_planner_trips_v1"}

// corruptNote is the advisory returned when stored data cannot be read.
// Corruption is recovered locally, never surfaced as an error.
const corruptNote = "Saved data looked corrupted. Starting with a clean state."

// StateRepo defines snapshot persistence for the trip collection.
// The service layer depends on this interface, not the SQLite implementation,
// which allows services to be unit-tested with a mock.
type StateRepo interface {
	// Load returns the normalized trip collection plus an advisory migration
	// note ("" when the stored data was already current and readable).
	// Unreadable data yields an empty collection and a note, not an error;
	// the error return is reserved for storage I/O failures.
	Load(ctx context.Context) ([]domain.Trip, string, error)

	// Save persists trips as the current versioned snapshot.
	Save(ctx context.Context, trips []domain.Trip) error

	// Update runs fn against the loaded collection and saves its result,
	// serialized against every other Update/Save on this repo. When fn
	// returns an error nothing is saved and the error is passed through.
	Update(ctx context.Context, fn func(trips []domain.Trip) ([]domain.Trip, error)) ([]domain.Trip, error)
}

// sqliteStateRepo is the SQLite implementation of StateRepo.
// The mutex serializes read-modify-write cycles: the engine is single-writer
// and edits are applied one at a time.
type sqliteStateRepo struct {
	db *sql.DB
	mu sync.Mutex
}

// NewStateRepo constructs a StateRepo backed by the provided SQLite handle.
// The snapshots table must exist (see the migrations package).
func NewStateRepo(db *sql.DB) StateRepo {
	return &sqliteStateRepo{db: db}
}

func (r *sqliteStateRepo) Load(ctx context.Context) ([]domain.Trip, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

func (r *sqliteStateRepo) Save(ctx context.Context, trips []domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(ctx, trips)
}

func (r *sqliteStateRepo) Update(ctx context.Context, fn func(trips []domain.Trip) ([]domain.Trip, error)) ([]domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, _, err := r.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(trips)
	if err != nil {
		return nil, err
	}
	if err := r.saveLocked(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// loadLocked reads the snapshot under the current key, falling back to legacy
// keys. Any legacy shape or legacy key hit is normalized and immediately
// re-saved under the current schema.
func (r *sqliteStateRepo) loadLocked(ctx context.Context) ([]domain.Trip, string, error) {
	raw, found, err := r.get(ctx, snapshotKey)
	if err != nil {
		return nil, "", fmt.Errorf("repo.StateRepo.Load: %w", err)
	}

	if found {
		trips, legacy, err := snapshot.Decode(raw)
		if err != nil {
			return []domain.Trip{}, corruptNote, nil
		}
		if legacy {
			if err := r.saveLocked(ctx, trips); err != nil {
				return nil, "", fmt.Errorf("repo.StateRepo.Load: re-save migrated snapshot: %w", err)
			}
			return trips, "Migrated stored trips to the current snapshot format.", nil
		}
		return trips, "", nil
	}

	for _, key := range legacyKeys {
		raw, found, err := r.get(ctx, key)
		if err != nil {
			return nil, "", fmt.Errorf("repo.StateRepo.Load: %w", err)
		}
		if !found {
			continue
		}
		trips, _, err := snapshot.Decode(raw)
		if err != nil {
			// Unreadable legacy data; keep probing older keys.
			continue
		}
		if err := r.saveLocked(ctx, trips); err != nil {
			return nil, "", fmt.Errorf("repo.StateRepo.Load: re-save migrated snapshot: %w", err)
		}
		return trips, fmt.Sprintf("Migrated trips from legacy storage key %q.", key), nil
	}

	return []domain.Trip{}, "", nil
}

func (r *sqliteStateRepo) saveLocked(ctx context.Context, trips []domain.Trip) error {
	data, err := snapshot.Encode(trips)
	if err != nil {
		return fmt.Errorf("repo.StateRepo.Save: %w", err)
	}

	const q = `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, q, snapshotKey, string(data), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("repo.StateRepo.Save: %w", err)
	}
	return nil
}

// get reads one value from the snapshots table. The middle return value
// reports whether the key exists.
func (r *sqliteStateRepo) get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM snapshots WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}
