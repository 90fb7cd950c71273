package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/trailhead-app/trail-planner/internal/domain"
)

// SchemaVersion is the current snapshot schema version. It is bumped only on
// breaking changes to the snapshot shape.
const SchemaVersion = 1

// state is the persisted wrapper around the trip collection.
type state struct {
	SchemaVersion int           `json:"schemaVersion"`
	Trips         []domain.Trip `json:"trips"`
}

// Encode serializes trips as the current versioned snapshot.
func Encode(trips []domain.Trip) ([]byte, error) {
	data, err := json.Marshal(state{SchemaVersion: SchemaVersion, Trips: trips})
	if err != nil {
		return nil, fmt.Errorf("snapshot.Encode: %w", err)
	}
	return data, nil
}

// Decode parses a stored snapshot and normalizes every trip record in it.
// Three shapes are accepted:
//   - the current versioned wrapper {schemaVersion, trips}
//   - a wrapper {trips: [...]} with no schemaVersion (legacy)
//   - a bare JSON array of trip-like records (legacy)
//
// The second return value reports whether the data was in a legacy shape and
// should be re-saved under the current schema. An error means the data is
// unreadable; callers recover by starting from an empty collection.
func Decode(data []byte) ([]domain.Trip, bool, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, false, fmt.Errorf("snapshot.Decode: %w", err)
	}

	switch v := value.(type) {
	case []any:
		return normalizeAll(v), true, nil
	case map[string]any:
		entries, ok := v["trips"].([]any)
		if !ok {
			return nil, false, fmt.Errorf("snapshot.Decode: no trips array in snapshot")
		}
		_, versioned := v["schemaVersion"].(float64)
		return normalizeAll(entries), !versioned, nil
	default:
		return nil, false, fmt.Errorf("snapshot.Decode: unexpected snapshot shape")
	}
}

func normalizeAll(entries []any) []domain.Trip {
	trips := make([]domain.Trip, 0, len(entries))
	for _, entry := range entries {
		trips = append(trips, NormalizeTrip(record(entry)))
	}
	return trips
}
