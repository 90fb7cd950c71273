package snapshot_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/snapshot"
)

func TestDecode_CurrentShape(t *testing.T) {
	data := []byte(`{"schemaVersion":1,"trips":[{"id":"t1","name":"Bon Echo"}]}`)

	trips, legacy, err := snapshot.Decode(data)

	require.NoError(t, err)
	assert.False(t, legacy)
	require.Len(t, trips, 1)
	assert.Equal(t, "t1", trips[0].ID)
	assert.Equal(t, "Bon Echo", trips[0].Name)
	assert.Equal(t, domain.TripStatusPlanning, trips[0].Status, "records are normalized on every load")
}

func TestDecode_BareArrayIsLegacy(t *testing.T) {
	data := []byte(`[{"id":"t1"},{"id":"t2"}]`)

	trips, legacy, err := snapshot.Decode(data)

	require.NoError(t, err)
	assert.True(t, legacy)
	require.Len(t, trips, 2)
	assert.Equal(t, "Untitled Trip", trips[0].Name)
}

func TestDecode_WrapperWithoutVersionIsLegacy(t *testing.T) {
	data := []byte(`{"trips":[{"id":"t1","name":"Frontenac"}]}`)

	trips, legacy, err := snapshot.Decode(data)

	require.NoError(t, err)
	assert.True(t, legacy)
	require.Len(t, trips, 1)
	assert.Equal(t, "Frontenac", trips[0].Name)
}

func TestDecode_Unreadable(t *testing.T) {
	for _, data := range []string{`{broken`, `"just a string"`, `{"nope":true}`} {
		_, _, err := snapshot.Decode([]byte(data))
		assert.Error(t, err, "input %q", data)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	trips := []domain.Trip{snapshot.NormalizeTrip(map[string]any{
		"id":   "t1",
		"name": "Silent Lake",
		"campsites": []any{map[string]any{
			"id": "c1", "name": "Lakeside", "status": "booked",
		}},
	})}

	data, err := snapshot.Encode(trips)
	require.NoError(t, err)

	// The wrapper carries the current schema version.
	var wrapper map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wrapper))
	assert.JSONEq(t, "1", string(wrapper["schemaVersion"]))

	decoded, legacy, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.False(t, legacy)
	assert.Equal(t, trips, decoded)
}
