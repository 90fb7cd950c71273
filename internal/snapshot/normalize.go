// Package snapshot turns arbitrary persisted records into well-formed domain
// entities and encodes/decodes the versioned snapshot of the trip collection.
// It is the single place that tolerates malformed, partial, or legacy-shaped
// data: everything past this boundary is fully typed and fully populated.
package snapshot

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/trailhead-app/trail-planner/internal/domain"
)

// Default display names used when a record carries no usable name/title.
const (
	defaultTripName      = "Untitled Trip"
	defaultTripType      = "Camping"
	defaultCampsiteName  = "Untitled campsite"
	defaultItineraryName = "Untitled item"
	defaultInviteeName   = "Unnamed invitee"
)

// NormalizeTrip coerces an arbitrary JSON-decoded record into a fully
// populated Trip. Missing or invalid fields fall back to documented defaults;
// child collections are normalized recursively. Normalization never fails and
// is idempotent: ids and timestamps already present are preserved.
func NormalizeTrip(raw map[string]any) domain.Trip {
	now := time.Now().UTC()
	return domain.Trip{
		ID:        idField(raw, "id"),
		Name:      stringField(raw, "name", defaultTripName),
		Location:  stringField(raw, "location", ""),
		StartDate: stringField(raw, "startDate", ""),
		EndDate:   stringField(raw, "endDate", ""),
		Status:    domain.TripStatusOrDefault(stringField(raw, "status", "")),
		Type:      stringField(raw, "type", defaultTripType),
		Notes:     stringField(raw, "notes", ""),
		Invitees:  normalizeInvitees(raw["invitees"]),
		Campsites: normalizeCampsites(raw["campsites"]),
		Itinerary: normalizeItinerary(raw["itinerary"]),
		CreatedAt: timeField(raw, "createdAt", now),
		UpdatedAt: timeField(raw, "updatedAt", now),
	}
}

// NormalizeInvitee coerces an arbitrary record into a fully populated Invitee.
func NormalizeInvitee(raw map[string]any) domain.Invitee {
	return domain.Invitee{
		ID:        idField(raw, "id"),
		Name:      stringField(raw, "name", defaultInviteeName),
		Status:    domain.InviteeStatusOrDefault(stringField(raw, "status", "")),
		Notes:     stringField(raw, "notes", ""),
		CreatedAt: timeField(raw, "createdAt", time.Now().UTC()),
	}
}

// NormalizeCampsite coerces an arbitrary record into a fully populated
// Campsite. Vote counts clamp to zero.
func NormalizeCampsite(raw map[string]any) domain.Campsite {
	return domain.Campsite{
		ID:        idField(raw, "id"),
		Name:      stringField(raw, "name", defaultCampsiteName),
		Source:    stringField(raw, "source", ""),
		Status:    domain.CampsiteStatusOrDefault(stringField(raw, "status", "")),
		Upvotes:   intField(raw, "upvotes", 0),
		Downvotes: intField(raw, "downvotes", 0),
		Notes:     stringField(raw, "notes", ""),
		CreatedAt: timeField(raw, "createdAt", time.Now().UTC()),
	}
}

// NormalizeItineraryItem coerces an arbitrary record into a fully populated
// ItineraryItem. DayNumber and SortOrder clamp to one.
func NormalizeItineraryItem(raw map[string]any) domain.ItineraryItem {
	return domain.ItineraryItem{
		ID:         idField(raw, "id"),
		DayNumber:  intField(raw, "dayNumber", 1),
		Title:      stringField(raw, "title", defaultItineraryName),
		Details:    stringField(raw, "details", ""),
		IsComplete: raw["isComplete"] == true,
		SortOrder:  intField(raw, "sortOrder", 1),
		CreatedAt:  timeField(raw, "createdAt", time.Now().UTC()),
	}
}

// normalizeInvitees handles both shapes the invitees field has ever had: the
// current list of invitee records, and the legacy aggregate
// {acceptedCount, pendingCount, declinedCount}. The aggregate migrates
// one-way into placeholder invitees named after their status and ordinal;
// original names are not recoverable.
func normalizeInvitees(value any) []domain.Invitee {
	switch v := value.(type) {
	case []any:
		out := make([]domain.Invitee, 0, len(v))
		for _, entry := range v {
			out = append(out, NormalizeInvitee(record(entry)))
		}
		return out
	case map[string]any:
		return migrateInviteeSummary(v)
	default:
		return []domain.Invitee{}
	}
}

func migrateInviteeSummary(summary map[string]any) []domain.Invitee {
	migrated := []domain.Invitee{}
	migrated = appendPlaceholders(migrated, intField(summary, "acceptedCount", 0), domain.InviteeStatusAccepted)
	migrated = appendPlaceholders(migrated, intField(summary, "pendingCount", 0), domain.InviteeStatusPending)
	migrated = appendPlaceholders(migrated, intField(summary, "declinedCount", 0), domain.InviteeStatusDeclined)
	return migrated
}

func appendPlaceholders(invitees []domain.Invitee, count int, status domain.InviteeStatus) []domain.Invitee {
	for i := 0; i < count; i++ {
		invitees = append(invitees, domain.Invitee{
			ID:        uuid.NewString(),
			Name:      fmt.Sprintf("%s invitee %d", domain.FormatStatus(string(status)), i+1),
			Status:    status,
			CreatedAt: time.Now().UTC(),
		})
	}
	return invitees
}

func normalizeCampsites(value any) []domain.Campsite {
	entries, ok := value.([]any)
	if !ok {
		return []domain.Campsite{}
	}
	out := make([]domain.Campsite, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NormalizeCampsite(record(entry)))
	}
	return out
}

func normalizeItinerary(value any) []domain.ItineraryItem {
	entries, ok := value.([]any)
	if !ok {
		return []domain.ItineraryItem{}
	}
	out := make([]domain.ItineraryItem, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NormalizeItineraryItem(record(entry)))
	}
	return out
}

// record coerces a decoded JSON value to a map, yielding an empty map for
// anything else so entity normalizers always have something to read from.
func record(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// idField returns the stored id, or a freshly generated one when the record
// has no usable value. Existing ids are kept verbatim (identity never changes
// after creation), whatever their format.
func idField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return uuid.NewString()
}

func stringField(raw map[string]any, key, fallback string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// intField coerces numbers and numeric strings to an int, clamping anything
// below floor (including unparseable values) to floor.
func intField(raw map[string]any, key string, floor int) int {
	n := floor
	switch v := raw[key].(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			n = parsed
		}
	}
	if n < floor {
		return floor
	}
	return n
}

// timeField parses a stored RFC 3339 timestamp, stamping fallback (the
// current instant at normalization time) when the value is missing or
// unreadable.
func timeField(raw map[string]any, key string, fallback time.Time) time.Time {
	s, ok := raw[key].(string)
	if !ok {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fallback
	}
	return t
}
