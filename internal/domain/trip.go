// Package domain contains the core data types and pure planning logic for the
// Trail Planner application. This package has no storage or HTTP dependencies
// and is imported by every other internal package (snapshot, repo, service,
// handler).
package domain

import (
	"sort"
	"strings"
	"time"
)

// TripStatus is the lifecycle status of a trip.
type TripStatus string

const (
	TripStatusIdea       TripStatus = "idea"
	TripStatusPlanning   TripStatus = "planning"
	TripStatusBooked     TripStatus = "booked"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// TripStatuses lists every valid trip status, in display order.
var TripStatuses = []TripStatus{
	TripStatusIdea,
	TripStatusPlanning,
	TripStatusBooked,
	TripStatusInProgress,
	TripStatusCompleted,
	TripStatusCancelled,
}

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	for _, known := range TripStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// TripStatusOrDefault coerces an arbitrary string to a valid TripStatus,
// falling back to TripStatusPlanning for anything unknown.
func TripStatusOrDefault(s string) TripStatus {
	if status := TripStatus(s); status.Valid() {
		return status
	}
	return TripStatusPlanning
}

// Trip is the top-level planning unit. It exclusively owns its invitees,
// campsites, and itinerary; children are never shared between trips and are
// removed with the trip.
//
// StartDate and EndDate are calendar dates in "2006-01-02" form. They are kept
// as strings because stored data may carry empty or unparseable values that
// the model must tolerate; ParseDate is the single place that interprets them.
type Trip struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Status    TripStatus      `json:"status"`
	Type      string          `json:"type"`
	Notes     string          `json:"notes"`
	Invitees  []Invitee       `json:"invitees"`
	Campsites []Campsite      `json:"campsites"`
	Itinerary []ItineraryItem `json:"itinerary"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ParseDate interprets a stored calendar-date string. It accepts the plain
// "2006-01-02" form and, for tolerance of older data, a full RFC 3339 instant.
// The second return value is false when the string holds no usable date.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SortTripsByStartDate returns a new slice ordered by start date ascending.
// Trips whose start date is missing or unparseable sort last. The sort is
// stable, so ties keep their input order.
func SortTripsByStartDate(trips []Trip) []Trip {
	sorted := make([]Trip, len(trips))
	copy(sorted, trips)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOK := ParseDate(sorted[i].StartDate)
		b, bOK := ParseDate(sorted[j].StartDate)
		if aOK != bOK {
			return aOK // dated trips before undated ones
		}
		if !aOK {
			return false
		}
		return a.Before(b)
	})
	return sorted
}

// FormatStatus renders a status value for humans: underscores become spaces
// and each word is capitalized, e.g. "in_progress" -> "In Progress".
func FormatStatus(value string) string {
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
