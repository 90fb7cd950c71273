package domain

import "math"

// Phase labels returned by PhaseLabel, from first planning step to done.
const (
	PhaseAddCandidates     = "Add campsite candidates"
	PhaseChooseCampsite    = "Choose and book a campsite"
	PhaseBuildItinerary    = "Build itinerary"
	PhaseFinalizeItinerary = "Finalize itinerary"
	PhaseComplete          = "MVP planning complete"
)

// InviteeSummary holds invitee counts by RSVP status.
type InviteeSummary struct {
	Accepted int `json:"accepted"`
	Pending  int `json:"pending"`
	Declined int `json:"declined"`
}

// InviteeSummaryOf counts a trip's invitees by status. Statuses outside the
// known set are ignored.
func InviteeSummaryOf(trip Trip) InviteeSummary {
	var summary InviteeSummary
	for _, invitee := range trip.Invitees {
		switch invitee.Status {
		case InviteeStatusAccepted:
			summary.Accepted++
		case InviteeStatusPending:
			summary.Pending++
		case InviteeStatusDeclined:
			summary.Declined++
		}
	}
	return summary
}

// ItineraryCompletionPercent returns the percentage of completed itinerary
// items, rounded to the nearest integer, or 0 for an empty itinerary.
func ItineraryCompletionPercent(trip Trip) int {
	total := len(trip.Itinerary)
	if total == 0 {
		return 0
	}
	done := 0
	for _, item := range trip.Itinerary {
		if item.IsComplete {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// CampsiteBooked reports whether any campsite on the trip is booked.
// EnforceSingleBooked guarantees at most one such campsite exists.
func CampsiteBooked(trip Trip) bool {
	for _, site := range trip.Campsites {
		if site.Status == CampsiteStatusBooked {
			return true
		}
	}
	return false
}

// PhaseLabel summarizes where the trip stands in planning. Rules are
// evaluated in order; the first match wins.
func PhaseLabel(trip Trip) string {
	switch {
	case len(trip.Campsites) == 0:
		return PhaseAddCandidates
	case !CampsiteBooked(trip):
		return PhaseChooseCampsite
	case len(trip.Itinerary) == 0:
		return PhaseBuildItinerary
	case ItineraryCompletionPercent(trip) < 100:
		return PhaseFinalizeItinerary
	default:
		return PhaseComplete
	}
}

// ProgressScore is a weighted 0-100 planning completion metric: 20 points for
// having at least one campsite candidate, 35 for a booked campsite, up to 35
// for itinerary completion, and 10 for having at least one invitee. The total
// saturates at 100.
func ProgressScore(trip Trip) int {
	score := 0
	if len(trip.Campsites) > 0 {
		score += 20
	}
	if CampsiteBooked(trip) {
		score += 35
	}
	score += int(math.Round(float64(ItineraryCompletionPercent(trip)) * 0.35))
	if len(trip.Invitees) > 0 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}
