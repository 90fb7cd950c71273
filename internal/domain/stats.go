package domain

import "math"

// Stats aggregates planning progress across the whole trip collection.
type Stats struct {
	// Total is the number of trips.
	Total int `json:"total"`
	// Planning counts trips still being worked on (idea, planning, in_progress).
	Planning int `json:"planning"`
	// Booked counts trips with status booked.
	Booked int `json:"booked"`
	// Completed counts trips with status completed.
	Completed int `json:"completed"`
	// CampsiteDecided counts trips that have a booked campsite.
	CampsiteDecided int `json:"campsiteDecided"`
	// AvgItineraryCompletion is the mean itinerary completion percent across
	// all trips, rounded; 0 when there are no trips.
	AvgItineraryCompletion int `json:"avgItineraryCompletion"`
}

// ComputeStats derives collection-wide Stats from the given trips.
func ComputeStats(trips []Trip) Stats {
	stats := Stats{Total: len(trips)}

	completionSum := 0
	for _, trip := range trips {
		switch trip.Status {
		case TripStatusIdea, TripStatusPlanning, TripStatusInProgress:
			stats.Planning++
		case TripStatusBooked:
			stats.Booked++
		case TripStatusCompleted:
			stats.Completed++
		}
		if CampsiteBooked(trip) {
			stats.CampsiteDecided++
		}
		completionSum += ItineraryCompletionPercent(trip)
	}

	if stats.Total > 0 {
		stats.AvgItineraryCompletion = int(math.Round(float64(completionSum) / float64(stats.Total)))
	}
	return stats
}
