package domain

// ExportRow is a single row in the full-data export: a flat, denormalized
// view of one trip with its derived planning metrics. Dates keep their stored
// "2006-01-02" string form (empty when unset).
type ExportRow struct {
	TripID    string
	Name      string
	Location  string
	StartDate string
	EndDate   string
	Status    string
	Type      string

	// Derived metrics.
	Phase              string
	ProgressScore      int
	CampsiteBooked     bool
	CampsiteCount      int
	ItineraryCount     int
	CompletionPercent  int
	InviteesAccepted   int
	InviteesPending    int
	InviteesDeclined   int
}

// ExportRowOf flattens one trip into an ExportRow.
func ExportRowOf(trip Trip) ExportRow {
	summary := InviteeSummaryOf(trip)
	return ExportRow{
		TripID:            trip.ID,
		Name:              trip.Name,
		Location:          trip.Location,
		StartDate:         trip.StartDate,
		EndDate:           trip.EndDate,
		Status:            string(trip.Status),
		Type:              trip.Type,
		Phase:             PhaseLabel(trip),
		ProgressScore:     ProgressScore(trip),
		CampsiteBooked:    CampsiteBooked(trip),
		CampsiteCount:     len(trip.Campsites),
		ItineraryCount:    len(trip.Itinerary),
		CompletionPercent: ItineraryCompletionPercent(trip),
		InviteesAccepted:  summary.Accepted,
		InviteesPending:   summary.Pending,
		InviteesDeclined:  summary.Declined,
	}
}
