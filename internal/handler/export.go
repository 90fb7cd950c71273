package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
)

// exportCSV handles GET /api/v1/export, streaming one CSV row per trip with
// its derived planning metrics.
func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trail-planner-export.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{
		"trip_id", "name", "location", "start_date", "end_date", "status", "type",
		"phase", "progress_score", "campsite_booked", "campsite_count",
		"itinerary_count", "completion_percent",
		"invitees_accepted", "invitees_pending", "invitees_declined",
	})
	for _, row := range rows {
		cw.Write([]string{
			row.TripID,
			row.Name,
			row.Location,
			row.StartDate,
			row.EndDate,
			row.Status,
			row.Type,
			row.Phase,
			strconv.Itoa(row.ProgressScore),
			strconv.FormatBool(row.CampsiteBooked),
			strconv.Itoa(row.CampsiteCount),
			strconv.Itoa(row.ItineraryCount),
			strconv.Itoa(row.CompletionPercent),
			strconv.Itoa(row.InviteesAccepted),
			strconv.Itoa(row.InviteesPending),
			strconv.Itoa(row.InviteesDeclined),
		})
	}
	cw.Flush()
}
