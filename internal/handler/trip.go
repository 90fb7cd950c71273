package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/service"
)

// tripRequest is the JSON body for creating or updating a trip.
type tripRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
}

// tripResponse is a trip plus its derived planning progress. Embedding the
// progress block means clients never recompute planning metrics themselves.
type tripResponse struct {
	domain.Trip
	Progress progressBlock `json:"progress"`
}

type progressBlock struct {
	Phase             string                `json:"phase"`
	Score             int                   `json:"score"`
	CompletionPercent int                   `json:"itineraryCompletionPercent"`
	CampsiteBooked    bool                  `json:"campsiteBooked"`
	Invitees          domain.InviteeSummary `json:"invitees"`
}

type tripListResponse struct {
	Data []tripResponse `json:"data"`
	// MigrationNote is a non-fatal advisory set when loading the stored
	// snapshot required a migration or recovery.
	MigrationNote string `json:"migrationNote,omitempty"`
}

func toTripResponse(t domain.Trip) tripResponse {
	t.Itinerary = domain.SortItinerary(t.Itinerary)
	return tripResponse{
		Trip: t,
		Progress: progressBlock{
			Phase:             domain.PhaseLabel(t),
			Score:             domain.ProgressScore(t),
			CompletionPercent: domain.ItineraryCompletionPercent(t),
			CampsiteBooked:    domain.CampsiteBooked(t),
			Invitees:          domain.InviteeSummaryOf(t),
		},
	}
}

// listTrips handles GET /api/v1/trips.
// Supports ?status=all|planning|booked|completed (default all).
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	filter := service.TripFilter(r.URL.Query().Get("status"))
	if filter == "" {
		filter = service.FilterAll
	}

	trips, note, err := s.trips.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := tripListResponse{Data: make([]tripResponse, len(trips)), MigrationNote: note}
	for i, t := range trips {
		resp.Data[i] = toTripResponse(t)
	}
	respondJSON(w, http.StatusOK, resp)
}

// createTrip handles POST /api/v1/trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	created, err := s.trips.Create(r.Context(), tripFromRequest(req))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTripResponse(created))
}

// getTrip handles GET /api/v1/trips/{tripID}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// updateTrip handles PUT /api/v1/trips/{tripID}.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip := tripFromRequest(req)
	trip.ID = chi.URLParam(r, "tripID")

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(updated))
}

// deleteTrip handles DELETE /api/v1/trips/{tripID}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// stats handles GET /api/v1/stats.
func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.trips.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func tripFromRequest(req tripRequest) domain.Trip {
	return domain.Trip{
		Name:      req.Name,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.TripStatus(req.Status),
		Type:      req.Type,
		Notes:     req.Notes,
	}
}
