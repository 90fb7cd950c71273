package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trailhead-app/trail-planner/internal/domain"
)

// inviteeRequest is the JSON body for adding or updating an invitee.
type inviteeRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// addInvitee handles POST /api/v1/trips/{tripID}/invitees.
// Responds with the full updated trip.
func (s *Server) addInvitee(w http.ResponseWriter, r *http.Request) {
	var req inviteeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.invitees.Add(r.Context(), chi.URLParam(r, "tripID"), domain.Invitee{
		Name:   req.Name,
		Status: domain.InviteeStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTripResponse(trip))
}

// updateInvitee handles PUT /api/v1/trips/{tripID}/invitees/{inviteeID}.
func (s *Server) updateInvitee(w http.ResponseWriter, r *http.Request) {
	var req inviteeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.invitees.Update(r.Context(), chi.URLParam(r, "tripID"), domain.Invitee{
		ID:     chi.URLParam(r, "inviteeID"),
		Name:   req.Name,
		Status: domain.InviteeStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// setInviteeStatus handles PUT /api/v1/trips/{tripID}/invitees/{inviteeID}/status.
func (s *Server) setInviteeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.invitees.SetStatus(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "inviteeID"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// deleteInvitee handles DELETE /api/v1/trips/{tripID}/invitees/{inviteeID}.
func (s *Server) deleteInvitee(w http.ResponseWriter, r *http.Request) {
	trip, err := s.invitees.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "inviteeID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}
