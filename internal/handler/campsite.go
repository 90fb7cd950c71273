package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/service"
)

// campsiteRequest is the JSON body for adding or updating a campsite.
type campsiteRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type voteRequest struct {
	Direction string `json:"direction"`
}

// addCampsite handles POST /api/v1/trips/{tripID}/campsites.
// Responds with the full updated trip.
func (s *Server) addCampsite(w http.ResponseWriter, r *http.Request) {
	var req campsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.campsites.Add(r.Context(), chi.URLParam(r, "tripID"), domain.Campsite{
		Name:   req.Name,
		Source: req.Source,
		Status: domain.CampsiteStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTripResponse(trip))
}

// updateCampsite handles PUT /api/v1/trips/{tripID}/campsites/{campsiteID}.
func (s *Server) updateCampsite(w http.ResponseWriter, r *http.Request) {
	var req campsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.campsites.Update(r.Context(), chi.URLParam(r, "tripID"), domain.Campsite{
		ID:     chi.URLParam(r, "campsiteID"),
		Name:   req.Name,
		Source: req.Source,
		Status: domain.CampsiteStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// setCampsiteStatus handles PUT /api/v1/trips/{tripID}/campsites/{campsiteID}/status.
func (s *Server) setCampsiteStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.campsites.SetStatus(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "campsiteID"), req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// voteCampsite handles POST /api/v1/trips/{tripID}/campsites/{campsiteID}/vote.
func (s *Server) voteCampsite(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.campsites.Vote(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "campsiteID"), service.VoteDirection(req.Direction))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// deleteCampsite handles DELETE /api/v1/trips/{tripID}/campsites/{campsiteID}.
func (s *Server) deleteCampsite(w http.ResponseWriter, r *http.Request) {
	trip, err := s.campsites.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "campsiteID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}
