package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trailhead-app/trail-planner/internal/domain"
)

// itineraryRequest is the JSON body for adding or updating an itinerary item.
type itineraryRequest struct {
	DayNumber int    `json:"dayNumber"`
	Title     string `json:"title"`
	Details   string `json:"details"`
}

type completeRequest struct {
	IsComplete bool `json:"isComplete"`
}

type moveRequest struct {
	Direction string `json:"direction"`
}

// addItineraryItem handles POST /api/v1/trips/{tripID}/itinerary.
// Responds with the full updated trip.
func (s *Server) addItineraryItem(w http.ResponseWriter, r *http.Request) {
	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.itinerary.Add(r.Context(), chi.URLParam(r, "tripID"), domain.ItineraryItem{
		DayNumber: req.DayNumber,
		Title:     req.Title,
		Details:   req.Details,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTripResponse(trip))
}

// updateItineraryItem handles PUT /api/v1/trips/{tripID}/itinerary/{itemID}.
func (s *Server) updateItineraryItem(w http.ResponseWriter, r *http.Request) {
	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.itinerary.Update(r.Context(), chi.URLParam(r, "tripID"), domain.ItineraryItem{
		ID:        chi.URLParam(r, "itemID"),
		DayNumber: req.DayNumber,
		Title:     req.Title,
		Details:   req.Details,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// setItineraryComplete handles PUT /api/v1/trips/{tripID}/itinerary/{itemID}/complete.
func (s *Server) setItineraryComplete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.itinerary.SetComplete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"), req.IsComplete)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// moveItineraryItem handles POST /api/v1/trips/{tripID}/itinerary/{itemID}/move.
func (s *Server) moveItineraryItem(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "request body must be valid JSON")
		return
	}

	trip, err := s.itinerary.Move(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"), domain.MoveDirection(req.Direction))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

// deleteItineraryItem handles DELETE /api/v1/trips/{tripID}/itinerary/{itemID}.
func (s *Server) deleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	trip, err := s.itinerary.Delete(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "itemID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTripResponse(trip))
}
