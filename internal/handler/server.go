// Package handler implements the HTTP surface of the Trail Planner API.
// Handlers decode plain JSON, call into the services, and shape responses
// (including the derived progress block on every trip); no planning rules
// live here. Methods are split into resource-specific files but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trailhead-app/trail-planner/internal/domain"
	"github.com/trailhead-app/trail-planner/internal/service"
	"github.com/trailhead-app/trail-planner/spec"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the service layer.
type TripServicer interface {
	List(ctx context.Context, filter service.TripFilter) ([]domain.Trip, string, error)
	Get(ctx context.Context, id string) (domain.Trip, error)
	Create(ctx context.Context, in domain.Trip) (domain.Trip, error)
	Update(ctx context.Context, in domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (domain.Stats, error)
}

// InviteeServicer defines the invitee operations the handlers depend on.
type InviteeServicer interface {
	Add(ctx context.Context, tripID string, in domain.Invitee) (domain.Trip, error)
	Update(ctx context.Context, tripID string, in domain.Invitee) (domain.Trip, error)
	SetStatus(ctx context.Context, tripID, inviteeID, status string) (domain.Trip, error)
	Delete(ctx context.Context, tripID, inviteeID string) (domain.Trip, error)
}

// CampsiteServicer defines the campsite operations the handlers depend on.
type CampsiteServicer interface {
	Add(ctx context.Context, tripID string, in domain.Campsite) (domain.Trip, error)
	Update(ctx context.Context, tripID string, in domain.Campsite) (domain.Trip, error)
	SetStatus(ctx context.Context, tripID, campsiteID, status string) (domain.Trip, error)
	Vote(ctx context.Context, tripID, campsiteID string, direction service.VoteDirection) (domain.Trip, error)
	Delete(ctx context.Context, tripID, campsiteID string) (domain.Trip, error)
}

// ItineraryServicer defines the itinerary operations the handlers depend on.
type ItineraryServicer interface {
	Add(ctx context.Context, tripID string, in domain.ItineraryItem) (domain.Trip, error)
	Update(ctx context.Context, tripID string, in domain.ItineraryItem) (domain.Trip, error)
	SetComplete(ctx context.Context, tripID, itemID string, complete bool) (domain.Trip, error)
	Move(ctx context.Context, tripID, itemID string, direction domain.MoveDirection) (domain.Trip, error)
	Delete(ctx context.Context, tripID, itemID string) (domain.Trip, error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	trips     TripServicer
	invitees  InviteeServicer
	campsites CampsiteServicer
	itinerary ItineraryServicer
	export    ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, invitees InviteeServicer, campsites CampsiteServicer, itinerary ItineraryServicer, export ExportServicer) *Server {
	return &Server{
		trips:     trips,
		invitees:  invitees,
		campsites: campsites,
		itinerary: itinerary,
		export:    export,
	}
}

// Routes returns the full route tree for the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.health)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec.OpenAPI)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats", s.stats)
		r.Get("/export", s.exportCSV)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.listTrips)
			r.Post("/", s.createTrip)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.getTrip)
				r.Put("/", s.updateTrip)
				r.Delete("/", s.deleteTrip)

				r.Route("/invitees", func(r chi.Router) {
					r.Post("/", s.addInvitee)
					r.Put("/{inviteeID}", s.updateInvitee)
					r.Put("/{inviteeID}/status", s.setInviteeStatus)
					r.Delete("/{inviteeID}", s.deleteInvitee)
				})

				r.Route("/campsites", func(r chi.Router) {
					r.Post("/", s.addCampsite)
					r.Put("/{campsiteID}", s.updateCampsite)
					r.Put("/{campsiteID}/status", s.setCampsiteStatus)
					r.Post("/{campsiteID}/vote", s.voteCampsite)
					r.Delete("/{campsiteID}", s.deleteCampsite)
				})

				r.Route("/itinerary", func(r chi.Router) {
					r.Post("/", s.addItineraryItem)
					r.Put("/{itemID}", s.updateItineraryItem)
					r.Put("/{itemID}/complete", s.setItineraryComplete)
					r.Post("/{itemID}/move", s.moveItineraryItem)
					r.Delete("/{itemID}", s.deleteItineraryItem)
				})
			})
		})
	})

	return r
}
