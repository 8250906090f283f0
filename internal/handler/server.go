// Package handler implements the HTTP handlers for the guestbook API.
// All handlers are methods on Server. Methods are split into topic files
// (health.go, booking.go, export.go, watch.go) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/pkordes/guestbook/backend/internal/domain"
	"github.com/pkordes/guestbook/backend/internal/store"
	"github.com/pkordes/guestbook/backend/spec"
)

// BookingServicer defines the business operations the booking handlers
// depend on. Defining the interface here (in the consumer package) lets
// handler tests inject a mock without touching the store.
type BookingServicer interface {
	List(ctx context.Context) ([]domain.BookingEntry, error)
	Add(ctx context.Context, entry domain.BookingEntry) (domain.BookingEntry, error)
	Delete(ctx context.Context, entry domain.BookingEntry) error
	Watch(ctx context.Context) *store.Watcher
}

// Server holds the dependencies shared by every handler.
type Server struct {
	bookings BookingServicer
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer constructs the Server. watchOrigins lists the cross-origin
// Origin values allowed to open a /bookings/watch websocket, normally the
// same list the CORS middleware allows. Same-origin requests are always
// accepted.
func NewServer(bookings BookingServicer, log *slog.Logger, watchOrigins []string) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{bookings: bookings, log: log}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
				return true
			}
			return slices.Contains(watchOrigins, origin)
		},
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns the chi router with every API endpoint registered.
// Cross-cutting middleware (logging, CORS, body limits) is applied by the
// caller in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", s.ListBookings)
		r.Post("/", s.CreateBooking)
		r.Delete("/", s.DeleteBooking)
		r.Get("/export", s.GetExport)
		r.Get("/watch", s.WatchBookings)
	})
	return r
}

// serveOpenAPI handles GET /openapi.yaml.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
