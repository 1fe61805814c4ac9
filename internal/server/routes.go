package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/johanna-sandberg/restaurant-booking/internal/models"
	"github.com/johanna-sandberg/restaurant-booking/internal/validation"
)

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(newRateLimiter(s.rate).Middleware)

	// The API contract promises a JSON body on wrong-method requests.
	r.MethodNotAllowed(s.methodNotAllowedHandler)

	r.Get("/health", s.healthHandler)

	// JSON endpoints for bookings
	r.Post("/bookings", s.CreateBookingHandler)
	r.Get("/bookings", s.GetAllBookingsHandler)

	// Server-rendered pages
	r.Get("/", s.HomePageHandler)
	r.Get("/book-table", s.BookTablePageHandler)
	r.Post("/book-table", s.BookTableSubmitHandler)
	r.Get("/admin", s.AdminPageHandler)

	return r
}

// healthHandler provides health information.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.db.Health())
}

func (s *Server) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
}

// CreateBookingHandler validates a submitted booking and persists it.
func (s *Server) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.log.Warn().Err(err).Msg("invalid booking payload")
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}

	result, errs := validation.Validate(in, s.now())
	if len(errs) > 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	booking := models.Booking{
		Name:     result.Name,
		Email:    result.Email,
		Guests:   result.Guests,
		DateTime: result.DateTime,
	}
	if err := s.db.CreateBooking(&booking); err != nil {
		// Store failures are logged here and kept opaque to the caller.
		s.log.Error().Err(err).Msg("creating booking failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	s.writeJSON(w, http.StatusCreated, booking)
}

// GetAllBookingsHandler returns every booking ordered by date/time ascending.
func (s *Server) GetAllBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.db.GetAllBookings()
	if err != nil {
		s.log.Error().Err(err).Msg("listing bookings failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	s.writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("writing response failed")
	}
}
