package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/johanna-sandberg/restaurant-booking/internal/config"
	"github.com/johanna-sandberg/restaurant-booking/internal/database"
)

// Server holds the request handlers' shared dependencies: the store client,
// the logger, and the clock the validation schema reads.
type Server struct {
	port int
	db   database.Service
	log  zerolog.Logger
	rate config.RateConfig
	now  func() time.Time
}

// NewServer wires a Server into an http.Server ready to Serve.
func NewServer(cfg *config.Config, db database.Service, log zerolog.Logger) *http.Server {
	s := &Server{
		port: cfg.Port,
		db:   db,
		log:  log,
		rate: cfg.Rate,
		now:  time.Now,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
