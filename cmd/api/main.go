package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/johanna-sandberg/restaurant-booking/internal/config"
	"github.com/johanna-sandberg/restaurant-booking/internal/database"
	"github.com/johanna-sandberg/restaurant-booking/internal/logger"
	"github.com/johanna-sandberg/restaurant-booking/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("loading configuration failed")
	}
	log := logger.New(cfg.LogLevel)

	if err := database.RunMigrations(cfg.DB, log); err != nil {
		log.Fatal().Err(err).Msg("running migrations failed")
	}

	db, err := database.New(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database failed")
	}
	defer db.Close()

	srv := server.NewServer(cfg, db, log)

	// Create a listener on the desired address
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg("creating listener failed")
	}

	// Channel to receive errors from the server
	errChan := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server started")
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Set up channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for an interrupt or server error
	select {
	case err := <-errChan:
		log.Fatal().Err(err).Msg("server error")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("initiating graceful shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not gracefully shut down the server")
		}

		log.Info().Msg("server gracefully stopped")
	}
}
