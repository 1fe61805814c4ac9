package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog"

	"github.com/johanna-sandberg/restaurant-booking/internal/config"
	"github.com/johanna-sandberg/restaurant-booking/internal/models"

	// PostgreSQL driver
	_ "github.com/jackc/pgx/v5/stdlib"

	// Migration libraries
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Service is the store client injected into the HTTP layer.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	// CreateBooking persists a booking and fills in its generated id.
	CreateBooking(booking *models.Booking) error

	// GetAllBookings returns every booking ordered by date/time ascending.
	GetAllBookings() ([]models.Booking, error)
}

type service struct {
	db  *sql.DB
	cfg config.DBConfig
	log zerolog.Logger
}

// New opens the single long-lived connection pool. The pool is lazy; a bad
// address surfaces on first use, not here.
func New(cfg config.DBConfig, log zerolog.Logger) (Service, error) {
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &service{db: db, cfg: cfg, log: log}, nil
}

// RunMigrations applies pending migrations from the configured directory.
// It uses its own short-lived connection.
func RunMigrations(cfg config.DBConfig, log zerolog.Logger) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.ConnString())
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Info().Msg("database migrations up to date")
	return nil
}

// Health pings the database and reports connection pool statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		s.log.Error().Err(err).Msg("database ping failed")
		stats["status"] = "down"
		stats["error"] = "database unreachable"
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection pool.
func (s *service) Close() error {
	s.log.Info().Str("database", s.cfg.Database).Msg("disconnecting from database")
	return s.db.Close()
}

func (s *service) CreateBooking(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (name, email, guests, date_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int
	err := s.db.QueryRow(
		query,
		booking.Name,
		booking.Email,
		booking.Guests,
		booking.DateTime,
	).Scan(&id)
	if err != nil {
		return err
	}
	booking.ID = id
	return nil
}

func (s *service) GetAllBookings() ([]models.Booking, error) {
	// Ordering is part of the listing contract, so it is requested from the
	// store rather than sorted after the fact.
	query := `
		SELECT id, name, email, guests, date_time
		FROM bookings
		ORDER BY date_time ASC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Guests,
			&booking.DateTime,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
