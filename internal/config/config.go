package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. A .env
// file is honored when present but never required.
type Config struct {
	Port     int
	LogLevel string
	DB       DBConfig
	Rate     RateConfig
}

type DBConfig struct {
	Host           string
	Port           string
	Username       string
	Password       string
	Database       string
	Schema         string
	MigrationsPath string
}

// RateConfig tunes the per-client request limiter.
type RateConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads the environment into a Config, applying defaults for anything
// unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	rps, err := strconv.ParseFloat(getenv("RATE_LIMIT_RPS", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getenv("RATE_LIMIT_BURST", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return &Config{
		Port:     port,
		LogLevel: getenv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Host:           getenv("DB_HOST", "localhost"),
			Port:           getenv("DB_PORT", "5432"),
			Username:       os.Getenv("DB_USERNAME"),
			Password:       os.Getenv("DB_PASSWORD"),
			Database:       getenv("DB_DATABASE", "restaurant"),
			Schema:         getenv("DB_SCHEMA", "public"),
			MigrationsPath: getenv("MIGRATIONS_PATH", "migrations"),
		},
		Rate: RateConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
	}, nil
}

// ConnString renders the pgx connection string.
func (c DBConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Schema,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
