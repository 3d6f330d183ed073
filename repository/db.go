// repository/db.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fadhlanhapp/trekshare-backend/config"
	"github.com/fadhlanhapp/trekshare-backend/logger"
	_ "github.com/lib/pq"
)

var db *sql.DB

// InitDB initializes the database connection and makes sure the schema exists
func InitDB(ctx context.Context, cfg config.DatabaseConfig) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err = Migrate(ctx, db); err != nil {
		return err
	}

	logger.WithFields(logger.Fields{"host": cfg.Host, "db": cfg.Name}).Info("Successfully connected to the database")
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	if db != nil {
		db.Close()
	}
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}

// Migrate creates the tables the API needs if they are missing
func Migrate(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		country       TEXT NOT NULL DEFAULT '',
		image_url     TEXT NOT NULL DEFAULT '',
		highest_point INTEGER NOT NULL DEFAULT 0,
		best_season   TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trek_templates (
		id              TEXT PRIMARY KEY,
		region_id       TEXT NOT NULL REFERENCES regions(id),
		name            TEXT NOT NULL,
		summary         TEXT NOT NULL DEFAULT '',
		difficulty      TEXT NOT NULL DEFAULT '',
		duration_days   INTEGER NOT NULL,
		max_altitude    INTEGER NOT NULL DEFAULT 0,
		min_group_size  INTEGER NOT NULL DEFAULT 1,
		max_group_size  INTEGER NOT NULL DEFAULT 1,
		reference_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		currency        TEXT NOT NULL DEFAULT 'USD',
		cost_components JSONB NOT NULL DEFAULT '[]',
		itinerary       JSONB NOT NULL DEFAULT '[]',
		cover_image     TEXT NOT NULL DEFAULT '',
		cover_thumbnail TEXT NOT NULL DEFAULT '',
		gallery         TEXT[] NOT NULL DEFAULT '{}',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS trek_templates_region_idx ON trek_templates(region_id)`,
	`CREATE TABLE IF NOT EXISTS guides (
		id               TEXT PRIMARY KEY,
		region_id        TEXT NOT NULL REFERENCES regions(id),
		name             TEXT NOT NULL,
		languages        TEXT[] NOT NULL DEFAULT '{}',
		years_experience INTEGER NOT NULL DEFAULT 0,
		rating           DOUBLE PRECISION NOT NULL DEFAULT 0,
		verified         BOOLEAN NOT NULL DEFAULT FALSE,
		daily_rate       NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id               TEXT PRIMARY KEY,
		trek_id          TEXT NOT NULL REFERENCES trek_templates(id),
		full_name        TEXT NOT NULL,
		email            TEXT NOT NULL,
		phone            TEXT NOT NULL DEFAULT '',
		nationality      TEXT NOT NULL DEFAULT '',
		group_preference TEXT NOT NULL DEFAULT '',
		group_size       INTEGER NOT NULL,
		payment_option   TEXT NOT NULL DEFAULT '',
		special_requests TEXT NOT NULL DEFAULT '',
		per_person_total NUMERIC(12,2) NOT NULL,
		status           TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
