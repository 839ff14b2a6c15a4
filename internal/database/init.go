package database

import (
	"context"
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/config"
)

// schema holds the table definitions applied on startup. Upsert keys match
// the repositories' ON CONFLICT targets.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS games (
		id BIGSERIAL PRIMARY KEY,
		season INT NOT NULL,
		week INT NOT NULL,
		game_date TIMESTAMPTZ,
		home_team TEXT NOT NULL,
		away_team TEXT NOT NULL,
		home_score INT,
		away_score INT,
		home_q1 INT, home_q2 INT, home_q3 INT, home_q4 INT, home_ot INT,
		away_q1 INT, away_q2 INT, away_q3 INT, away_q4 INT, away_ot INT,
		home_1h INT, home_2h INT, away_1h INT, away_2h INT,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE (season, week, home_team, away_team)
	)`,
	`CREATE TABLE IF NOT EXISTS team_ratings (
		id BIGSERIAL PRIMARY KEY,
		season INT NOT NULL,
		team_code TEXT NOT NULL,
		wins INT NOT NULL,
		losses INT NOT NULL,
		ties INT NOT NULL,
		win_pct DOUBLE PRECISION NOT NULL,
		points_for INT NOT NULL,
		points_against INT NOT NULL,
		ppd DOUBLE PRECISION NOT NULL,
		sos DOUBLE PRECISION NOT NULL,
		srs DOUBLE PRECISION NOT NULL,
		hfa DOUBLE PRECISION NOT NULL,
		hfa_known BOOLEAN NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL,
		UNIQUE (season, team_code)
	)`,
	`CREATE TABLE IF NOT EXISTS team_stats (
		id BIGSERIAL PRIMARY KEY,
		season INT NOT NULL,
		team_code TEXT NOT NULL,
		payload JSONB NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL,
		UNIQUE (season, team_code)
	)`,
	`CREATE TABLE IF NOT EXISTS matchup_odds (
		id BIGSERIAL PRIMARY KEY,
		season INT NOT NULL,
		week INT NOT NULL,
		home_team TEXT NOT NULL,
		away_team TEXT NOT NULL,
		payload JSONB NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL,
		UNIQUE (season, week, home_team, away_team)
	)`,
	`CREATE TABLE IF NOT EXISTS backtest_runs (
		id BIGSERIAL PRIMARY KEY,
		run_id UUID NOT NULL UNIQUE,
		season INT NOT NULL,
		summary JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Initialize creates a database connection pool and applies the schema
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema applies the table definitions, creating anything missing
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
