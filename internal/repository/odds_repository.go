package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const upsertOddsQuery = `
	INSERT INTO matchup_odds (season, week, home_team, away_team, payload, computed_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (season, week, home_team, away_team) DO UPDATE SET
		payload = EXCLUDED.payload,
		computed_at = EXCLUDED.computed_at
`

// PostgresOddsRepository implements OddsRepository for PostgreSQL.
// The priced matchup is stored as a JSONB document keyed by the schedule key.
type PostgresOddsRepository struct {
	db *database.DB
}

// NewPostgresOddsRepository creates a new odds repository
func NewPostgresOddsRepository(db *database.DB) OddsRepository {
	return &PostgresOddsRepository{db: db}
}

// UpsertBatch upserts priced matchups within one transaction
func (r *PostgresOddsRepository) UpsertBatch(ctx context.Context, odds []*models.MatchupOdds) error {
	if len(odds) == 0 {
		return nil
	}
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, o := range odds {
			payload, err := json.Marshal(o)
			if err != nil {
				return fmt.Errorf("failed to marshal odds for %s@%s: %w", o.AwayTeam, o.HomeTeam, err)
			}
			if _, err := tx.Exec(ctx, upsertOddsQuery,
				o.Season, o.Week, o.HomeTeam, o.AwayTeam, payload, o.ComputedAt); err != nil {
				return fmt.Errorf("failed to upsert odds for %s@%s: %w", o.AwayTeam, o.HomeTeam, err)
			}
		}
		return nil
	})
}

// GetBySeason retrieves all priced matchups for a season ordered by week
func (r *PostgresOddsRepository) GetBySeason(ctx context.Context, season int) ([]*models.MatchupOdds, error) {
	query := `SELECT payload FROM matchup_odds WHERE season = $1 ORDER BY week ASC, home_team ASC`
	return r.queryOdds(ctx, query, season)
}

// GetByWeek retrieves priced matchups for one week of a season
func (r *PostgresOddsRepository) GetByWeek(ctx context.Context, season, week int) ([]*models.MatchupOdds, error) {
	query := `SELECT payload FROM matchup_odds WHERE season = $1 AND week = $2 ORDER BY home_team ASC`
	return r.queryOdds(ctx, query, season, week)
}

func (r *PostgresOddsRepository) queryOdds(ctx context.Context, query string, args ...interface{}) ([]*models.MatchupOdds, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchup odds: %w", err)
	}
	defer rows.Close()

	var odds []*models.MatchupOdds
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan matchup odds: %w", err)
		}
		o := &models.MatchupOdds{}
		if err := json.Unmarshal(payload, o); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matchup odds: %w", err)
		}
		odds = append(odds, o)
	}
	return odds, rows.Err()
}
