package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const upsertStatsQuery = `
	INSERT INTO team_stats (season, team_code, payload, computed_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (season, team_code) DO UPDATE SET
		payload = EXCLUDED.payload,
		computed_at = EXCLUDED.computed_at
`

// PostgresStatsRepository implements StatsRepository for PostgreSQL.
// The full stat line is stored as a JSONB document; season and team code
// are lifted out as the upsert key.
type PostgresStatsRepository struct {
	db *database.DB
}

// NewPostgresStatsRepository creates a new stats repository
func NewPostgresStatsRepository(db *database.DB) StatsRepository {
	return &PostgresStatsRepository{db: db}
}

// UpsertBatch upserts a season of team stat lines within one transaction
func (r *PostgresStatsRepository) UpsertBatch(ctx context.Context, stats []*models.TeamGameStats) error {
	if len(stats) == 0 {
		return nil
	}
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, line := range stats {
			payload, err := json.Marshal(line)
			if err != nil {
				return fmt.Errorf("failed to marshal stats for %s: %w", line.TeamCode, err)
			}
			if _, err := tx.Exec(ctx, upsertStatsQuery,
				line.Season, line.TeamCode, payload, line.ComputedAt); err != nil {
				return fmt.Errorf("failed to upsert stats for %s: %w", line.TeamCode, err)
			}
		}
		return nil
	})
}

// GetBySeason retrieves all team stat lines for a season
func (r *PostgresStatsRepository) GetBySeason(ctx context.Context, season int) ([]*models.TeamGameStats, error) {
	query := `SELECT payload FROM team_stats WHERE season = $1 ORDER BY team_code ASC`

	rows, err := r.db.GetPool().Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query team stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.TeamGameStats
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan team stats: %w", err)
		}
		line := &models.TeamGameStats{}
		if err := json.Unmarshal(payload, line); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team stats: %w", err)
		}
		stats = append(stats, line)
	}
	return stats, rows.Err()
}

// GetByTeam retrieves one team's stat line for a season
func (r *PostgresStatsRepository) GetByTeam(ctx context.Context, season int, teamCode string) (*models.TeamGameStats, error) {
	query := `SELECT payload FROM team_stats WHERE season = $1 AND team_code = $2`

	var payload []byte
	err := r.db.GetPool().QueryRow(ctx, query, season, teamCode).Scan(&payload)
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team stats: %w", err)
	}

	line := &models.TeamGameStats{}
	if err := json.Unmarshal(payload, line); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team stats: %w", err)
	}
	return line, nil
}
