package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// PostgresBacktestRepository implements BacktestRepository for PostgreSQL
type PostgresBacktestRepository struct {
	db *database.DB
}

// NewPostgresBacktestRepository creates a new backtest repository
func NewPostgresBacktestRepository(db *database.DB) BacktestRepository {
	return &PostgresBacktestRepository{db: db}
}

// SaveRun persists a backtest run summary keyed by run ID
func (r *PostgresBacktestRepository) SaveRun(ctx context.Context, runID uuid.UUID, season int, summary []byte) error {
	query := `INSERT INTO backtest_runs (run_id, season, summary) VALUES ($1, $2, $3)`

	if _, err := r.db.GetPool().Exec(ctx, query, runID, season, summary); err != nil {
		return fmt.Errorf("failed to save backtest run: %w", err)
	}
	return nil
}

// GetRun retrieves a run summary by run ID
func (r *PostgresBacktestRepository) GetRun(ctx context.Context, runID uuid.UUID) ([]byte, error) {
	query := `SELECT summary FROM backtest_runs WHERE run_id = $1`

	var summary []byte
	err := r.db.GetPool().QueryRow(ctx, query, runID).Scan(&summary)
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get backtest run: %w", err)
	}
	return summary, nil
}

// GetLatestForSeason retrieves the most recent run summary for a season
func (r *PostgresBacktestRepository) GetLatestForSeason(ctx context.Context, season int) ([]byte, error) {
	query := `SELECT summary FROM backtest_runs WHERE season = $1 ORDER BY created_at DESC LIMIT 1`

	var summary []byte
	err := r.db.GetPool().QueryRow(ctx, query, season).Scan(&summary)
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest backtest run: %w", err)
	}
	return summary, nil
}
