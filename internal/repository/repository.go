package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
)

// isNoRows unwraps scan errors down to pgx.ErrNoRows
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Repositories holds all repository implementations
type Repositories struct {
	Game     GameRepository
	Rating   RatingRepository
	Stats    StatsRepository
	Odds     OddsRepository
	Backtest BacktestRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Game:     NewPostgresGameRepository(db),
		Rating:   NewPostgresRatingRepository(db),
		Stats:    NewPostgresStatsRepository(db),
		Odds:     NewPostgresOddsRepository(db),
		Backtest: NewPostgresBacktestRepository(db),
	}, nil
}
