package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// GameRepository defines the interface for game data access
type GameRepository interface {
	Upsert(ctx context.Context, game *models.Game) error
	UpsertBatch(ctx context.Context, games []*models.Game) error
	GetBySeason(ctx context.Context, season int) ([]*models.Game, error)
	GetByWeek(ctx context.Context, season, week int) ([]*models.Game, error)
	GetCompletedSeasons(ctx context.Context, seasons []int) ([]*models.Game, error)
	Delete(ctx context.Context, season, week int, homeTeam, awayTeam string) error
}

// RatingRepository defines the interface for team rating data access
type RatingRepository interface {
	UpsertBatch(ctx context.Context, ratings []*models.TeamRating) error
	GetBySeason(ctx context.Context, season int) ([]*models.TeamRating, error)
	GetByTeam(ctx context.Context, season int, teamCode string) (*models.TeamRating, error)
}

// StatsRepository defines the interface for per-team stat line access
type StatsRepository interface {
	UpsertBatch(ctx context.Context, stats []*models.TeamGameStats) error
	GetBySeason(ctx context.Context, season int) ([]*models.TeamGameStats, error)
	GetByTeam(ctx context.Context, season int, teamCode string) (*models.TeamGameStats, error)
}

// OddsRepository defines the interface for matchup odds data access
type OddsRepository interface {
	UpsertBatch(ctx context.Context, odds []*models.MatchupOdds) error
	GetBySeason(ctx context.Context, season int) ([]*models.MatchupOdds, error)
	GetByWeek(ctx context.Context, season, week int) ([]*models.MatchupOdds, error)
}

// BacktestRepository defines backtest run persistence. Summaries are stored
// as JSON documents keyed by run ID.
type BacktestRepository interface {
	SaveRun(ctx context.Context, runID uuid.UUID, season int, summary []byte) error
	GetRun(ctx context.Context, runID uuid.UUID) ([]byte, error)
	GetLatestForSeason(ctx context.Context, season int) ([]byte, error)
}
