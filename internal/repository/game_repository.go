package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const errScanGame = "failed to scan game: %w"

const gameColumns = `season, week, game_date, home_team, away_team, is_completed,
	home_score, away_score,
	home_q1, home_q2, home_q3, home_q4, home_ot,
	away_q1, away_q2, away_q3, away_q4, away_ot,
	home_1h, home_2h, away_1h, away_2h`

const upsertGameQuery = `
	INSERT INTO games (` + gameColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	ON CONFLICT (season, week, home_team, away_team) DO UPDATE SET
		game_date = EXCLUDED.game_date,
		is_completed = EXCLUDED.is_completed,
		home_score = EXCLUDED.home_score,
		away_score = EXCLUDED.away_score,
		home_q1 = EXCLUDED.home_q1, home_q2 = EXCLUDED.home_q2,
		home_q3 = EXCLUDED.home_q3, home_q4 = EXCLUDED.home_q4,
		home_ot = EXCLUDED.home_ot,
		away_q1 = EXCLUDED.away_q1, away_q2 = EXCLUDED.away_q2,
		away_q3 = EXCLUDED.away_q3, away_q4 = EXCLUDED.away_q4,
		away_ot = EXCLUDED.away_ot,
		home_1h = EXCLUDED.home_1h, home_2h = EXCLUDED.home_2h,
		away_1h = EXCLUDED.away_1h, away_2h = EXCLUDED.away_2h
`

// PostgresGameRepository implements GameRepository for PostgreSQL
type PostgresGameRepository struct {
	db *database.DB
}

// NewPostgresGameRepository creates a new game repository
func NewPostgresGameRepository(db *database.DB) GameRepository {
	return &PostgresGameRepository{db: db}
}

func gameArgs(g *models.Game) []interface{} {
	return []interface{}{
		g.Season, g.Week, g.GameDate, g.HomeTeam, g.AwayTeam, g.IsCompleted,
		g.HomeScore, g.AwayScore,
		g.HomeQ1, g.HomeQ2, g.HomeQ3, g.HomeQ4, g.HomeOT,
		g.AwayQ1, g.AwayQ2, g.AwayQ3, g.AwayQ4, g.AwayOT,
		g.Home1H, g.Home2H, g.Away1H, g.Away2H,
	}
}

func scanGame(row interface{ Scan(...any) error }) (*models.Game, error) {
	g := &models.Game{}
	err := row.Scan(
		&g.Season, &g.Week, &g.GameDate, &g.HomeTeam, &g.AwayTeam, &g.IsCompleted,
		&g.HomeScore, &g.AwayScore,
		&g.HomeQ1, &g.HomeQ2, &g.HomeQ3, &g.HomeQ4, &g.HomeOT,
		&g.AwayQ1, &g.AwayQ2, &g.AwayQ3, &g.AwayQ4, &g.AwayOT,
		&g.Home1H, &g.Home2H, &g.Away1H, &g.Away2H,
	)
	if err != nil {
		return nil, fmt.Errorf(errScanGame, err)
	}
	return g, nil
}

// Upsert inserts a game or refreshes an existing one on its schedule key
func (r *PostgresGameRepository) Upsert(ctx context.Context, game *models.Game) error {
	if _, err := r.db.GetPool().Exec(ctx, upsertGameQuery, gameArgs(game)...); err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}
	return nil
}

// UpsertBatch upserts a slice of games within one transaction
func (r *PostgresGameRepository) UpsertBatch(ctx context.Context, games []*models.Game) error {
	if len(games) == 0 {
		return nil
	}
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, game := range games {
			if _, err := tx.Exec(ctx, upsertGameQuery, gameArgs(game)...); err != nil {
				return fmt.Errorf("failed to upsert game %s@%s week %d: %w",
					game.AwayTeam, game.HomeTeam, game.Week, err)
			}
		}
		return nil
	})
}

// GetBySeason retrieves all games for a season ordered by week
func (r *PostgresGameRepository) GetBySeason(ctx context.Context, season int) ([]*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE season = $1 ORDER BY week ASC, home_team ASC`

	rows, err := r.db.GetPool().Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query games by season: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetByWeek retrieves all games for one week of a season
func (r *PostgresGameRepository) GetByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE season = $1 AND week = $2 ORDER BY home_team ASC`

	rows, err := r.db.GetPool().Query(ctx, query, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query games by week: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetCompletedSeasons retrieves completed games across a set of seasons,
// used for historical home field advantage estimation
func (r *PostgresGameRepository) GetCompletedSeasons(ctx context.Context, seasons []int) ([]*models.Game, error) {
	if len(seasons) == 0 {
		return nil, nil
	}
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE season = ANY($1) AND is_completed ORDER BY season ASC, week ASC, home_team ASC`

	rows, err := r.db.GetPool().Query(ctx, query, seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed seasons: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// Delete removes a game by its schedule key
func (r *PostgresGameRepository) Delete(ctx context.Context, season, week int, homeTeam, awayTeam string) error {
	query := `DELETE FROM games WHERE season = $1 AND week = $2 AND home_team = $3 AND away_team = $4`

	commandTag, err := r.db.GetPool().Exec(ctx, query, season, week, homeTeam, awayTeam)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
