package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const ratingColumns = `season, team_code, wins, losses, ties, win_pct,
	points_for, points_against, ppd, sos, srs, hfa, hfa_known, computed_at`

const upsertRatingQuery = `
	INSERT INTO team_ratings (` + ratingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (season, team_code) DO UPDATE SET
		wins = EXCLUDED.wins,
		losses = EXCLUDED.losses,
		ties = EXCLUDED.ties,
		win_pct = EXCLUDED.win_pct,
		points_for = EXCLUDED.points_for,
		points_against = EXCLUDED.points_against,
		ppd = EXCLUDED.ppd,
		sos = EXCLUDED.sos,
		srs = EXCLUDED.srs,
		hfa = EXCLUDED.hfa,
		hfa_known = EXCLUDED.hfa_known,
		computed_at = EXCLUDED.computed_at
`

// PostgresRatingRepository implements RatingRepository for PostgreSQL
type PostgresRatingRepository struct {
	db *database.DB
}

// NewPostgresRatingRepository creates a new rating repository
func NewPostgresRatingRepository(db *database.DB) RatingRepository {
	return &PostgresRatingRepository{db: db}
}

func ratingArgs(t *models.TeamRating) []interface{} {
	return []interface{}{
		t.Season, t.TeamCode, t.Wins, t.Losses, t.Ties, t.WinPct,
		t.PointsFor, t.PointsAgainst, t.PPD, t.SOS, t.SRS, t.HFA, t.HFAKnown, t.ComputedAt,
	}
}

func scanRating(row interface{ Scan(...any) error }) (*models.TeamRating, error) {
	t := &models.TeamRating{}
	err := row.Scan(
		&t.Season, &t.TeamCode, &t.Wins, &t.Losses, &t.Ties, &t.WinPct,
		&t.PointsFor, &t.PointsAgainst, &t.PPD, &t.SOS, &t.SRS, &t.HFA, &t.HFAKnown, &t.ComputedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan team rating: %w", err)
	}
	return t, nil
}

// UpsertBatch upserts a full season of team ratings within one transaction
func (r *PostgresRatingRepository) UpsertBatch(ctx context.Context, ratings []*models.TeamRating) error {
	if len(ratings) == 0 {
		return nil
	}
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, rating := range ratings {
			if _, err := tx.Exec(ctx, upsertRatingQuery, ratingArgs(rating)...); err != nil {
				return fmt.Errorf("failed to upsert rating for %s: %w", rating.TeamCode, err)
			}
		}
		return nil
	})
}

// GetBySeason retrieves all team ratings for a season ordered by SRS
func (r *PostgresRatingRepository) GetBySeason(ctx context.Context, season int) ([]*models.TeamRating, error) {
	query := `SELECT ` + ratingColumns + ` FROM team_ratings
		WHERE season = $1 ORDER BY srs DESC`

	rows, err := r.db.GetPool().Query(ctx, query, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query team ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*models.TeamRating
	for rows.Next() {
		t, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, t)
	}
	return ratings, rows.Err()
}

// GetByTeam retrieves one team's rating for a season
func (r *PostgresRatingRepository) GetByTeam(ctx context.Context, season int, teamCode string) (*models.TeamRating, error) {
	query := `SELECT ` + ratingColumns + ` FROM team_ratings
		WHERE season = $1 AND team_code = $2`

	t, err := scanRating(r.db.GetPool().QueryRow(ctx, query, season, teamCode))
	if err != nil {
		if isNoRows(err) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
