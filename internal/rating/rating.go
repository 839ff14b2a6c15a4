package rating

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Config carries the tunables for a rating run.
type Config struct {
	SRSRounds   int
	HFAMinGames int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		SRSRounds:   DefaultSRSRounds,
		HFAMinGames: DefaultHFAMinGames,
	}
}

// Calculator combines records, schedule strength, SRS, and home field
// advantage into TeamRating rows.
type Calculator struct {
	cfg    Config
	logger *logrus.Logger
}

// NewCalculator creates a rating calculator.
func NewCalculator(cfg Config, logger *logrus.Logger) *Calculator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Calculator{cfg: cfg, logger: logger}
}

// Compute produces one TeamRating per team that completed at least one game
// in the season. seasonGames feeds the record/SOS/SRS chain; historyGames
// (all available seasons) feeds the home field advantage estimate. The
// result is sorted by SRS descending.
func (c *Calculator) Compute(season int, seasonGames, historyGames []*models.Game) ([]*models.TeamRating, error) {
	records := AggregateRecords(season, seasonGames)
	if len(records) == 0 {
		return nil, fmt.Errorf("season %d: %w", season, models.ErrInsufficientData)
	}

	sos := ScheduleStrength(records)
	srs := SimpleRatingSystem(records, c.cfg.SRSRounds)
	hfa := HomeFieldAdvantage(historyGames, c.cfg.HFAMinGames)

	now := time.Now().UTC()
	ratings := make([]*models.TeamRating, 0, len(records))
	for _, team := range TeamCodes(records) {
		rec := records[team]
		r := &models.TeamRating{
			TeamCode:      team,
			Season:        season,
			Wins:          rec.Wins,
			Losses:        rec.Losses,
			Ties:          rec.Ties,
			WinPct:        rec.WinPct(),
			PointsFor:     rec.PointsFor,
			PointsAgainst: rec.PointsAgainst,
			PPD:           rec.PointDiffPerGame(),
			SOS:           sos[team],
			SRS:           srs[team],
			ComputedAt:    now,
		}
		if v, ok := hfa[team]; ok {
			r.HFA = v
			r.HFAKnown = true
		}
		ratings = append(ratings, r)
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].SRS > ratings[j].SRS
	})

	c.logger.WithFields(logrus.Fields{
		"season": season,
		"teams":  len(ratings),
	}).Info("Computed team ratings")

	return ratings, nil
}
