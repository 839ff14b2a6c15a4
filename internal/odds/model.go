package odds

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Model defaults. The vig, logistic steepness, and league home field
// advantage are hand-tuned calibration constants, not fit from data.
const (
	DefaultLeagueHFA     = 2.5
	DefaultLogisticK     = 0.145
	DefaultVig           = 0.0476
	DefaultNeutralPPG    = 21.0
	teamTotalHomeBoost   = 1.25
	standardJuice        = -110

	seasonFormWeight = 0.7
	recentFormWeight = 0.3
)

// Config carries the model tunables. A zero LeagueHFA prices a neutral
// field and a zero Vig prices a fair market; negative values fall back to
// the defaults.
type Config struct {
	LeagueHFA float64
	LogisticK float64
	Vig       float64
	// UseTeamHFA substitutes a team-specific home field advantage for the
	// league constant when the home team has one. Off by default.
	UseTeamHFA bool
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		LeagueHFA: DefaultLeagueHFA,
		LogisticK: DefaultLogisticK,
		Vig:       DefaultVig,
	}
}

// Model prices matchups from team stats and ratings.
type Model struct {
	cfg    Config
	logger *logrus.Logger
}

// NewModel creates an odds model.
func NewModel(cfg Config, logger *logrus.Logger) *Model {
	if cfg.LogisticK <= 0 {
		// k=0 collapses every matchup to a coin flip.
		cfg.LogisticK = DefaultLogisticK
	}
	if cfg.LeagueHFA < 0 {
		cfg.LeagueHFA = DefaultLeagueHFA
	}
	if cfg.Vig < 0 {
		cfg.Vig = DefaultVig
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Model{cfg: cfg, logger: logger}
}

// PowerRating blends season point differential with last-5 form, 70/30.
// A nil stats row rates neutral (0).
func PowerRating(s *models.TeamGameStats) float64 {
	if s == nil {
		return 0
	}
	seasonDiff := s.PPGScored - s.PPGAllowed
	return seasonFormWeight*seasonDiff + recentFormWeight*s.Last5PPD()
}

// PriceMatchup computes the full market model for one game. homeRating may
// be nil; it only supplies the optional team-specific home field advantage.
// If the game has completed, the prediction is augmented with the actual
// result (see Settle); the predictive fields are computed identically either
// way.
func (m *Model) PriceMatchup(game *models.Game, homeStats, awayStats *models.TeamGameStats, homeRating *models.TeamRating) *models.MatchupOdds {
	homePower := PowerRating(homeStats)
	awayPower := PowerRating(awayStats)

	hfa := m.cfg.LeagueHFA
	if m.cfg.UseTeamHFA && homeRating != nil && homeRating.HFAKnown {
		hfa = homeRating.HFA
	}

	expectedDiff := (homePower - awayPower) + hfa
	homeWinProb := Logistic(m.cfg.LogisticK, expectedDiff)

	o := &models.MatchupOdds{
		Season:      game.Season,
		Week:        game.Week,
		GameDate:    game.GameDate,
		HomeTeam:    game.HomeTeam,
		AwayTeam:    game.AwayTeam,
		IsCompleted: game.IsCompleted,

		HomeWinProb: homeWinProb,
		AwayWinProb: 1 - homeWinProb,

		HomeMoneyline: ApplyVig(homeWinProb, m.cfg.Vig),
		AwayMoneyline: ApplyVig(1-homeWinProb, m.cfg.Vig),

		// Market convention: negative spread means home favored.
		Spread:         -QuantizeHalf(expectedDiff),
		SpreadHomeOdds: standardJuice,
		SpreadAwayOdds: standardJuice,
		OverOdds:       standardJuice,
		UnderOdds:      standardJuice,
		ExpectedDiff:   expectedDiff,

		ComputedAt: time.Now().UTC(),
	}

	homePPG, homeAllowed := offenseDefense(homeStats)
	awayPPG, awayAllowed := offenseDefense(awayStats)

	// Total: average of the two offense-vs-defense estimates.
	o.OverUnder = QuantizeHalf(((homePPG + awayAllowed) + (awayPPG + homeAllowed)) / 2)
	o.HomeTeamTotal = QuantizeHalf((homePPG+awayAllowed)/2 + teamTotalHomeBoost)
	o.AwayTeamTotal = QuantizeHalf((awayPPG+homeAllowed)/2 - teamTotalHomeBoost)

	if game.HasScores() {
		Settle(o, game)
	}

	return o
}

// offenseDefense returns a team's scoring and allowed averages, falling back
// to the league-neutral 21 points when no stats exist for the team.
func offenseDefense(s *models.TeamGameStats) (float64, float64) {
	if s == nil {
		return DefaultNeutralPPG, DefaultNeutralPPG
	}
	return s.PPGScored, s.PPGAllowed
}
