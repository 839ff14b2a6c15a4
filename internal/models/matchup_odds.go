package models

import "time"

// Spread and total result classifications for completed games.
const (
	SpreadResultCover = "cover"
	SpreadResultMiss  = "miss"
	SpreadResultPush  = "push"

	TotalResultOver  = "over"
	TotalResultUnder = "under"
	TotalResultPush  = "push"
)

// MatchupOdds is the full market model for one matchup: win probabilities,
// moneylines, spread, and totals. When the game has since completed the
// Actual* and *Result fields are filled in; that augmentation never alters
// the predictive fields.
type MatchupOdds struct {
	Season      int       `db:"season" json:"season"`
	Week        int       `db:"week" json:"week"`
	GameDate    time.Time `db:"game_date" json:"game_date"`
	HomeTeam    string    `db:"home_team" json:"home_team"`
	AwayTeam    string    `db:"away_team" json:"away_team"`
	IsCompleted bool      `db:"is_completed" json:"is_completed"`

	// Fair probabilities, prior to vig. They sum to 1.
	HomeWinProb float64 `db:"home_win_prob" json:"home_win_prob" validate:"gte=0,lte=1"`
	AwayWinProb float64 `db:"away_win_prob" json:"away_win_prob" validate:"gte=0,lte=1"`

	// American-format moneylines with the vig applied.
	HomeMoneyline int `db:"home_moneyline" json:"home_moneyline"`
	AwayMoneyline int `db:"away_moneyline" json:"away_moneyline"`

	// Spread is negative when the home side is favored. Half-point grid.
	Spread          float64 `db:"spread" json:"spread"`
	SpreadHomeOdds  int     `db:"spread_home_odds" json:"spread_home_odds"`
	SpreadAwayOdds  int     `db:"spread_away_odds" json:"spread_away_odds"`
	OverUnder       float64 `db:"over_under" json:"over_under"`
	OverOdds        int     `db:"over_odds" json:"over_odds"`
	UnderOdds       int     `db:"under_odds" json:"under_odds"`
	HomeTeamTotal   float64 `db:"home_team_total" json:"home_team_total"`
	AwayTeamTotal   float64 `db:"away_team_total" json:"away_team_total"`
	ExpectedDiff    float64 `db:"expected_diff" json:"expected_diff"`

	// Post-hoc augmentation, present only for completed games.
	ActualHomeScore *int    `db:"actual_home_score" json:"actual_home_score,omitempty"`
	ActualAwayScore *int    `db:"actual_away_score" json:"actual_away_score,omitempty"`
	ActualTotal     *int    `db:"actual_total" json:"actual_total,omitempty"`
	ActualDiff      *int    `db:"actual_diff" json:"actual_diff,omitempty"`
	SpreadResult    string  `db:"spread_result" json:"spread_result,omitempty"`
	TotalResult     string  `db:"total_result" json:"total_result,omitempty"`

	ComputedAt time.Time `db:"computed_at" json:"computed_at"`
}

// PredictedHomeWin reports whether the model favors the home side.
func (m *MatchupOdds) PredictedHomeWin() bool {
	return m.HomeWinProb > 0.5
}

// HomeMarginVsSpread returns the signed margin against the posted spread;
// positive means the home side covered. Valid only for completed games.
func (m *MatchupOdds) HomeMarginVsSpread() float64 {
	if m.ActualDiff == nil {
		return 0
	}
	return float64(*m.ActualDiff) + m.Spread
}
