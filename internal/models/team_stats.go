package models

import "time"

// Trend direction labels.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Game profile labels.
const (
	ProfileFastStarter = "fast_starter"
	ProfileCloser      = "closer"
	ProfileBalanced    = "balanced"
)

// TeamGameStats carries the per-team time-series statistics for one season.
// One instance per (team, season).
type TeamGameStats struct {
	TeamCode    string `db:"team_code" json:"team_code"`
	Season      int    `db:"season" json:"season"`
	GamesPlayed int    `db:"games_played" json:"games_played"`
	Wins        int    `db:"wins" json:"wins"`
	Losses      int    `db:"losses" json:"losses"`
	Ties        int    `db:"ties" json:"ties"`

	TotalPointsScored  int     `db:"total_points_scored" json:"total_points_scored"`
	TotalPointsAllowed int     `db:"total_points_allowed" json:"total_points_allowed"`
	PPGScored          float64 `db:"ppg_scored" json:"ppg_scored"`
	PPGAllowed         float64 `db:"ppg_allowed" json:"ppg_allowed"`
	PointDifferential  float64 `db:"point_differential" json:"point_differential"`

	// Home/away splits.
	HomeGames      int     `db:"home_games" json:"home_games"`
	AwayGames      int     `db:"away_games" json:"away_games"`
	HomePPG        float64 `db:"home_ppg" json:"home_ppg"`
	AwayPPG        float64 `db:"away_ppg" json:"away_ppg"`
	HomePPGAllowed float64 `db:"home_ppg_allowed" json:"home_ppg_allowed"`
	AwayPPGAllowed float64 `db:"away_ppg_allowed" json:"away_ppg_allowed"`

	// Quarter and half scoring averages.
	Q1PPG             float64 `db:"q1_ppg" json:"q1_ppg"`
	Q2PPG             float64 `db:"q2_ppg" json:"q2_ppg"`
	Q3PPG             float64 `db:"q3_ppg" json:"q3_ppg"`
	Q4PPG             float64 `db:"q4_ppg" json:"q4_ppg"`
	FirstHalfPPG      float64 `db:"first_half_ppg" json:"first_half_ppg"`
	SecondHalfPPG     float64 `db:"second_half_ppg" json:"second_half_ppg"`
	Q1PPGAllowed      float64 `db:"q1_ppg_allowed" json:"q1_ppg_allowed"`
	Q2PPGAllowed      float64 `db:"q2_ppg_allowed" json:"q2_ppg_allowed"`
	Q3PPGAllowed      float64 `db:"q3_ppg_allowed" json:"q3_ppg_allowed"`
	Q4PPGAllowed      float64 `db:"q4_ppg_allowed" json:"q4_ppg_allowed"`
	FirstHalfAllowed  float64 `db:"first_half_ppg_allowed" json:"first_half_ppg_allowed"`
	SecondHalfAllowed float64 `db:"second_half_ppg_allowed" json:"second_half_ppg_allowed"`

	// Quarter/half differentials (scored minus allowed).
	Q1Differential         float64 `db:"q1_differential" json:"q1_differential"`
	Q4Differential         float64 `db:"q4_differential" json:"q4_differential"`
	FirstHalfDifferential  float64 `db:"first_half_differential" json:"first_half_differential"`
	SecondHalfDifferential float64 `db:"second_half_differential" json:"second_half_differential"`
	GameProfile            string  `db:"game_profile" json:"game_profile"`

	// Recent form (last 5 games, chronological).
	Last5PPG        float64 `db:"last_5_ppg" json:"last_5_ppg"`
	Last5PPGAllowed float64 `db:"last_5_ppg_allowed" json:"last_5_ppg_allowed"`
	Last5Wins       int     `db:"last_5_wins" json:"last_5_wins"`
	Last5Games      int     `db:"last_5_games" json:"last_5_games"`

	// Variance and consistency.
	ScoringStdDev      float64 `db:"scoring_std_dev" json:"scoring_std_dev"`
	AllowedStdDev      float64 `db:"allowed_std_dev" json:"allowed_std_dev"`
	ScoringConsistency float64 `db:"scoring_consistency" json:"scoring_consistency" validate:"gte=0,lte=100"`

	// Margin analysis.
	AvgMargin      float64 `db:"avg_margin" json:"avg_margin"`
	MarginStdDev   float64 `db:"margin_std_dev" json:"margin_std_dev"`
	CloseGamePct   float64 `db:"close_game_pct" json:"close_game_pct"`
	CloseGameWins  int     `db:"close_game_wins" json:"close_game_wins"`
	CloseGames     int     `db:"close_games" json:"close_games"`
	BlowoutWinPct  float64 `db:"blowout_win_pct" json:"blowout_win_pct"`
	BlowoutLossPct float64 `db:"blowout_loss_pct" json:"blowout_loss_pct"`

	// Total points (over/under view).
	AvgTotalPoints    float64 `db:"avg_total_points" json:"avg_total_points"`
	TotalPointsStdDev float64 `db:"total_points_std_dev" json:"total_points_std_dev"`

	// Recency-weighted form.
	EMAPPG          float64 `db:"ema_ppg" json:"ema_ppg"`
	EMAPPGAllowed   float64 `db:"ema_ppg_allowed" json:"ema_ppg_allowed"`
	EMADifferential float64 `db:"ema_differential" json:"ema_differential"`

	// Changepoint detection over the scored series.
	ScoringChangepoint          bool    `db:"scoring_changepoint" json:"scoring_changepoint"`
	ScoringChangepointDirection string  `db:"scoring_changepoint_direction" json:"scoring_changepoint_direction,omitempty"`
	ScoringChangepointMagnitude float64 `db:"scoring_changepoint_magnitude" json:"scoring_changepoint_magnitude"`

	// Season trend: second-half mean minus first-half mean of the scored series.
	SeasonTrend          float64 `db:"season_trend" json:"season_trend"`
	SeasonTrendDirection string  `db:"season_trend_direction" json:"season_trend_direction"`

	ComputedAt time.Time `db:"computed_at" json:"computed_at"`
}

// Last5PPD returns the last-5-games point differential per game.
func (s *TeamGameStats) Last5PPD() float64 {
	return s.Last5PPG - s.Last5PPGAllowed
}
