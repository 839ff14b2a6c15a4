package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bet sides for value bets and ROI simulation.
const (
	BetSideHome = "home"
	BetSideAway = "away"
)

// ValueBet is one flagged discrepancy between the model probability and the
// market-implied probability, recorded with its eventual outcome.
type ValueBet struct {
	Season        int     `json:"season"`
	Week          int     `json:"week"`
	HomeTeam      string  `json:"home_team"`
	AwayTeam      string  `json:"away_team"`
	Edge          float64 `json:"edge"`
	Side          string  `json:"side"`
	Won           bool    `json:"won"`
	PredictedProb float64 `json:"predicted_prob"`
	ActualMargin  int     `json:"actual_margin"`
}

// CalibrationBucket aggregates outcomes for one predicted-probability decile.
// Bucket is the decile lower bound (0, 10, ..., 90).
type CalibrationBucket struct {
	Bucket     int `json:"bucket"`
	Games      int `json:"games"`
	ActualWins int `json:"actual_wins"`
}

// ActualRate returns the realized home-win rate for the bucket.
func (b CalibrationBucket) ActualRate() float64 {
	if b.Games == 0 {
		return 0
	}
	return float64(b.ActualWins) / float64(b.Games)
}

// ExpectedRate returns the bucket midpoint, e.g. 0.65 for the 60-70 bucket.
func (b CalibrationBucket) ExpectedRate() float64 {
	return float64(b.Bucket+5) / 100
}

// CalibrationError returns actual rate minus expected rate.
func (b CalibrationBucket) CalibrationError() float64 {
	return b.ActualRate() - b.ExpectedRate()
}

// WeeklyBreakdown aggregates per-week prediction results.
type WeeklyBreakdown struct {
	Games         int `json:"games"`
	MLCorrect     int `json:"ml_correct"`
	SpreadCovered int `json:"spread_covered"`
}

// BacktestRecord is the aggregate of one season's prediction evaluation.
type BacktestRecord struct {
	RunID      uuid.UUID `json:"run_id"`
	Season     int       `json:"season"`
	TotalGames int       `json:"total_games"`

	MoneylineCorrect int `json:"moneyline_correct"`
	MoneylineWrong   int `json:"moneyline_wrong"`
	MoneylinePush    int `json:"moneyline_push"`

	SpreadCovered   int `json:"spread_covered"`
	SpreadNotCovered int `json:"spread_not_covered"`
	SpreadPush      int `json:"spread_push"`

	TotalsOver  int `json:"totals_over"`
	TotalsUnder int `json:"totals_under"`
	TotalsPush  int `json:"totals_push"`

	// Calibration buckets keyed by decile lower bound.
	Calibration map[int]*CalibrationBucket `json:"calibration"`

	ValueBets []ValueBet `json:"value_bets"`

	// Flat-stake ledger: one fixed wager per decided game on the model's
	// favored side, settled at the posted price. UnitsWagered is the total
	// units staked across all wagers.
	UnitsWagered    int             `json:"units_wagered"`
	MoneylineProfit decimal.Decimal `json:"moneyline_profit"`

	ByWeek map[int]*WeeklyBreakdown `json:"by_week"`

	EvaluatedAt time.Time `json:"evaluated_at"`
}

// NewBacktestRecord initializes an empty record for a season.
func NewBacktestRecord(season int) *BacktestRecord {
	return &BacktestRecord{
		RunID:           uuid.New(),
		Season:          season,
		Calibration:     make(map[int]*CalibrationBucket),
		ByWeek:          make(map[int]*WeeklyBreakdown),
		MoneylineProfit: decimal.Zero,
		EvaluatedAt:     time.Now().UTC(),
	}
}

// MoneylineAccuracy returns the share of decided games picked correctly.
func (r *BacktestRecord) MoneylineAccuracy() float64 {
	decided := r.MoneylineCorrect + r.MoneylineWrong
	if decided == 0 {
		return 0
	}
	return float64(r.MoneylineCorrect) / float64(decided)
}

// SpreadAccuracy returns the home-cover rate over non-push spread results.
func (r *BacktestRecord) SpreadAccuracy() float64 {
	decided := r.SpreadCovered + r.SpreadNotCovered
	if decided == 0 {
		return 0
	}
	return float64(r.SpreadCovered) / float64(decided)
}

// ROIPercent returns cumulative profit over total units wagered, as a
// percentage. Zero when nothing was wagered.
func (r *BacktestRecord) ROIPercent() float64 {
	if r.UnitsWagered == 0 {
		return 0
	}
	wagered := decimal.NewFromInt(int64(r.UnitsWagered))
	pct, _ := r.MoneylineProfit.Div(wagered).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
