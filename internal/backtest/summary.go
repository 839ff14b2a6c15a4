package backtest

import (
	"fmt"
	"math"
	"sort"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// CalibrationRow is one decile of the calibration table.
type CalibrationRow struct {
	Bucket           string  `json:"bucket"`
	Games            int     `json:"games"`
	ActualWinRate    float64 `json:"actual_win_rate"`
	ExpectedRate     float64 `json:"expected_rate"`
	CalibrationError float64 `json:"calibration_error"`
}

// ValueBetSummary aggregates value-bet performance.
type ValueBetSummary struct {
	Count   int     `json:"count"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
	AvgEdge float64 `json:"avg_edge"`
}

// ROISummary is the flat-stake simulation outcome.
type ROISummary struct {
	UnitsWagered    int     `json:"units_wagered"`
	MoneylineProfit float64 `json:"moneyline_profit"`
	MoneylineROI    float64 `json:"moneyline_roi"`
}

// Summary condenses a BacktestRecord for reporting and persistence.
type Summary struct {
	Season             int                             `json:"season"`
	TotalGames         int                             `json:"total_games"`
	MoneylineAccuracy  float64                         `json:"moneyline_accuracy"`
	MoneylineRecord    string                          `json:"moneyline_record"`
	SpreadAccuracy     float64                         `json:"spread_accuracy"`
	SpreadRecord       string                          `json:"spread_record"`
	OverRate           float64                         `json:"over_rate"`
	UnderRate          float64                         `json:"under_rate"`
	Calibration        []CalibrationRow                `json:"calibration"`
	ValueBets          ValueBetSummary                 `json:"value_bets"`
	ROI                ROISummary                      `json:"roi"`
	TopValueBets       []models.ValueBet               `json:"top_value_bets"`
	WeeklyBreakdown    map[int]*models.WeeklyBreakdown `json:"weekly_breakdown"`
}

// Summarize computes the reporting view of a backtest record. The top
// value-bet list is bounded by the evaluator's configured size.
func (e *Evaluator) Summarize(record *models.BacktestRecord) *Summary {
	s := &Summary{
		Season:            record.Season,
		TotalGames:        record.TotalGames,
		MoneylineAccuracy: record.MoneylineAccuracy() * 100,
		MoneylineRecord:   fmt.Sprintf("%d-%d", record.MoneylineCorrect, record.MoneylineWrong),
		SpreadAccuracy:    record.SpreadAccuracy() * 100,
		SpreadRecord:      fmt.Sprintf("%d-%d-%d", record.SpreadCovered, record.SpreadNotCovered, record.SpreadPush),
		WeeklyBreakdown:   record.ByWeek,
	}

	if decided := record.TotalsOver + record.TotalsUnder; decided > 0 {
		s.OverRate = float64(record.TotalsOver) / float64(decided) * 100
		s.UnderRate = float64(record.TotalsUnder) / float64(decided) * 100
	}

	buckets := make([]int, 0, len(record.Calibration))
	for b := range record.Calibration {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)
	for _, b := range buckets {
		bucket := record.Calibration[b]
		s.Calibration = append(s.Calibration, CalibrationRow{
			Bucket:           fmt.Sprintf("%d-%d%%", b, b+10),
			Games:            bucket.Games,
			ActualWinRate:    bucket.ActualRate() * 100,
			ExpectedRate:     bucket.ExpectedRate() * 100,
			CalibrationError: bucket.CalibrationError() * 100,
		})
	}

	s.ValueBets = summarizeValueBets(record.ValueBets)
	s.ROI = ROISummary{
		UnitsWagered:    record.UnitsWagered,
		MoneylineProfit: profitFloat(record),
		MoneylineROI:    record.ROIPercent(),
	}
	s.TopValueBets = TopValueBets(record.ValueBets, e.cfg.TopValueBets)

	return s
}

// TopValueBets returns the n highest-|edge| value bets.
func TopValueBets(bets []models.ValueBet, n int) []models.ValueBet {
	sorted := make([]models.ValueBet, len(bets))
	copy(sorted, bets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].Edge) > math.Abs(sorted[j].Edge)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func summarizeValueBets(bets []models.ValueBet) ValueBetSummary {
	s := ValueBetSummary{Count: len(bets)}
	if len(bets) == 0 {
		return s
	}
	edgeSum := 0.0
	for _, b := range bets {
		if b.Won {
			s.Wins++
		}
		edgeSum += math.Abs(b.Edge)
	}
	s.WinRate = float64(s.Wins) / float64(len(bets)) * 100
	s.AvgEdge = edgeSum / float64(len(bets)) * 100
	return s
}

func profitFloat(record *models.BacktestRecord) float64 {
	v, _ := record.MoneylineProfit.Float64()
	return v
}
