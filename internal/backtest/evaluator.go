// Package backtest scores stored matchup predictions against realized game
// results: pick accuracy, spread and totals records, probability calibration,
// value-bet performance, and a flat-stake ROI simulation.
package backtest

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/odds"
)

// Evaluation defaults.
const (
	// DefaultEdgeThreshold is the minimum model-vs-market probability gap for
	// a value bet. The boundary is exclusive: an edge of exactly 0.05 is not
	// flagged.
	DefaultEdgeThreshold = 0.05
	// DefaultFlatStake is the units wagered per decided game in the ROI
	// simulation.
	DefaultFlatStake = 100
	// DefaultTopValueBets bounds the highest-|edge| list kept for inspection.
	DefaultTopValueBets = 10

	pushBand = 0.5

	// edgeEpsilon absorbs float64 representation error at the exclusive edge
	// boundary, so a model-vs-market gap that is analytically exactly equal
	// to the threshold is never flagged.
	edgeEpsilon = 1e-9
)

// Config carries the evaluator tunables.
type Config struct {
	EdgeThreshold float64
	FlatStake     int
	TopValueBets  int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		EdgeThreshold: DefaultEdgeThreshold,
		FlatStake:     DefaultFlatStake,
		TopValueBets:  DefaultTopValueBets,
	}
}

// Evaluator compares predictions against results for one season at a time.
type Evaluator struct {
	cfg    Config
	logger *logrus.Logger
}

// NewEvaluator creates an evaluator.
func NewEvaluator(cfg Config, logger *logrus.Logger) *Evaluator {
	if cfg.EdgeThreshold <= 0 {
		cfg.EdgeThreshold = DefaultEdgeThreshold
	}
	if cfg.FlatStake <= 0 {
		cfg.FlatStake = DefaultFlatStake
	}
	if cfg.TopValueBets <= 0 {
		cfg.TopValueBets = DefaultTopValueBets
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Evaluator{cfg: cfg, logger: logger}
}

// Evaluate scores every completed matchup that carries a prediction and an
// actual result. Predictions for games that never completed are skipped.
func (e *Evaluator) Evaluate(season int, predictions []*models.MatchupOdds) *models.BacktestRecord {
	record := models.NewBacktestRecord(season)

	for _, pred := range predictions {
		if pred.Season != season || !pred.IsCompleted || pred.ActualDiff == nil || pred.ActualTotal == nil {
			continue
		}
		e.scoreMatchup(record, pred)
	}

	e.logger.WithFields(logrus.Fields{
		"season":      season,
		"games":       record.TotalGames,
		"value_bets":  len(record.ValueBets),
		"ml_accuracy": record.MoneylineAccuracy(),
	}).Info("Backtest evaluation complete")

	return record
}

func (e *Evaluator) scoreMatchup(record *models.BacktestRecord, pred *models.MatchupOdds) {
	record.TotalGames++

	actualDiff := *pred.ActualDiff
	actualTotal := *pred.ActualTotal
	homeWon := actualDiff > 0
	tie := actualDiff == 0
	predictedHomeWin := pred.PredictedHomeWin()

	// Moneyline: ties are pushes, the pick is otherwise right or wrong.
	switch {
	case tie:
		record.MoneylinePush++
	case predictedHomeWin == homeWon:
		record.MoneylineCorrect++
	default:
		record.MoneylineWrong++
	}

	// Spread, from the home perspective.
	margin := float64(actualDiff) + pred.Spread
	switch {
	case math.Abs(margin) < pushBand:
		record.SpreadPush++
	case margin > 0:
		record.SpreadCovered++
	default:
		record.SpreadNotCovered++
	}

	// Totals.
	switch {
	case math.Abs(float64(actualTotal)-pred.OverUnder) < pushBand:
		record.TotalsPush++
	case float64(actualTotal) > pred.OverUnder:
		record.TotalsOver++
	default:
		record.TotalsUnder++
	}

	e.recordCalibration(record, pred.HomeWinProb, homeWon)
	e.recordValueBet(record, pred, homeWon, tie, actualDiff)
	e.recordROI(record, pred, homeWon, tie)

	week, ok := record.ByWeek[pred.Week]
	if !ok {
		week = &models.WeeklyBreakdown{}
		record.ByWeek[pred.Week] = week
	}
	week.Games++
	if !tie && predictedHomeWin == homeWon {
		week.MLCorrect++
	}
	if margin > 0 {
		week.SpreadCovered++
	}
}

// recordCalibration files the game into its predicted-probability decile.
func (e *Evaluator) recordCalibration(record *models.BacktestRecord, homeWinProb float64, homeWon bool) {
	bucket := int(math.Floor(homeWinProb*10)) * 10
	if bucket > 90 {
		bucket = 90
	}
	if bucket < 0 {
		bucket = 0
	}

	b, ok := record.Calibration[bucket]
	if !ok {
		b = &models.CalibrationBucket{Bucket: bucket}
		record.Calibration[bucket] = b
	}
	b.Games++
	if homeWon {
		b.ActualWins++
	}
}

// recordValueBet flags the game when the model's probability diverges from
// the market-implied probability by strictly more than the edge threshold.
// A tie never wins: it counts as a loss for an away bet and a non-win for a
// home bet.
func (e *Evaluator) recordValueBet(record *models.BacktestRecord, pred *models.MatchupOdds, homeWon, tie bool, actualDiff int) {
	implied := odds.ImpliedProbability(pred.HomeMoneyline)
	edge := pred.HomeWinProb - implied
	if math.Abs(edge) <= e.cfg.EdgeThreshold+edgeEpsilon {
		return
	}

	side := models.BetSideAway
	won := !homeWon && !tie
	if edge > 0 {
		side = models.BetSideHome
		won = homeWon
	}

	record.ValueBets = append(record.ValueBets, models.ValueBet{
		Season:        pred.Season,
		Week:          pred.Week,
		HomeTeam:      pred.HomeTeam,
		AwayTeam:      pred.AwayTeam,
		Edge:          edge,
		Side:          side,
		Won:           won,
		PredictedProb: pred.HomeWinProb,
		ActualMargin:  actualDiff,
	})
}
