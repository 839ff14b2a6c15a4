// Package logger provides pipeline event logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PipelineLogger provides dedicated logging for pipeline stage events.
type PipelineLogger struct {
	*logrus.Entry
}

// NewPipelineLogger creates a new pipeline logger.
func NewPipelineLogger(baseLogger *logrus.Logger) *PipelineLogger {
	return &PipelineLogger{
		Entry: baseLogger.WithField("component", "pipeline"),
	}
}

// LogIngestion logs a completed schedule ingestion.
func (pl *PipelineLogger) LogIngestion(season, weeks, gamesFetched, gamesCompleted int, duration time.Duration) {
	pl.WithFields(logrus.Fields{
		"season":          season,
		"weeks":           weeks,
		"games_fetched":   gamesFetched,
		"games_completed": gamesCompleted,
		"duration_ms":     duration.Milliseconds(),
	}).Info("Schedule ingestion complete")
}

// LogRatingsComputed logs a completed rating computation.
func (pl *PipelineLogger) LogRatingsComputed(season, teams int, hfaFallbacks int, duration time.Duration) {
	pl.WithFields(logrus.Fields{
		"season":        season,
		"teams":         teams,
		"hfa_fallbacks": hfaFallbacks,
		"duration_ms":   duration.Milliseconds(),
	}).Info("Team ratings computed")
}

// LogOddsComputed logs a completed pricing pass.
func (pl *PipelineLogger) LogOddsComputed(season, matchups int, duration time.Duration) {
	pl.WithFields(logrus.Fields{
		"season":      season,
		"matchups":    matchups,
		"duration_ms": duration.Milliseconds(),
	}).Info("Matchup odds computed")
}

// LogBacktestComplete logs a finished backtest run.
func (pl *PipelineLogger) LogBacktestComplete(runID string, season, games, valueBets int, roiPercent float64) {
	pl.WithFields(logrus.Fields{
		"run_id":      runID,
		"season":      season,
		"games":       games,
		"value_bets":  valueBets,
		"roi_percent": roiPercent,
	}).Info("Backtest complete")
}

// LogStageFailure logs a pipeline stage failure before the error propagates.
func (pl *PipelineLogger) LogStageFailure(stage string, season int, err error) {
	pl.WithFields(logrus.Fields{
		"stage":  stage,
		"season": season,
		"error":  err.Error(),
	}).Error("Pipeline stage failed")
}
