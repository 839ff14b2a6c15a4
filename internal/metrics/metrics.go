// Package metrics provides the centralized Prometheus metrics registry.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	GamesIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "games_ingested_total",
		Help:      "Total number of games ingested from the schedule source",
	})
	RatingsComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "ratings_computed_total",
		Help:      "Total number of team ratings computed",
	})
	OddsComputedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "odds_computed_total",
		Help:      "Total number of matchups priced",
	})
	ValueBetsFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "value_bets_found_total",
		Help:      "Total number of value bets flagged during backtests",
	})
	IngestionErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "ingestion_errors_total",
		Help:      "Total number of schedule ingestion failures",
	})
)

// Gauge metrics
var (
	LastBacktestROI = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_backtest_roi_percent",
		Help:      "Flat-stake moneyline ROI of the most recent backtest",
	})
	LastBacktestAccuracy = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_backtest_moneyline_accuracy",
		Help:      "Moneyline accuracy of the most recent backtest",
	})
	TeamSRS = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "team_srs",
		Help:      "Current simple rating system value per team",
	}, []string{"season", "team"})
)

// Histogram metrics
var (
	PipelineStageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "pipeline_stage_duration_seconds",
		Help:      "Duration of each pipeline stage in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of backtest runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(GamesIngestedTotal)
		registry.MustRegister(RatingsComputedTotal)
		registry.MustRegister(OddsComputedTotal)
		registry.MustRegister(ValueBetsFoundTotal)
		registry.MustRegister(IngestionErrorsTotal)

		registry.MustRegister(LastBacktestROI)
		registry.MustRegister(LastBacktestAccuracy)
		registry.MustRegister(TeamSRS)

		registry.MustRegister(PipelineStageDuration)
		registry.MustRegister(BacktestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordGamesIngested adds to the ingestion counter.
func RecordGamesIngested(count int) {
	GamesIngestedTotal.Add(float64(count))
}

// RecordIngestionError records a schedule ingestion failure.
func RecordIngestionError() {
	IngestionErrorsTotal.Inc()
}

// RecordRatingsComputed adds to the ratings counter.
func RecordRatingsComputed(count int) {
	RatingsComputedTotal.Add(float64(count))
}

// RecordOddsComputed adds to the pricing counter.
func RecordOddsComputed(count int) {
	OddsComputedTotal.Add(float64(count))
}

// RecordValueBetsFound adds to the value bet counter.
func RecordValueBetsFound(count int) {
	ValueBetsFoundTotal.Add(float64(count))
}

// RecordStageDuration records one pipeline stage's duration.
func RecordStageDuration(stage string, durationSeconds float64) {
	PipelineStageDuration.WithLabelValues(stage).Observe(durationSeconds)
}

// RecordBacktestDuration records backtest duration.
func RecordBacktestDuration(durationSeconds float64) {
	BacktestDuration.Observe(durationSeconds)
}

// RecordBacktestOutcome updates the last-run gauges.
func RecordBacktestOutcome(roiPercent, moneylineAccuracy float64) {
	LastBacktestROI.Set(roiPercent)
	LastBacktestAccuracy.Set(moneylineAccuracy)
}
