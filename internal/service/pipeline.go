package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/backtest"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/odds"
	"github.com/yourusername/gridiron-edge/internal/rating"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/stats"
)

// Pipeline orchestrates the full modeling run: load games, compute ratings
// and stats, price matchups, and evaluate predictions against results.
type Pipeline struct {
	cfg      *config.Config
	repos    *repository.Repositories
	rater    *rating.Calculator
	analyzer *stats.Analyzer
	pricer   *odds.Model
	backtest *backtest.Evaluator
	log      *logrus.Logger
	events   *logger.PipelineLogger
	cache    *gocache.Cache
}

// NewPipeline wires the pipeline from configuration
func NewPipeline(cfg *config.Config, repos *repository.Repositories, log *logrus.Logger) *Pipeline {
	ratingCfg := rating.Config{
		SRSRounds:   cfg.Rating.SRSRounds,
		HFAMinGames: cfg.Rating.HFAMinGames,
	}
	statsCfg := stats.Config{
		EMAAlpha:             cfg.Stats.EMAAlpha,
		ChangepointWindow:    cfg.Stats.ChangepointWindow,
		ChangepointThreshold: cfg.Stats.ChangepointThreshold,
		RecentFormGames:      cfg.Stats.RecentFormGames,
	}
	oddsCfg := odds.Config{
		LeagueHFA:  cfg.Odds.LeagueHFA,
		LogisticK:  cfg.Odds.LogisticK,
		Vig:        cfg.Odds.Vig,
		UseTeamHFA: cfg.Odds.UseTeamHFA,
	}
	backtestCfg := backtest.Config{
		EdgeThreshold: cfg.Backtest.EdgeThreshold,
		FlatStake:     cfg.Backtest.FlatStake,
		TopValueBets:  cfg.Backtest.TopValueBets,
	}

	ttl := time.Duration(cfg.Ingestion.CacheTTLSeconds) * time.Second
	sweep := time.Duration(cfg.Ingestion.CacheSweepSeconds) * time.Second

	return &Pipeline{
		cfg:      cfg,
		repos:    repos,
		rater:    rating.NewCalculator(ratingCfg, log),
		analyzer: stats.NewAnalyzer(statsCfg, log),
		pricer:   odds.NewModel(oddsCfg, log),
		backtest: backtest.NewEvaluator(backtestCfg, log),
		log:      log,
		events:   logger.NewPipelineLogger(log),
		cache:    gocache.New(ttl, sweep),
	}
}

// seasonGames loads a season's games, memoizing per season so the rating,
// stats, and pricing stages share one read.
func (p *Pipeline) seasonGames(ctx context.Context, season int) ([]*models.Game, error) {
	key := "games:" + strconv.Itoa(season)
	if cached, found := p.cache.Get(key); found {
		return cached.([]*models.Game), nil
	}

	games, err := p.repos.Game.GetBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("failed to load season %d games: %w", season, err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("season %d: %w", season, models.ErrMissingInput)
	}

	p.cache.Set(key, games, gocache.DefaultExpiration)
	return games, nil
}

// InvalidateSeason drops the cached game list after an ingestion run
func (p *Pipeline) InvalidateSeason(season int) {
	p.cache.Delete("games:" + strconv.Itoa(season))
}

// historyGames loads completed games from the configured historical seasons.
// Missing history is not an error: the pricing model falls back to the league
// home edge.
func (p *Pipeline) historyGames(ctx context.Context) []*models.Game {
	seasons := p.cfg.Ingestion.HistoricalSeasons
	if len(seasons) == 0 {
		return nil
	}
	games, err := p.repos.Game.GetCompletedSeasons(ctx, seasons)
	if err != nil {
		p.log.WithError(err).Warn("Failed to load historical seasons, falling back to league home edge")
		return nil
	}
	return games
}

// ComputeRatings runs the rating stage and persists the result
func (p *Pipeline) ComputeRatings(ctx context.Context, season int) ([]*models.TeamRating, error) {
	start := time.Now()

	games, err := p.seasonGames(ctx, season)
	if err != nil {
		return nil, err
	}

	ratings, err := p.rater.Compute(season, games, p.historyGames(ctx))
	if err != nil {
		p.events.LogStageFailure("ratings", season, err)
		return nil, err
	}

	if err := p.repos.Rating.UpsertBatch(ctx, ratings); err != nil {
		return nil, err
	}

	fallbacks := 0
	seasonLabel := strconv.Itoa(season)
	for _, r := range ratings {
		if !r.HFAKnown {
			fallbacks++
		}
		metrics.TeamSRS.WithLabelValues(seasonLabel, r.TeamCode).Set(r.SRS)
	}
	metrics.RecordRatingsComputed(len(ratings))
	metrics.RecordStageDuration("ratings", time.Since(start).Seconds())
	p.events.LogRatingsComputed(season, len(ratings), fallbacks, time.Since(start))

	return ratings, nil
}

// HeadToHead folds the season's completed games together with the configured
// historical seasons into per-pair rivalry records.
func (p *Pipeline) HeadToHead(ctx context.Context, season int) ([]*models.HeadToHead, error) {
	games, err := p.seasonGames(ctx, season)
	if err != nil {
		return nil, err
	}
	combined := append(p.historyGames(ctx), games...)
	return rating.HeadToHeadRecords(combined), nil
}

// ComputeStats runs the stats stage and persists the result
func (p *Pipeline) ComputeStats(ctx context.Context, season int) ([]*models.TeamGameStats, error) {
	start := time.Now()

	games, err := p.seasonGames(ctx, season)
	if err != nil {
		return nil, err
	}

	teamStats := p.analyzer.AnalyzeSeason(season, games)
	if err := p.repos.Stats.UpsertBatch(ctx, teamStats); err != nil {
		return nil, err
	}

	metrics.RecordStageDuration("stats", time.Since(start).Seconds())
	return teamStats, nil
}

// PriceSeason prices every matchup of the season using the current ratings
// and stats, persisting the odds
func (p *Pipeline) PriceSeason(ctx context.Context, season int) ([]*models.MatchupOdds, error) {
	start := time.Now()

	games, err := p.seasonGames(ctx, season)
	if err != nil {
		return nil, err
	}

	ratings, err := p.ComputeRatings(ctx, season)
	if err != nil {
		return nil, err
	}
	teamStats, err := p.ComputeStats(ctx, season)
	if err != nil {
		return nil, err
	}

	ratingByTeam := make(map[string]*models.TeamRating, len(ratings))
	for _, r := range ratings {
		ratingByTeam[r.TeamCode] = r
	}
	statsByTeam := make(map[string]*models.TeamGameStats, len(teamStats))
	for _, s := range teamStats {
		statsByTeam[s.TeamCode] = s
	}

	priced := make([]*models.MatchupOdds, 0, len(games))
	for _, game := range games {
		matchup := p.pricer.PriceMatchup(game,
			statsByTeam[game.HomeTeam], statsByTeam[game.AwayTeam], ratingByTeam[game.HomeTeam])
		priced = append(priced, matchup)
	}

	if err := p.repos.Odds.UpsertBatch(ctx, priced); err != nil {
		return nil, err
	}

	metrics.RecordOddsComputed(len(priced))
	metrics.RecordStageDuration("odds", time.Since(start).Seconds())
	p.events.LogOddsComputed(season, len(priced), time.Since(start))

	return priced, nil
}

// RunBacktest prices the season and scores predictions against completed
// games, persisting the run summary
func (p *Pipeline) RunBacktest(ctx context.Context, season int) (*backtest.Summary, error) {
	start := time.Now()

	priced, err := p.PriceSeason(ctx, season)
	if err != nil {
		return nil, err
	}

	record := p.backtest.Evaluate(season, priced)
	summary := p.backtest.Summarize(record)

	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backtest summary: %w", err)
	}
	if err := p.repos.Backtest.SaveRun(ctx, record.RunID, season, payload); err != nil {
		return nil, err
	}

	metrics.RecordValueBetsFound(summary.ValueBets.Count)
	metrics.RecordBacktestDuration(time.Since(start).Seconds())
	metrics.RecordBacktestOutcome(summary.ROI.MoneylineROI, record.MoneylineAccuracy())
	p.events.LogBacktestComplete(record.RunID.String(), season, record.TotalGames,
		summary.ValueBets.Count, summary.ROI.MoneylineROI)

	return summary, nil
}
