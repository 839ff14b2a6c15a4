package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/gridiron-edge/internal/datasource"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// IngestionService handles the schedule ingestion workflow: fetch from a
// source, validate, upsert
type IngestionService struct {
	source    datasource.ScheduleSource
	gameRepo  repository.GameRepository
	validator *DataValidator
	metrics   *IngestionMetrics
	logger    *log.Logger
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	source datasource.ScheduleSource,
	gameRepo repository.GameRepository,
	validator *DataValidator,
	logger *log.Logger,
) *IngestionService {
	return &IngestionService{
		source:    source,
		gameRepo:  gameRepo,
		validator: validator,
		metrics:   NewIngestionMetrics(),
		logger:    logger,
	}
}

// IngestSeason fetches a full season from the source and upserts every game.
// Re-running is safe: games upsert on their schedule key, so finished games
// pick up final scores.
func (s *IngestionService) IngestSeason(ctx context.Context, season, weeks int) (*IngestionMetrics, error) {
	s.metrics.Reset()
	startTime := time.Now()

	s.logger.Printf("Starting season ingestion from %s (season %d, %d weeks)", s.source.Name(), season, weeks)

	games, err := s.source.FetchSeason(ctx, season, weeks)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordIngestionError()
		return s.metrics, fmt.Errorf("failed to fetch season %d: %w", season, err)
	}

	valid := s.filterValid(games)
	if err := s.gameRepo.UpsertBatch(ctx, valid); err != nil {
		s.metrics.RecordError()
		metrics.RecordIngestionError()
		return s.metrics, fmt.Errorf("failed to persist season %d: %w", season, err)
	}

	s.metrics.Duration = time.Since(startTime)
	metrics.RecordGamesIngested(len(valid))
	s.logger.Printf("Season ingestion complete: %s", s.metrics.String())

	return s.metrics, nil
}

// IngestWeek fetches and upserts a single week, used by the weekly refresh
func (s *IngestionService) IngestWeek(ctx context.Context, season, week int) (*IngestionMetrics, error) {
	s.metrics.Reset()
	startTime := time.Now()

	games, err := s.source.FetchWeek(ctx, season, week)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordIngestionError()
		return s.metrics, fmt.Errorf("failed to fetch week %d: %w", week, err)
	}

	valid := s.filterValid(games)
	if err := s.gameRepo.UpsertBatch(ctx, valid); err != nil {
		s.metrics.RecordError()
		metrics.RecordIngestionError()
		return s.metrics, fmt.Errorf("failed to persist week %d: %w", week, err)
	}

	s.metrics.Duration = time.Since(startTime)
	metrics.RecordGamesIngested(len(valid))
	s.logger.Printf("Week %d ingestion complete: %s", week, s.metrics.String())

	return s.metrics, nil
}

func (s *IngestionService) filterValid(games []*models.Game) []*models.Game {
	valid := make([]*models.Game, 0, len(games))
	for _, game := range games {
		if validationErrors := s.validator.ValidateGame(game); len(validationErrors) > 0 {
			s.metrics.RecordValidationError()
			s.logger.Printf("Game %s@%s week %d failed validation: %v",
				game.AwayTeam, game.HomeTeam, game.Week, validationErrors)
			continue
		}
		s.metrics.RecordGame(game.IsCompleted)
		valid = append(valid, game)
	}
	return valid
}

// GetMetrics returns current ingestion metrics
func (s *IngestionService) GetMetrics() *IngestionMetrics {
	return s.metrics
}
