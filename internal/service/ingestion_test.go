package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// fakeScheduleSource returns canned games or a canned error.
type fakeScheduleSource struct {
	games []*models.Game
	err   error
}

func (f *fakeScheduleSource) FetchWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	return f.games, f.err
}

func (f *fakeScheduleSource) FetchSeason(ctx context.Context, season, weeks int) ([]*models.Game, error) {
	return f.games, f.err
}

func (f *fakeScheduleSource) Name() string { return "fake" }

// fakeGameRepo records what gets upserted.
type fakeGameRepo struct {
	upserted []*models.Game
	err      error
}

func (f *fakeGameRepo) Upsert(ctx context.Context, game *models.Game) error { return f.err }

func (f *fakeGameRepo) UpsertBatch(ctx context.Context, games []*models.Game) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, games...)
	return nil
}

func (f *fakeGameRepo) GetBySeason(ctx context.Context, season int) ([]*models.Game, error) {
	return f.upserted, nil
}

func (f *fakeGameRepo) GetByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	return f.upserted, nil
}

func (f *fakeGameRepo) GetCompletedSeasons(ctx context.Context, seasons []int) ([]*models.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) Delete(ctx context.Context, season, week int, homeTeam, awayTeam string) error {
	return nil
}

func newTestIngestionService(source *fakeScheduleSource, repo *fakeGameRepo) *IngestionService {
	return NewIngestionService(source, repo, NewDataValidator(testLogger()), testLogger())
}

func TestIngestWeekSuccess(t *testing.T) {
	upcoming := completedGame()
	upcoming.IsCompleted = false
	upcoming.HomeScore = nil
	upcoming.AwayScore = nil
	upcoming.HomeTeam = "BUF"

	source := &fakeScheduleSource{games: []*models.Game{completedGame(), upcoming}}
	repo := &fakeGameRepo{}
	svc := newTestIngestionService(source, repo)

	m, err := svc.IngestWeek(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(repo.upserted) != 2 {
		t.Errorf("Expected 2 games upserted, got %d", len(repo.upserted))
	}
	if m.TotalGames != 2 {
		t.Errorf("Expected 2 total games in metrics, got %d", m.TotalGames)
	}
	if m.CompletedGames != 1 || m.UpcomingGames != 1 {
		t.Errorf("Expected 1 completed and 1 upcoming, got %d/%d", m.CompletedGames, m.UpcomingGames)
	}
}

func TestIngestWeekFiltersInvalidGames(t *testing.T) {
	bad := completedGame()
	bad.AwayScore = nil // completed game missing final score

	source := &fakeScheduleSource{games: []*models.Game{completedGame(), bad}}
	repo := &fakeGameRepo{}
	svc := newTestIngestionService(source, repo)

	m, err := svc.IngestWeek(context.Background(), 2024, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(repo.upserted) != 1 {
		t.Errorf("Expected invalid game filtered out, got %d upserted", len(repo.upserted))
	}
	if m.ValidationErrors != 1 {
		t.Errorf("Expected 1 validation error recorded, got %d", m.ValidationErrors)
	}
}

func TestIngestWeekFetchError(t *testing.T) {
	source := &fakeScheduleSource{err: errors.New("connection refused")}
	repo := &fakeGameRepo{}
	svc := newTestIngestionService(source, repo)

	if _, err := svc.IngestWeek(context.Background(), 2024, 5); err == nil {
		t.Error("Expected fetch error to propagate")
	}
	if len(repo.upserted) != 0 {
		t.Error("Nothing should be upserted when the fetch fails")
	}
}

func TestIngestSeasonPersistError(t *testing.T) {
	source := &fakeScheduleSource{games: []*models.Game{completedGame()}}
	repo := &fakeGameRepo{err: errors.New("database gone")}
	svc := newTestIngestionService(source, repo)

	m, err := svc.IngestSeason(context.Background(), 2024, 18)
	if err == nil {
		t.Error("Expected persistence error to propagate")
	}
	if m.Errors != 1 {
		t.Errorf("Expected 1 error recorded in metrics, got %d", m.Errors)
	}
}

func TestIngestionMetricsReset(t *testing.T) {
	source := &fakeScheduleSource{games: []*models.Game{completedGame()}}
	repo := &fakeGameRepo{}
	svc := newTestIngestionService(source, repo)

	if _, err := svc.IngestWeek(context.Background(), 2024, 5); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.IngestWeek(context.Background(), 2024, 6); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Metrics reset per run rather than accumulating across weeks.
	if got := svc.GetMetrics().TotalGames; got != 1 {
		t.Errorf("Expected metrics reset between runs, got %d total games", got)
	}
}
