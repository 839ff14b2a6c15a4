package datasource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completedEvent(homeAbbrev, awayAbbrev, homeScore, awayScore string, homeLines, awayLines []espnLinescore) espnEvent {
	event := espnEvent{Date: "2024-09-08T17:00Z"}
	event.Status.Type.Completed = true
	event.Competitions = []espnCompetition{{
		Competitors: []espnCompetitor{
			{HomeAway: "home", Score: homeScore, Linescores: homeLines},
			{HomeAway: "away", Score: awayScore, Linescores: awayLines},
		},
	}}
	event.Competitions[0].Competitors[0].Team.Abbreviation = homeAbbrev
	event.Competitions[0].Competitors[1].Team.Abbreviation = awayAbbrev
	return event
}

// TestNormalizeTeam tests ESPN abbreviation mapping
func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"KC", "KC"},
		{"WSH", "WAS"},
		{"OAK", "LV"},
		{"LA", "LAR"},
		{"LAR", "LAR"},
		{"WAS", "WAS"},
	}

	for _, tt := range tests {
		if got := normalizeTeam(tt.input); got != tt.expected {
			t.Errorf("normalizeTeam(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// TestParseEventCompleted tests parsing a finished game with linescores
func TestParseEventCompleted(t *testing.T) {
	homeLines := []espnLinescore{
		{Period: 1, Value: 7}, {Period: 2, Value: 10},
		{Period: 3, Value: 3}, {Period: 4, Value: 7},
		{Period: 5, Value: 6}, // overtime
	}
	awayLines := []espnLinescore{
		{Period: 1, Value: 3}, {Period: 2, Value: 14},
		{Period: 3, Value: 7}, {Period: 4, Value: 3},
		{Period: 5, Value: 0},
	}
	event := completedEvent("WSH", "OAK", "33", "27", homeLines, awayLines)

	game := parseEvent(event, 2024, 3)
	if game == nil {
		t.Fatal("expected a parsed game")
	}

	if game.HomeTeam != "WAS" || game.AwayTeam != "LV" {
		t.Errorf("expected WAS vs LV, got %s vs %s", game.HomeTeam, game.AwayTeam)
	}
	if !game.HasScores() {
		t.Fatal("expected game to carry scores")
	}
	if *game.HomeScore != 33 || *game.AwayScore != 27 {
		t.Errorf("expected 33-27, got %d-%d", *game.HomeScore, *game.AwayScore)
	}
	if *game.HomeOT != 6 {
		t.Errorf("expected 6 OT points for home, got %d", *game.HomeOT)
	}
	// OT points belong to the second half
	if *game.Home1H != 17 || *game.Home2H != 16 {
		t.Errorf("expected halves 17/16, got %d/%d", *game.Home1H, *game.Home2H)
	}
	if *game.Away2H != 10 {
		t.Errorf("expected away second half 10, got %d", *game.Away2H)
	}
	if game.GameDate.IsZero() {
		t.Error("expected parsed game date")
	}
}

// TestParseEventUpcoming tests that scheduled games carry no scores
func TestParseEventUpcoming(t *testing.T) {
	event := completedEvent("KC", "BUF", "", "", nil, nil)
	event.Status.Type.Completed = false
	event.Status.Type.State = "pre"

	game := parseEvent(event, 2024, 10)
	if game == nil {
		t.Fatal("expected a parsed game")
	}
	if game.IsCompleted {
		t.Error("expected incomplete game")
	}
	if game.HomeScore != nil || game.AwayScore != nil {
		t.Error("expected no scores on scheduled game")
	}
}

// TestParseEventMalformed tests rejection of incomplete events
func TestParseEventMalformed(t *testing.T) {
	if game := parseEvent(espnEvent{}, 2024, 1); game != nil {
		t.Error("expected nil for event without competitions")
	}

	event := completedEvent("", "BUF", "0", "0", nil, nil)
	if game := parseEvent(event, 2024, 1); game != nil {
		t.Error("expected nil for missing home abbreviation")
	}
}

// TestFetchWeek tests the full fetch path against a stub scoreboard
func TestFetchWeek(t *testing.T) {
	payload := `{
		"events": [{
			"date": "2024-09-08T17:00Z",
			"status": {"type": {"completed": true, "state": "post"}},
			"competitions": [{
				"competitors": [
					{"homeAway": "home", "score": "24", "team": {"abbreviation": "PHI"},
					 "linescores": [{"period": 1, "value": 7}, {"period": 2, "value": 10}, {"period": 3, "value": 0}, {"period": 4, "value": 7}]},
					{"homeAway": "away", "score": "20", "team": {"abbreviation": "DAL"},
					 "linescores": [{"period": 1, "value": 3}, {"period": 2, "value": 7}, {"period": 3, "value": 7}, {"period": 4, "value": 3}]}
				]
			}]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("seasontype") != "2" {
			t.Errorf("expected seasontype=2, got %q", r.URL.Query().Get("seasontype"))
		}
		if r.URL.Query().Get("week") != "5" {
			t.Errorf("expected week=5, got %q", r.URL.Query().Get("week"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.RateLimit = 100
	client := NewESPNClient(NewRateLimitedHTTPClient(cfg, nil), server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	games, err := client.FetchWeek(ctx, 2024, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].HomeTeam != "PHI" || *games[0].HomeScore != 24 {
		t.Errorf("unexpected game: %+v", games[0])
	}
	if games[0].Season != 2024 || games[0].Week != 5 {
		t.Errorf("expected season/week stamped, got %d/%d", games[0].Season, games[0].Week)
	}
}

// TestFetchWeekErrorClassification tests that upstream failures map to the
// matching sentinel, so callers can branch with errors.Is.
func TestFetchWeekErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimitExceeded},
		{"server error", http.StatusInternalServerError, ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			cfg := DefaultHTTPClientConfig()
			cfg.RateLimit = 100
			cfg.MaxRetries = 0
			client := NewESPNClient(NewRateLimitedHTTPClient(cfg, nil), server.URL, nil)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_, err := client.FetchWeek(ctx, 2024, 1)
			if err == nil {
				t.Fatalf("expected error for status %d", tt.status)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected errors.Is(%v, %v), got %v", err, tt.sentinel, err)
			}
		})
	}
}

// TestFetchWeekInvalidPayload tests the malformed-body sentinel
func TestFetchWeekInvalidPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.RateLimit = 100
	cfg.MaxRetries = 0
	client := NewESPNClient(NewRateLimitedHTTPClient(cfg, nil), server.URL, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.FetchWeek(ctx, 2024, 1)
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("expected invalid data sentinel, got %v", err)
	}
}

// TestHTTPClientRateLimit tests rate limiting pacing
func TestHTTPClientRateLimit(t *testing.T) {
	cfg := DefaultHTTPClientConfig()
	cfg.RateLimit = 10
	client := NewRateLimitedHTTPClient(cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// First wait consumes the initial token; the next five are paced
	start := time.Now()
	for i := 0; i < 6; i++ {
		if err := client.limiter.Wait(ctx); err != nil {
			t.Fatalf("wait %d failed: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	if elapsed < 400*time.Millisecond {
		t.Errorf("expected pacing of at least 400ms for 5 paced waits at 10 rps, got %v", elapsed)
	}
}
