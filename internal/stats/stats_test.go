package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 3.0, Mean([]float64{1, 3, 5}), 1e-9)
	assert.InDelta(t, 0.0, Mean(nil), 1e-9)
}

func TestStdDevPopulation(t *testing.T) {
	// Classic population example: mean 5, variance 4.
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, StdDev(values), 1e-9)

	assert.InDelta(t, 0.0, StdDev([]float64{42}), 1e-9)
	assert.InDelta(t, 0.0, StdDev(nil), 1e-9)
}

func TestEMA(t *testing.T) {
	// Seeded with the first value: 0.3*20 + 0.7*10 = 13.
	assert.InDelta(t, 13.0, EMA([]float64{10, 20}, 0.3), 1e-9)
	assert.InDelta(t, 10.0, EMA([]float64{10}, 0.3), 1e-9)
	assert.InDelta(t, 0.0, EMA(nil, 0.3), 1e-9)
}

func TestConsistency(t *testing.T) {
	// Zero variance scores a perfect 100.
	assert.InDelta(t, 100.0, Consistency([]float64{21, 21, 21}), 1e-9)
	// Single value is perfectly consistent by definition.
	assert.InDelta(t, 100.0, Consistency([]float64{21}), 1e-9)
	// Zero mean scores 0.
	assert.InDelta(t, 0.0, Consistency([]float64{-10, 10}), 1e-9)
	// High spread scores low.
	assert.Less(t, Consistency([]float64{3, 45, 7, 38}), Consistency([]float64{20, 22, 21, 23}))
}

func TestDetectChangepoint(t *testing.T) {
	cp := DetectChangepoint([]float64{10, 10, 10, 20, 20, 20}, 3, 5.0)
	require.True(t, cp.Detected)
	assert.Equal(t, "up", cp.Direction)
	assert.InDelta(t, 10.0, cp.Magnitude, 1e-9)

	cp = DetectChangepoint([]float64{20, 20, 20, 10, 10, 10}, 3, 5.0)
	require.True(t, cp.Detected)
	assert.Equal(t, "down", cp.Direction)

	// Shift below the threshold is not flagged.
	cp = DetectChangepoint([]float64{10, 10, 10, 13, 13, 13}, 3, 5.0)
	assert.False(t, cp.Detected)

	// Not enough games for two windows.
	cp = DetectChangepoint([]float64{10, 20, 30}, 3, 5.0)
	assert.False(t, cp.Detected)
}

func TestSeasonTrend(t *testing.T) {
	trend, direction := SeasonTrend([]float64{10, 10, 20, 20})
	assert.InDelta(t, 10.0, trend, 1e-9)
	assert.Equal(t, "up", direction)

	trend, direction = SeasonTrend([]float64{20, 20, 10, 10})
	assert.InDelta(t, -10.0, trend, 1e-9)
	assert.Equal(t, "down", direction)

	_, direction = SeasonTrend([]float64{20, 21, 20, 21})
	assert.Equal(t, "flat", direction)

	trend, direction = SeasonTrend([]float64{10, 30})
	assert.InDelta(t, 0.0, trend, 1e-9)
	assert.Equal(t, "flat", direction)
}

func statGame(week int, home, away string, homeScore, awayScore int) *models.Game {
	return &models.Game{
		Season:      2024,
		Week:        week,
		GameDate:    time.Date(2024, 9, 1+week*7, 17, 0, 0, 0, time.UTC),
		HomeTeam:    home,
		AwayTeam:    away,
		IsCompleted: true,
		HomeScore:   &homeScore,
		AwayScore:   &awayScore,
	}
}

func TestAnalyzeTeam(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)

	games := []*models.Game{
		statGame(1, "KC", "BAL", 27, 20),
		statGame(2, "CIN", "KC", 14, 24),
		statGame(3, "KC", "LAC", 17, 17),
		statGame(4, "DEN", "KC", 21, 16),
	}

	s := analyzer.AnalyzeTeam(2024, "KC", games)
	require.NotNil(t, s)

	assert.Equal(t, 4, s.GamesPlayed)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Ties)
	assert.Equal(t, 2, s.HomeGames)
	assert.Equal(t, 2, s.AwayGames)

	// KC scored 27, 24, 17, 16 and allowed 20, 14, 17, 21.
	assert.Equal(t, 84, s.TotalPointsScored)
	assert.Equal(t, 72, s.TotalPointsAllowed)
	assert.InDelta(t, 21.0, s.PPGScored, 1e-9)
	assert.InDelta(t, 18.0, s.PPGAllowed, 1e-9)
	assert.InDelta(t, 3.0, s.PointDifferential, 1e-9)

	// Home: scored 27, 17; away: scored 24, 16.
	assert.InDelta(t, 22.0, s.HomePPG, 1e-9)
	assert.InDelta(t, 20.0, s.AwayPPG, 1e-9)

	// All four games land inside the last-5 window.
	assert.Equal(t, 4, s.Last5Games)
	assert.Equal(t, 2, s.Last5Wins)
	assert.InDelta(t, 21.0, s.Last5PPG, 1e-9)

	// Margins 7, 10, 0, -5: three land inside the close-game band, and only
	// the +7 counts as a close win.
	assert.Equal(t, 3, s.CloseGames)
	assert.Equal(t, 1, s.CloseGameWins)
	assert.InDelta(t, 75.0, s.CloseGamePct, 1e-9)
}

func TestAnalyzeTeamNoGames(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)
	assert.Nil(t, analyzer.AnalyzeTeam(2024, "KC", nil))
}

func TestAnalyzeTeamChangepoint(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)

	// Three games around 10 points then three around 24: a clear upward
	// shift over the default window of 3 and threshold of 5.
	scores := []int{10, 9, 11, 24, 23, 25}
	games := make([]*models.Game, 0, len(scores))
	for i, pts := range scores {
		games = append(games, statGame(i+1, "KC", "OPP", pts, 20))
	}

	s := analyzer.AnalyzeTeam(2024, "KC", games)
	require.NotNil(t, s)
	assert.True(t, s.ScoringChangepoint)
	assert.Equal(t, "up", s.ScoringChangepointDirection)
	assert.InDelta(t, 14.0, s.ScoringChangepointMagnitude, 1e-9)
	assert.Equal(t, "up", s.SeasonTrendDirection)
}

func TestAnalyzeTeamRecentFormWindow(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)

	// Seven games; only the last five count toward recent form.
	games := make([]*models.Game, 0, 7)
	for week := 1; week <= 7; week++ {
		pts := 10
		if week > 2 {
			pts = 30 // weeks 3-7 form the last-5 window
		}
		games = append(games, statGame(week, "KC", "OPP", pts, 20))
	}

	s := analyzer.AnalyzeTeam(2024, "KC", games)
	require.NotNil(t, s)
	assert.Equal(t, 5, s.Last5Games)
	assert.InDelta(t, 30.0, s.Last5PPG, 1e-9)
	assert.Equal(t, 5, s.Last5Wins)
}

func TestAnalyzeSeason(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)

	games := []*models.Game{
		statGame(1, "KC", "BAL", 34, 17),
		statGame(2, "BAL", "CIN", 24, 21),
		statGame(3, "CIN", "KC", 14, 31),
	}

	results := analyzer.AnalyzeSeason(2024, games)
	require.Len(t, results, 3)

	// Sorted by point differential descending.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].PointDifferential, results[i].PointDifferential)
	}
	assert.Equal(t, "KC", results[0].TeamCode)
}

func TestAnalyzeSeasonSkipsOtherSeasons(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)

	other := statGame(1, "KC", "BAL", 34, 17)
	other.Season = 2023

	results := analyzer.AnalyzeSeason(2024, []*models.Game{other})
	assert.Empty(t, results)
}

func TestGameProfile(t *testing.T) {
	analyzer := NewAnalyzer(DefaultConfig(), nil)

	h1, h2 := 21, 3
	oh1, oh2 := 7, 7
	game := statGame(1, "KC", "OPP", 24, 14)
	game.Home1H, game.Home2H = &h1, &h2
	game.Away1H, game.Away2H = &oh1, &oh2

	s := analyzer.AnalyzeTeam(2024, "KC", []*models.Game{game})
	require.NotNil(t, s)
	// First-half differential +14 vs second-half -4.
	assert.Equal(t, models.ProfileFastStarter, s.GameProfile)
}
