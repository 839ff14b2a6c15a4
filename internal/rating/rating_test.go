package rating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func completedGame(season, week int, home, away string, homeScore, awayScore int) *models.Game {
	return &models.Game{
		Season:      season,
		Week:        week,
		GameDate:    time.Date(season, 9, 7+week*7, 17, 0, 0, 0, time.UTC),
		HomeTeam:    home,
		AwayTeam:    away,
		IsCompleted: true,
		HomeScore:   &homeScore,
		AwayScore:   &awayScore,
	}
}

func TestAggregateRecords(t *testing.T) {
	games := []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 27, 20),
		completedGame(2024, 2, "BAL", "KC", 17, 17),
		completedGame(2024, 3, "KC", "CIN", 26, 25),
	}

	records := AggregateRecords(2024, games)
	require.Len(t, records, 3)

	kc := records["KC"]
	assert.Equal(t, 2, kc.Wins)
	assert.Equal(t, 0, kc.Losses)
	assert.Equal(t, 1, kc.Ties)
	assert.Equal(t, 70, kc.PointsFor)
	assert.Equal(t, 62, kc.PointsAgainst)
	assert.Equal(t, []string{"BAL", "BAL", "CIN"}, kc.Opponents)

	bal := records["BAL"]
	assert.Equal(t, 0, bal.Wins)
	assert.Equal(t, 1, bal.Losses)
	assert.Equal(t, 1, bal.Ties)
}

func TestAggregateRecordsSkipsUnfinishedGames(t *testing.T) {
	upcoming := &models.Game{Season: 2024, Week: 4, HomeTeam: "KC", AwayTeam: "LV"}
	wrongSeason := completedGame(2023, 1, "KC", "LV", 30, 10)

	records := AggregateRecords(2024, []*models.Game{upcoming, wrongSeason})
	assert.Empty(t, records)
}

func TestAggregateRecordsOrderIndependent(t *testing.T) {
	games := []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 27, 20),
		completedGame(2024, 2, "CIN", "KC", 14, 21),
	}
	reversed := []*models.Game{games[1], games[0]}

	a := AggregateRecords(2024, games)
	b := AggregateRecords(2024, reversed)
	assert.Equal(t, a["KC"].Opponents, b["KC"].Opponents)
	assert.Equal(t, a["KC"].PointsFor, b["KC"].PointsFor)
}

func TestScheduleStrength(t *testing.T) {
	games := []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 27, 20), // KC 1-0, BAL 0-1
		completedGame(2024, 2, "BAL", "CIN", 24, 10), // BAL 1-1, CIN 0-1
	}
	records := AggregateRecords(2024, games)
	sos := ScheduleStrength(records)

	// KC played BAL once; BAL is 1-1 so SOS = 0.5.
	assert.InDelta(t, 0.5, sos["KC"], 1e-9)
	// BAL played KC (1-0) and CIN (0-1): (1.0 + 0.0)/2.
	assert.InDelta(t, 0.5, sos["BAL"], 1e-9)
	// CIN played only BAL (1-1).
	assert.InDelta(t, 0.5, sos["CIN"], 1e-9)
}

func TestScheduleStrengthNoOpponents(t *testing.T) {
	records := map[string]*models.TeamRecord{
		"KC": {TeamCode: "KC", Season: 2024},
	}
	sos := ScheduleStrength(records)
	assert.InDelta(t, 0.5, sos["KC"], 1e-9)
}

func TestSimpleRatingSystemBalancedLeague(t *testing.T) {
	// Every game a tie: all point differentials are zero, so every team's
	// rating must stay zero through every round.
	games := []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 20, 20),
		completedGame(2024, 2, "BAL", "CIN", 17, 17),
		completedGame(2024, 3, "CIN", "KC", 23, 23),
	}
	records := AggregateRecords(2024, games)
	srs := SimpleRatingSystem(records, DefaultSRSRounds)

	for team, rating := range srs {
		assert.InDelta(t, 0.0, rating, 1e-9, "team %s", team)
	}
}

func TestSimpleRatingSystemRanksDominantTeam(t *testing.T) {
	// KC beats everyone by double digits; CLE loses everything.
	games := []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 34, 17),
		completedGame(2024, 2, "KC", "CIN", 31, 14),
		completedGame(2024, 3, "KC", "CLE", 38, 10),
		completedGame(2024, 4, "BAL", "CIN", 24, 21),
		completedGame(2024, 5, "CIN", "CLE", 27, 13),
		completedGame(2024, 6, "BAL", "CLE", 30, 16),
	}
	records := AggregateRecords(2024, games)
	srs := SimpleRatingSystem(records, DefaultSRSRounds)

	assert.Greater(t, srs["KC"], srs["BAL"])
	assert.Greater(t, srs["BAL"], srs["CIN"])
	assert.Greater(t, srs["CIN"], srs["CLE"])
}

func TestSimpleRatingSystemNoOpponentsKeepsPPD(t *testing.T) {
	records := map[string]*models.TeamRecord{
		"KC": {TeamCode: "KC", Season: 2024, Wins: 1, PointsFor: 30, PointsAgainst: 20},
	}
	srs := SimpleRatingSystem(records, DefaultSRSRounds)
	assert.InDelta(t, 10.0, srs["KC"], 1e-9)
}

func TestSimpleRatingSystemDefaultRounds(t *testing.T) {
	records := AggregateRecords(2024, []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 27, 20),
	})
	withDefault := SimpleRatingSystem(records, 0)
	explicit := SimpleRatingSystem(records, DefaultSRSRounds)
	assert.Equal(t, explicit, withDefault)
}

func TestHomeFieldAdvantage(t *testing.T) {
	// KC wins home games by 7 and loses away games by 3, over a sample large
	// enough on both sides: HFA = (7 - (-3)) / 2 = 5.
	games := make([]*models.Game, 0, 40)
	for i := 0; i < 20; i++ {
		games = append(games, completedGame(2022+i%2, i%17+1, "KC", "OPP", 27, 20))
		games = append(games, completedGame(2022+i%2, i%17+1, "OPP", "KC", 23, 20))
	}

	hfa := HomeFieldAdvantage(games, 20)
	require.Contains(t, hfa, "KC")
	assert.InDelta(t, 5.0, hfa["KC"], 1e-9)
}

func TestHomeFieldAdvantageInsufficientSample(t *testing.T) {
	games := []*models.Game{
		completedGame(2024, 1, "KC", "OPP", 27, 20),
		completedGame(2024, 2, "OPP", "KC", 20, 23),
	}
	hfa := HomeFieldAdvantage(games, 20)
	assert.NotContains(t, hfa, "KC")
}

func TestCalculatorCompute(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)

	seasonGames := []*models.Game{
		completedGame(2024, 1, "KC", "BAL", 34, 17),
		completedGame(2024, 2, "BAL", "CIN", 24, 21),
		completedGame(2024, 3, "CIN", "KC", 14, 31),
	}

	ratings, err := calc.Compute(2024, seasonGames, seasonGames)
	require.NoError(t, err)
	require.Len(t, ratings, 3)

	// Sorted by SRS descending.
	for i := 1; i < len(ratings); i++ {
		assert.GreaterOrEqual(t, ratings[i-1].SRS, ratings[i].SRS)
	}

	kc := ratings[0]
	assert.Equal(t, "KC", kc.TeamCode)
	assert.Equal(t, 2, kc.Wins)
	assert.Equal(t, 0, kc.Losses)
	assert.InDelta(t, 1.0, kc.WinPct, 1e-9)
	assert.InDelta(t, 17.0, kc.PPD, 1e-9)
	// Three games of history is nowhere near the HFA sample floor.
	assert.False(t, kc.HFAKnown)
}

func TestCalculatorComputeNoGames(t *testing.T) {
	calc := NewCalculator(DefaultConfig(), nil)
	_, err := calc.Compute(2024, nil, nil)
	assert.ErrorIs(t, err, models.ErrInsufficientData)
}

func TestHeadToHeadRecords(t *testing.T) {
	games := []*models.Game{
		// KC-LV across two seasons; KC hosts once, visits once.
		completedGame(2023, 5, "KC", "LV", 31, 17),
		completedGame(2024, 8, "LV", "KC", 20, 27),
		// A tied rivalry game.
		completedGame(2024, 3, "CIN", "BAL", 24, 24),
		// Unfinished games contribute nothing.
		{Season: 2024, Week: 10, HomeTeam: "KC", AwayTeam: "LV"},
	}

	records := HeadToHeadRecords(games)
	require.Len(t, records, 2)

	// Sorted by (Team1, Team2): BAL-CIN before KC-LV.
	balCin := records[0]
	assert.Equal(t, "BAL", balCin.Team1)
	assert.Equal(t, "CIN", balCin.Team2)
	assert.Equal(t, 1, balCin.TotalGames)
	assert.Equal(t, 1, balCin.Ties)
	assert.Empty(t, balCin.LastMeetingWinner)
	assert.Equal(t, "24-24", balCin.LastMeetingScore)

	kcLv := records[1]
	assert.Equal(t, "KC", kcLv.Team1)
	assert.Equal(t, "LV", kcLv.Team2)
	assert.Equal(t, 2, kcLv.TotalGames)
	assert.Equal(t, 2, kcLv.Team1Wins)
	assert.Equal(t, 0, kcLv.Team2Wins)
	assert.InDelta(t, 29.0, kcLv.Team1PPG, 1e-9)
	assert.InDelta(t, 18.5, kcLv.Team2PPG, 1e-9)
	assert.InDelta(t, 47.5, kcLv.AvgTotalPoints, 1e-9)
	assert.Equal(t, 2024, kcLv.LastMeetingSeason)
	assert.Equal(t, 8, kcLv.LastMeetingWeek)
	assert.Equal(t, "KC", kcLv.LastMeetingWinner)
	// Score is from Team1's perspective even when Team1 was the visitor.
	assert.Equal(t, "27-20", kcLv.LastMeetingScore)
}

func TestHeadToHeadRecordsOrdersMeetingsByRecency(t *testing.T) {
	games := []*models.Game{
		completedGame(2024, 12, "GB", "DET", 14, 31),
		completedGame(2024, 1, "DET", "GB", 34, 20),
		completedGame(2022, 18, "GB", "DET", 16, 20),
	}

	records := HeadToHeadRecords(games)
	require.Len(t, records, 1)

	h2h := records[0]
	assert.Equal(t, 3, h2h.Team1Wins)
	assert.Equal(t, 2024, h2h.LastMeetingSeason)
	assert.Equal(t, 12, h2h.LastMeetingWeek)
	assert.Equal(t, "DET", h2h.LastMeetingWinner)
	assert.Equal(t, "31-14", h2h.LastMeetingScore)
}

func TestHeadToHeadRecordsEmptyInput(t *testing.T) {
	assert.Empty(t, HeadToHeadRecords(nil))
}
