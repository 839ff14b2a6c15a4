package rating

import (
	"fmt"
	"sort"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// HeadToHeadRecords folds the full (multi-season) completed-game set into
// per-pair rivalry records, the same input HomeFieldAdvantage works from.
// Each pair is keyed with the lexicographically smaller code as Team1, and
// the result is sorted by (Team1, Team2).
func HeadToHeadRecords(games []*models.Game) []*models.HeadToHead {
	type pairKey struct {
		team1, team2 string
	}

	meetings := make(map[pairKey][]*models.Game)
	for _, g := range games {
		if !g.HasScores() {
			continue
		}
		key := pairKey{g.HomeTeam, g.AwayTeam}
		if key.team2 < key.team1 {
			key.team1, key.team2 = key.team2, key.team1
		}
		meetings[key] = append(meetings[key], g)
	}

	records := make([]*models.HeadToHead, 0, len(meetings))
	for key, pair := range meetings {
		// Most recent meeting first.
		sort.Slice(pair, func(i, j int) bool {
			if pair[i].Season != pair[j].Season {
				return pair[i].Season > pair[j].Season
			}
			return pair[i].Week > pair[j].Week
		})

		h2h := &models.HeadToHead{
			Team1:      key.team1,
			Team2:      key.team2,
			TotalGames: len(pair),
		}

		var team1Points, team2Points, totalPoints int
		for _, g := range pair {
			t1, t2 := pairScores(g, key.team1)
			team1Points += t1
			team2Points += t2
			totalPoints += t1 + t2

			switch {
			case t1 > t2:
				h2h.Team1Wins++
			case t2 > t1:
				h2h.Team2Wins++
			default:
				h2h.Ties++
			}
		}

		n := float64(len(pair))
		h2h.Team1PPG = float64(team1Points) / n
		h2h.Team2PPG = float64(team2Points) / n
		h2h.AvgTotalPoints = float64(totalPoints) / n

		last := pair[0]
		h2h.LastMeetingSeason = last.Season
		h2h.LastMeetingWeek = last.Week
		h2h.LastMeetingDate = last.GameDate
		t1, t2 := pairScores(last, key.team1)
		h2h.LastMeetingScore = fmt.Sprintf("%d-%d", t1, t2)
		switch {
		case t1 > t2:
			h2h.LastMeetingWinner = key.team1
		case t2 > t1:
			h2h.LastMeetingWinner = key.team2
		}

		records = append(records, h2h)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Team1 != records[j].Team1 {
			return records[i].Team1 < records[j].Team1
		}
		return records[i].Team2 < records[j].Team2
	})

	return records
}

// pairScores returns the game's scores with team1's points first.
func pairScores(g *models.Game, team1 string) (int, int) {
	if g.HomeTeam == team1 {
		return *g.HomeScore, *g.AwayScore
	}
	return *g.AwayScore, *g.HomeScore
}
