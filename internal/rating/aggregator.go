// Package rating derives team strength measures from completed game results:
// win/loss records, strength of schedule, the iterative simple rating system,
// and historical home field advantage.
package rating

import (
	"sort"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// AggregateRecords folds one season's completed games into per-team records.
// Each game credits both participants: points for/against, win/loss/tie, and
// an opponent-list entry. Teams with zero completed games are omitted rather
// than zero-filled.
//
// Games are ordered by (week, home, away) before folding so the opponent
// lists come out identical across runs regardless of input order.
func AggregateRecords(season int, games []*models.Game) map[string]*models.TeamRecord {
	ordered := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if g.Season == season && g.HasScores() {
			ordered = append(ordered, g)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Week != ordered[j].Week {
			return ordered[i].Week < ordered[j].Week
		}
		if ordered[i].HomeTeam != ordered[j].HomeTeam {
			return ordered[i].HomeTeam < ordered[j].HomeTeam
		}
		return ordered[i].AwayTeam < ordered[j].AwayTeam
	})

	records := make(map[string]*models.TeamRecord)
	ensure := func(team string) *models.TeamRecord {
		rec, ok := records[team]
		if !ok {
			rec = &models.TeamRecord{TeamCode: team, Season: season}
			records[team] = rec
		}
		return rec
	}

	for _, g := range ordered {
		home := ensure(g.HomeTeam)
		away := ensure(g.AwayTeam)

		homeScore := *g.HomeScore
		awayScore := *g.AwayScore

		home.PointsFor += homeScore
		home.PointsAgainst += awayScore
		home.Opponents = append(home.Opponents, g.AwayTeam)

		away.PointsFor += awayScore
		away.PointsAgainst += homeScore
		away.Opponents = append(away.Opponents, g.HomeTeam)

		switch {
		case homeScore > awayScore:
			home.Wins++
			away.Losses++
		case awayScore > homeScore:
			away.Wins++
			home.Losses++
		default:
			home.Ties++
			away.Ties++
		}
	}

	return records
}

// TeamCodes returns the record keys in sorted order, for deterministic
// iteration downstream.
func TeamCodes(records map[string]*models.TeamRecord) []string {
	codes := make([]string, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
