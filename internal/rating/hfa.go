package rating

import "github.com/yourusername/gridiron-edge/internal/models"

// DefaultHFAMinGames is the minimum home and away sample required before a
// team-specific home field advantage is trusted.
const DefaultHFAMinGames = 20

// HomeFieldAdvantage estimates per-team home field advantage from the full
// historical (multi-season) completed-game set. For each team it averages
// the home margin over games hosted and the away margin over games visited;
// HFA is half the difference. Teams below the minimum sample on either side
// are omitted, and consumers fall back to the league default.
func HomeFieldAdvantage(games []*models.Game, minGames int) map[string]float64 {
	if minGames <= 0 {
		minGames = DefaultHFAMinGames
	}

	type marginAcc struct {
		sum   float64
		games int
	}
	homeMargins := make(map[string]*marginAcc)
	awayMargins := make(map[string]*marginAcc)

	for _, g := range games {
		if !g.HasScores() {
			continue
		}
		margin := float64(g.HomeMargin())

		home, ok := homeMargins[g.HomeTeam]
		if !ok {
			home = &marginAcc{}
			homeMargins[g.HomeTeam] = home
		}
		home.sum += margin
		home.games++

		away, ok := awayMargins[g.AwayTeam]
		if !ok {
			away = &marginAcc{}
			awayMargins[g.AwayTeam] = away
		}
		away.sum -= margin // away margin is away score - home score
		away.games++
	}

	hfa := make(map[string]float64)
	for team, home := range homeMargins {
		if home.games < minGames {
			continue
		}
		away, ok := awayMargins[team]
		if !ok || away.games < minGames {
			continue
		}
		homeAvg := home.sum / float64(home.games)
		awayAvg := away.sum / float64(away.games)
		hfa[team] = (homeAvg - awayAvg) / 2
	}

	return hfa
}
