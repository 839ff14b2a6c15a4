package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Defaults for the analyzer tunables.
const (
	DefaultEMAAlpha             = 0.3
	DefaultChangepointWindow    = 3
	DefaultChangepointThreshold = 5.0
	DefaultRecentFormGames      = 5

	closeGameMargin = 7
	blowoutMargin   = 14
	profileGap      = 2
)

// Config carries the analyzer tunables.
type Config struct {
	EMAAlpha             float64
	ChangepointWindow    int
	ChangepointThreshold float64
	RecentFormGames      int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		EMAAlpha:             DefaultEMAAlpha,
		ChangepointWindow:    DefaultChangepointWindow,
		ChangepointThreshold: DefaultChangepointThreshold,
		RecentFormGames:      DefaultRecentFormGames,
	}
}

// Analyzer computes TeamGameStats from completed games.
type Analyzer struct {
	cfg    Config
	logger *logrus.Logger
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(cfg Config, logger *logrus.Logger) *Analyzer {
	if cfg.EMAAlpha <= 0 || cfg.EMAAlpha > 1 {
		cfg.EMAAlpha = DefaultEMAAlpha
	}
	if cfg.ChangepointWindow <= 0 {
		cfg.ChangepointWindow = DefaultChangepointWindow
	}
	if cfg.ChangepointThreshold <= 0 {
		cfg.ChangepointThreshold = DefaultChangepointThreshold
	}
	if cfg.RecentFormGames <= 0 {
		cfg.RecentFormGames = DefaultRecentFormGames
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Analyzer{cfg: cfg, logger: logger}
}

// AnalyzeSeason computes stats for every team with at least one completed
// game in the season. Teams are mutually independent, so each is analyzed in
// its own goroutine; results merge by team code and come back sorted by
// point differential descending.
func (a *Analyzer) AnalyzeSeason(season int, games []*models.Game) []*models.TeamGameStats {
	completed := make([]*models.Game, 0, len(games))
	teams := make(map[string]struct{})
	for _, g := range games {
		if g.Season != season || !g.HasScores() {
			continue
		}
		completed = append(completed, g)
		teams[g.HomeTeam] = struct{}{}
		teams[g.AwayTeam] = struct{}{}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make([]*models.TeamGameStats, 0, len(teams))
	for team := range teams {
		wg.Add(1)
		go func(team string) {
			defer wg.Done()
			s := a.AnalyzeTeam(season, team, completed)
			if s == nil {
				return
			}
			mu.Lock()
			results = append(results, s)
			mu.Unlock()
		}(team)
	}
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].PointDifferential != results[j].PointDifferential {
			return results[i].PointDifferential > results[j].PointDifferential
		}
		return results[i].TeamCode < results[j].TeamCode
	})

	a.logger.WithFields(logrus.Fields{
		"season": season,
		"teams":  len(results),
	}).Info("Computed team game stats")

	return results
}

// teamView is one game from a single team's perspective.
type teamView struct {
	scored, allowed                float64
	q1s, q2s, q3s, q4s             float64
	q1a, q2a, q3a, q4a             float64
	h1s, h2s, h1a, h2a             float64
	isHome                         bool
}

// AnalyzeTeam computes the full stat line for one team. Returns nil when the
// team has no completed games in the set.
func (a *Analyzer) AnalyzeTeam(season int, team string, games []*models.Game) *models.TeamGameStats {
	ordered := chronological(team, games)
	if len(ordered) == 0 {
		return nil
	}

	views := make([]teamView, 0, len(ordered))
	for _, g := range ordered {
		views = append(views, viewFor(team, g))
	}

	s := &models.TeamGameStats{
		TeamCode:    team,
		Season:      season,
		GamesPlayed: len(views),
		ComputedAt:  time.Now().UTC(),
	}

	scored := make([]float64, len(views))
	allowed := make([]float64, len(views))
	margins := make([]float64, len(views))
	totals := make([]float64, len(views))
	for i, v := range views {
		scored[i] = v.scored
		allowed[i] = v.allowed
		margins[i] = v.scored - v.allowed
		totals[i] = v.scored + v.allowed
		s.TotalPointsScored += int(v.scored)
		s.TotalPointsAllowed += int(v.allowed)

		switch {
		case v.scored > v.allowed:
			s.Wins++
		case v.scored < v.allowed:
			s.Losses++
		default:
			s.Ties++
		}
		if v.isHome {
			s.HomeGames++
		} else {
			s.AwayGames++
		}
	}

	s.PPGScored = Mean(scored)
	s.PPGAllowed = Mean(allowed)
	s.PointDifferential = s.PPGScored - s.PPGAllowed

	a.fillSplits(s, views)
	a.fillQuarterStats(s, views)
	a.fillRecentForm(s, views)

	s.ScoringStdDev = StdDev(scored)
	s.AllowedStdDev = StdDev(allowed)
	s.ScoringConsistency = Consistency(scored)

	s.AvgMargin = Mean(margins)
	s.MarginStdDev = StdDev(margins)
	a.fillMarginRates(s, margins)

	s.AvgTotalPoints = Mean(totals)
	s.TotalPointsStdDev = StdDev(totals)

	s.EMAPPG = EMA(scored, a.cfg.EMAAlpha)
	s.EMAPPGAllowed = EMA(allowed, a.cfg.EMAAlpha)
	s.EMADifferential = s.EMAPPG - s.EMAPPGAllowed

	cp := DetectChangepoint(scored, a.cfg.ChangepointWindow, a.cfg.ChangepointThreshold)
	s.ScoringChangepoint = cp.Detected
	s.ScoringChangepointDirection = cp.Direction
	s.ScoringChangepointMagnitude = cp.Magnitude

	s.SeasonTrend, s.SeasonTrendDirection = SeasonTrend(scored)

	return s
}

func (a *Analyzer) fillSplits(s *models.TeamGameStats, views []teamView) {
	var homeScored, homeAllowed, awayScored, awayAllowed []float64
	for _, v := range views {
		if v.isHome {
			homeScored = append(homeScored, v.scored)
			homeAllowed = append(homeAllowed, v.allowed)
		} else {
			awayScored = append(awayScored, v.scored)
			awayAllowed = append(awayAllowed, v.allowed)
		}
	}
	s.HomePPG = Mean(homeScored)
	s.HomePPGAllowed = Mean(homeAllowed)
	s.AwayPPG = Mean(awayScored)
	s.AwayPPGAllowed = Mean(awayAllowed)
}

func (a *Analyzer) fillQuarterStats(s *models.TeamGameStats, views []teamView) {
	n := len(views)
	q1s := make([]float64, n)
	q2s := make([]float64, n)
	q3s := make([]float64, n)
	q4s := make([]float64, n)
	q1a := make([]float64, n)
	q2a := make([]float64, n)
	q3a := make([]float64, n)
	q4a := make([]float64, n)
	h1s := make([]float64, n)
	h2s := make([]float64, n)
	h1a := make([]float64, n)
	h2a := make([]float64, n)
	for i, v := range views {
		q1s[i], q2s[i], q3s[i], q4s[i] = v.q1s, v.q2s, v.q3s, v.q4s
		q1a[i], q2a[i], q3a[i], q4a[i] = v.q1a, v.q2a, v.q3a, v.q4a
		h1s[i], h2s[i], h1a[i], h2a[i] = v.h1s, v.h2s, v.h1a, v.h2a
	}

	s.Q1PPG, s.Q2PPG, s.Q3PPG, s.Q4PPG = Mean(q1s), Mean(q2s), Mean(q3s), Mean(q4s)
	s.Q1PPGAllowed, s.Q2PPGAllowed = Mean(q1a), Mean(q2a)
	s.Q3PPGAllowed, s.Q4PPGAllowed = Mean(q3a), Mean(q4a)
	s.FirstHalfPPG, s.SecondHalfPPG = Mean(h1s), Mean(h2s)
	s.FirstHalfAllowed, s.SecondHalfAllowed = Mean(h1a), Mean(h2a)

	s.Q1Differential = s.Q1PPG - s.Q1PPGAllowed
	s.Q4Differential = s.Q4PPG - s.Q4PPGAllowed
	s.FirstHalfDifferential = s.FirstHalfPPG - s.FirstHalfAllowed
	s.SecondHalfDifferential = s.SecondHalfPPG - s.SecondHalfAllowed

	switch {
	case s.FirstHalfDifferential > s.SecondHalfDifferential+profileGap:
		s.GameProfile = models.ProfileFastStarter
	case s.SecondHalfDifferential > s.FirstHalfDifferential+profileGap:
		s.GameProfile = models.ProfileCloser
	default:
		s.GameProfile = models.ProfileBalanced
	}
}

func (a *Analyzer) fillRecentForm(s *models.TeamGameStats, views []teamView) {
	recent := views
	if len(recent) > a.cfg.RecentFormGames {
		recent = recent[len(recent)-a.cfg.RecentFormGames:]
	}
	scored := make([]float64, 0, len(recent))
	allowed := make([]float64, 0, len(recent))
	for _, v := range recent {
		scored = append(scored, v.scored)
		allowed = append(allowed, v.allowed)
		if v.scored > v.allowed {
			s.Last5Wins++
		}
	}
	s.Last5Games = len(recent)
	s.Last5PPG = Mean(scored)
	s.Last5PPGAllowed = Mean(allowed)
}

func (a *Analyzer) fillMarginRates(s *models.TeamGameStats, margins []float64) {
	if len(margins) == 0 {
		return
	}
	blowoutWins, blowoutLosses := 0, 0
	for _, m := range margins {
		if m >= -closeGameMargin && m <= closeGameMargin {
			s.CloseGames++
			if m > 0 {
				s.CloseGameWins++
			}
		}
		if m >= blowoutMargin {
			blowoutWins++
		}
		if m <= -blowoutMargin {
			blowoutLosses++
		}
	}
	total := float64(len(margins))
	s.CloseGamePct = float64(s.CloseGames) / total * 100
	s.BlowoutWinPct = float64(blowoutWins) / total * 100
	s.BlowoutLossPct = float64(blowoutLosses) / total * 100
}

// chronological returns the team's completed games ordered by week then date.
func chronological(team string, games []*models.Game) []*models.Game {
	ordered := make([]*models.Game, 0)
	for _, g := range games {
		if g.HasScores() && g.Involves(team) {
			ordered = append(ordered, g)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Week != ordered[j].Week {
			return ordered[i].Week < ordered[j].Week
		}
		return ordered[i].GameDate.Before(ordered[j].GameDate)
	})
	return ordered
}

// viewFor flips a game into the team's perspective. Missing quarter splits
// read as zero, matching how partial box scores are stored.
func viewFor(team string, g *models.Game) teamView {
	deref := func(p *int) float64 {
		if p == nil {
			return 0
		}
		return float64(*p)
	}

	if g.HomeTeam == team {
		return teamView{
			scored: deref(g.HomeScore), allowed: deref(g.AwayScore),
			q1s: deref(g.HomeQ1), q2s: deref(g.HomeQ2), q3s: deref(g.HomeQ3), q4s: deref(g.HomeQ4),
			q1a: deref(g.AwayQ1), q2a: deref(g.AwayQ2), q3a: deref(g.AwayQ3), q4a: deref(g.AwayQ4),
			h1s: deref(g.Home1H), h2s: deref(g.Home2H),
			h1a: deref(g.Away1H), h2a: deref(g.Away2H),
			isHome: true,
		}
	}
	return teamView{
		scored: deref(g.AwayScore), allowed: deref(g.HomeScore),
		q1s: deref(g.AwayQ1), q2s: deref(g.AwayQ2), q3s: deref(g.AwayQ3), q4s: deref(g.AwayQ4),
		q1a: deref(g.HomeQ1), q2a: deref(g.HomeQ2), q3a: deref(g.HomeQ3), q4a: deref(g.HomeQ4),
		h1s: deref(g.Away1H), h2s: deref(g.Away2H),
		h1a: deref(g.Home1H), h2a: deref(g.Home2H),
		isHome: false,
	}
}
