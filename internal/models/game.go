package models

import "time"

// Game represents a single NFL game, completed or upcoming.
// Scores and quarter splits are pointers because upcoming games carry none;
// a completed game is immutable once recorded.
type Game struct {
	Season     int       `db:"season" json:"season" validate:"required"`
	Week       int       `db:"week" json:"week" validate:"required,min=1"`
	GameDate   time.Time `db:"game_date" json:"game_date"`
	HomeTeam   string    `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam   string    `db:"away_team" json:"away_team" validate:"required"`
	IsCompleted bool     `db:"is_completed" json:"is_completed"`

	HomeScore *int `db:"home_score" json:"home_score,omitempty"`
	AwayScore *int `db:"away_score" json:"away_score,omitempty"`

	HomeQ1 *int `db:"home_q1" json:"home_q1,omitempty"`
	HomeQ2 *int `db:"home_q2" json:"home_q2,omitempty"`
	HomeQ3 *int `db:"home_q3" json:"home_q3,omitempty"`
	HomeQ4 *int `db:"home_q4" json:"home_q4,omitempty"`
	HomeOT *int `db:"home_ot" json:"home_ot,omitempty"`
	AwayQ1 *int `db:"away_q1" json:"away_q1,omitempty"`
	AwayQ2 *int `db:"away_q2" json:"away_q2,omitempty"`
	AwayQ3 *int `db:"away_q3" json:"away_q3,omitempty"`
	AwayQ4 *int `db:"away_q4" json:"away_q4,omitempty"`
	AwayOT *int `db:"away_ot" json:"away_ot,omitempty"`

	Home1H *int `db:"home_1h" json:"home_1h,omitempty"`
	Home2H *int `db:"home_2h" json:"home_2h,omitempty"`
	Away1H *int `db:"away_1h" json:"away_1h,omitempty"`
	Away2H *int `db:"away_2h" json:"away_2h,omitempty"`
}

// HasScores reports whether the game carries usable final scores.
// Games without scores are excluded from every rating and stats computation.
func (g *Game) HasScores() bool {
	return g.IsCompleted && g.HomeScore != nil && g.AwayScore != nil
}

// TotalPoints returns home score + away score. Zero when scores are absent.
func (g *Game) TotalPoints() int {
	if g.HomeScore == nil || g.AwayScore == nil {
		return 0
	}
	return *g.HomeScore + *g.AwayScore
}

// HomeMargin returns home score - away score. Zero when scores are absent.
func (g *Game) HomeMargin() int {
	if g.HomeScore == nil || g.AwayScore == nil {
		return 0
	}
	return *g.HomeScore - *g.AwayScore
}

// Involves reports whether the team played in this game.
func (g *Game) Involves(teamCode string) bool {
	return g.HomeTeam == teamCode || g.AwayTeam == teamCode
}
