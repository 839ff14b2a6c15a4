package models

import "time"

// TeamRating combines the schedule-adjusted strength measures for one team
// in one season. Recomputed from scratch on every run.
type TeamRating struct {
	TeamCode   string    `db:"team_code" json:"team_code"`
	Season     int       `db:"season" json:"season"`
	Wins       int       `db:"wins" json:"wins"`
	Losses     int       `db:"losses" json:"losses"`
	Ties       int       `db:"ties" json:"ties"`
	WinPct     float64   `db:"win_pct" json:"win_pct" validate:"gte=0,lte=1"`
	PointsFor  int       `db:"points_for" json:"points_for"`
	PointsAgainst int    `db:"points_against" json:"points_against"`
	PPD        float64   `db:"ppd" json:"ppd"`
	SOS        float64   `db:"sos" json:"sos" validate:"gte=0,lte=1"`
	SRS        float64   `db:"srs" json:"srs"`
	// HFA is the team-specific home field advantage in points. HFAKnown is
	// false when the team lacked the historical sample to estimate one, in
	// which case consumers fall back to the league default.
	HFA        float64   `db:"hfa" json:"hfa"`
	HFAKnown   bool      `db:"hfa_known" json:"hfa_known"`
	ComputedAt time.Time `db:"computed_at" json:"computed_at"`
}
