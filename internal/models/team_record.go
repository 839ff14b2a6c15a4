package models

// TeamRecord is the per-team accumulation of one season's completed games.
// It is built once from the full completed-game set and never mutated
// incrementally; a rerun over the same games yields an identical record.
type TeamRecord struct {
	TeamCode      string   `db:"team_code" json:"team_code"`
	Season        int      `db:"season" json:"season"`
	Wins          int      `db:"wins" json:"wins"`
	Losses        int      `db:"losses" json:"losses"`
	Ties          int      `db:"ties" json:"ties"`
	PointsFor     int      `db:"points_for" json:"points_for"`
	PointsAgainst int      `db:"points_against" json:"points_against"`
	// Opponents holds one entry per game played, in schedule order.
	// A twice-played opponent appears twice.
	Opponents []string `db:"-" json:"opponents"`
}

// GamesPlayed returns the total number of completed games.
func (r *TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// WinPct returns the win percentage with ties counted as half a win.
// A team with no games returns 0.5 by convention.
func (r *TeamRecord) WinPct() float64 {
	total := r.GamesPlayed()
	if total == 0 {
		return 0.5
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(total)
}

// PointDiffPerGame returns (points for - points against) / games played,
// or 0 for a team with no games.
func (r *TeamRecord) PointDiffPerGame() float64 {
	total := r.GamesPlayed()
	if total == 0 {
		return 0
	}
	return float64(r.PointsFor-r.PointsAgainst) / float64(total)
}
