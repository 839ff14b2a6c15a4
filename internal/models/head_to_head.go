package models

import "time"

// HeadToHead summarizes every meeting between one pair of teams across the
// loaded seasons. Team1 and Team2 are ordered lexicographically so each pair
// appears exactly once; per-team figures are from Team1's perspective.
type HeadToHead struct {
	Team1      string `db:"team1" json:"team1"`
	Team2      string `db:"team2" json:"team2"`
	TotalGames int    `db:"total_games" json:"total_games"`
	Team1Wins  int    `db:"team1_wins" json:"team1_wins"`
	Team2Wins  int    `db:"team2_wins" json:"team2_wins"`
	Ties       int    `db:"ties" json:"ties"`

	Team1PPG       float64 `db:"team1_ppg" json:"team1_ppg"`
	Team2PPG       float64 `db:"team2_ppg" json:"team2_ppg"`
	AvgTotalPoints float64 `db:"avg_total_points" json:"avg_total_points"`

	LastMeetingSeason int       `db:"last_meeting_season" json:"last_meeting_season"`
	LastMeetingWeek   int       `db:"last_meeting_week" json:"last_meeting_week"`
	LastMeetingDate   time.Time `db:"last_meeting_date" json:"last_meeting_date"`
	// LastMeetingWinner is empty when the last meeting ended in a tie.
	LastMeetingWinner string `db:"last_meeting_winner" json:"last_meeting_winner,omitempty"`
	// LastMeetingScore is "team1Points-team2Points".
	LastMeetingScore string `db:"last_meeting_score" json:"last_meeting_score"`
}
