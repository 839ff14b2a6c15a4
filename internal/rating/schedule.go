package rating

import "github.com/yourusername/gridiron-edge/internal/models"

// ScheduleStrength computes strength of schedule per team: the mean win
// percentage across the team's opponent list, counting a twice-played
// opponent twice. A team with no opponents gets the neutral 0.5; so does an
// opponent missing from the record set.
func ScheduleStrength(records map[string]*models.TeamRecord) map[string]float64 {
	winPcts := make(map[string]float64, len(records))
	for team, rec := range records {
		winPcts[team] = rec.WinPct()
	}

	sos := make(map[string]float64, len(records))
	for team, rec := range records {
		if len(rec.Opponents) == 0 {
			sos[team] = 0.5
			continue
		}
		sum := 0.0
		for _, opp := range rec.Opponents {
			pct, ok := winPcts[opp]
			if !ok {
				pct = 0.5
			}
			sum += pct
		}
		sos[team] = sum / float64(len(rec.Opponents))
	}

	return sos
}
