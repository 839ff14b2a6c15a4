package rating

import (
	"sync"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// DefaultSRSRounds is the fixed iteration count for the simple rating system.
// The count is part of the observable contract: no convergence check is
// performed, and consumers rely on the 20-round result.
const DefaultSRSRounds = 20

// SimpleRatingSystem computes SRS per team: point differential per game plus
// the average SRS of the schedule, iterated a fixed number of rounds. Each
// round every team reads the previous round's snapshot, so updates within a
// round are order-independent; the two maps alternate as read and write
// buffers. Teams with no opponents keep their raw point differential.
//
// The iteration is a linear relaxation over the schedule graph. It is an
// accepted approximation: pathological schedules may not have settled after
// the fixed round count.
func SimpleRatingSystem(records map[string]*models.TeamRecord, rounds int) map[string]float64 {
	if rounds <= 0 {
		rounds = DefaultSRSRounds
	}

	ppd := make(map[string]float64, len(records))
	for team, rec := range records {
		ppd[team] = rec.PointDiffPerGame()
	}

	prev := make(map[string]float64, len(records))
	for team, v := range ppd {
		prev[team] = v
	}

	codes := TeamCodes(records)
	for i := 0; i < rounds; i++ {
		next := make(map[string]float64, len(records))

		var wg sync.WaitGroup
		var mu sync.Mutex
		for _, team := range codes {
			wg.Add(1)
			go func(team string) {
				defer wg.Done()
				value := srsRound(records[team], ppd[team], prev)
				mu.Lock()
				next[team] = value
				mu.Unlock()
			}(team)
		}
		wg.Wait()

		prev = next
	}

	return prev
}

// srsRound computes one team's rating for a round from the prior snapshot.
func srsRound(rec *models.TeamRecord, ppd float64, prev map[string]float64) float64 {
	if len(rec.Opponents) == 0 {
		return ppd
	}
	oppSum := 0.0
	for _, opp := range rec.Opponents {
		oppSum += prev[opp]
	}
	return ppd + oppSum/float64(len(rec.Opponents))
}
