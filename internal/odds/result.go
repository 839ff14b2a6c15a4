package odds

import (
	"math"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// pushBand is the half-point window around a line inside which a result is a
// push rather than a decision.
const pushBand = 0.5

// Settle augments a priced matchup with the actual result: final scores,
// signed margin against the spread, and the cover/push/miss and
// over/push/under classifications. The predictive fields are never touched.
func Settle(o *models.MatchupOdds, game *models.Game) {
	if !game.HasScores() {
		return
	}

	homeScore := *game.HomeScore
	awayScore := *game.AwayScore
	diff := homeScore - awayScore
	total := homeScore + awayScore

	o.ActualHomeScore = &homeScore
	o.ActualAwayScore = &awayScore
	o.ActualDiff = &diff
	o.ActualTotal = &total
	o.IsCompleted = true

	o.SpreadResult = ClassifySpread(float64(diff), o.Spread)
	o.TotalResult = ClassifyTotal(float64(total), o.OverUnder)
}

// ClassifySpread scores the home side against the posted spread. The margin
// is actual difference plus spread (negative spread = home laying points);
// within the push band it is a push, positive covers, negative misses.
func ClassifySpread(actualDiff, spread float64) string {
	margin := actualDiff + spread
	switch {
	case math.Abs(margin) < pushBand:
		return models.SpreadResultPush
	case margin > 0:
		return models.SpreadResultCover
	default:
		return models.SpreadResultMiss
	}
}

// ClassifyTotal scores the combined score against the posted total.
func ClassifyTotal(actualTotal, line float64) string {
	switch {
	case math.Abs(actualTotal-line) < pushBand:
		return models.TotalResultPush
	case actualTotal > line:
		return models.TotalResultOver
	default:
		return models.TotalResultUnder
	}
}
