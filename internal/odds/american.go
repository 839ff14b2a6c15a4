// Package odds converts team strength estimates into a market-style pricing
// model: win probabilities, American moneylines, point spreads, and totals.
package odds

import "math"

// Sentinel moneylines for degenerate probabilities.
const (
	MaxUnderdogML = 10000
	MaxFavoriteML = -10000
)

// QuantizeHalf snaps a value to the half-point grid every posted line lands
// on. Exact halves round to even (22.25 -> 22.0, 22.75 -> 23.0), replicating
// the rounding rule the persisted data was produced with.
func QuantizeHalf(v float64) float64 {
	return math.RoundToEven(v*2) / 2
}

// ProbToAmerican converts a win probability to American odds. Favorites
// (p >= 0.5) price negative, underdogs positive. Probabilities at or beyond
// the 0/1 boundaries clamp to the +/-10000 sentinels.
func ProbToAmerican(p float64) int {
	if p <= 0 {
		return MaxUnderdogML
	}
	if p >= 1 {
		return MaxFavoriteML
	}
	if p >= 0.5 {
		return int(math.RoundToEven(-100 * p / (1 - p)))
	}
	return int(math.RoundToEven(100 * (1 - p) / p))
}

// ApplyVig inflates a fair probability by the bookmaker margin, capped at
// 0.99, and converts the result to American odds. Each side of a market is
// adjusted independently.
func ApplyVig(fairProb, vig float64) int {
	adjusted := math.Min(fairProb*(1+vig), 0.99)
	return ProbToAmerican(adjusted)
}

// ImpliedProbability recovers the probability implied by an American
// moneyline, vig included.
func ImpliedProbability(ml int) float64 {
	if ml < 0 {
		abs := float64(-ml)
		return abs / (abs + 100)
	}
	return 100 / (float64(ml) + 100)
}

// Logistic is the win-probability transfer function: p = 1/(1+e^(-k*x)).
func Logistic(k, x float64) float64 {
	return 1 / (1 + math.Exp(-k*x))
}
