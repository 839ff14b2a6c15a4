// Package stats computes per-team time-series statistics from game scores:
// scoring averages and splits, variance and consistency, exponential moving
// averages, changepoint detection, and season trends.
package stats

import "math"

// Changepoint describes a detected shift in recent performance.
type Changepoint struct {
	Detected  bool
	Direction string
	Magnitude float64
}

// Mean returns the arithmetic mean, or 0 for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation. Series shorter than two
// values have no spread and return 0.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// EMA returns the exponential moving average of the series, seeded with the
// first value in chronological order. Empty series return 0.
func EMA(values []float64, alpha float64) float64 {
	if len(values) == 0 {
		return 0
	}
	ema := values[0]
	for _, v := range values[1:] {
		ema = alpha*v + (1-alpha)*ema
	}
	return ema
}

// Consistency scores how repeatable a series is, 0-100, from the inverted
// coefficient of variation: CV 0 scores 100, CV 1+ scores 0. Fewer than two
// values is perfectly consistent by definition; an exactly-zero mean scores 0.
func Consistency(values []float64) float64 {
	if len(values) < 2 {
		return 100
	}
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	cv := StdDev(values) / mean
	return math.Max(0, math.Min(100, 100*(1-cv)))
}

// DetectChangepoint compares the mean of the most recent window against the
// window immediately prior and flags a shift when the difference meets the
// threshold. Requires at least 2*window values.
func DetectChangepoint(values []float64, window int, threshold float64) Changepoint {
	if window <= 0 || len(values) < window*2 {
		return Changepoint{}
	}

	recent := Mean(values[len(values)-window:])
	prior := Mean(values[len(values)-window*2 : len(values)-window])
	diff := recent - prior

	if math.Abs(diff) >= threshold {
		direction := "up"
		if diff < 0 {
			direction = "down"
		}
		return Changepoint{Detected: true, Direction: direction, Magnitude: diff}
	}
	return Changepoint{}
}

// SeasonTrend splits the series at its midpoint and returns the second-half
// mean minus the first-half mean, with a direction label: "up" above +2,
// "down" below -2, otherwise "flat". Series shorter than four games have no
// defined trend and report flat with trend 0.
func SeasonTrend(values []float64) (float64, string) {
	if len(values) < 4 {
		return 0, "flat"
	}
	mid := len(values) / 2
	trend := Mean(values[mid:]) - Mean(values[:mid])
	switch {
	case trend > 2:
		return trend, "up"
	case trend < -2:
		return trend, "down"
	default:
		return trend, "flat"
	}
}
