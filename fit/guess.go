package fit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tunable constants for the initial-guess heuristic. The guess only needs
// to land inside the optimizer's basin of convergence for typical sigmoidal
// data, not to be accurate.
const (
	// DefaultGrowthRate seeds the optimizer when the series yields no
	// usable log-slope estimate (too short, too noisy, or flat).
	DefaultGrowthRate = 0.25

	// maxGuessRate caps the slope estimate so a single near-zero early
	// point cannot produce a wild starting rate.
	maxGuessRate = 5.0

	// slopeFloorFraction excludes near-background points from the slope
	// estimate: both points of a pair must exceed this fraction of the
	// series maximum.
	slopeFloorFraction = 1e-3

	// slopeCeilFraction excludes plateau points from the slope estimate:
	// both points of a pair must stay below this fraction of the maximum.
	slopeCeilFraction = 0.95
)

// Guess derives a starting parameter triple from a corrected series:
//
//   - N0: the first observed value, floored at a small positive value when
//     the series starts at or below zero.
//   - K: the maximum observed value.
//   - R: the steepest positive slope of the log-transformed growth-phase
//     data; for series with no positive slope the steepest negative slope,
//     so declining data starts the optimizer in the decay regime; or
//     DefaultGrowthRate when no slope is usable at all.
//
// Guess never fails; non-finite inputs fall back to the defaults and leave
// the optimizer to report the series as unfittable.
func Guess(times, values []float64) Parameters {
	if len(values) == 0 {
		return Parameters{N0: tinyValue, K: 1, R: DefaultGrowthRate}
	}

	k := floats.Max(values)
	if !isFinite(k) || k <= 0 {
		k = 1
	}

	n0 := values[0]
	if !isFinite(n0) || n0 <= 0 {
		n0 = math.Max(tinyValue, slopeFloorFraction*k)
	}

	if k <= n0 {
		// Flat or declining series. Keep the pair separated so the
		// optimizer does not start on a singular Jacobian.
		k = n0 * 1.1
	}

	return Parameters{N0: n0, K: k, R: guessRate(times, values, floats.Max(values))}
}

// guessRate estimates the growth rate from the steepest slope of ln(value)
// between consecutive growth-phase observations. A positive slope wins; a
// series with only negative slopes seeds the optimizer with the steepest
// decline instead, keeping declining data inside the decay basin.
func guessRate(times, values []float64, maxValue float64) float64 {
	floor := slopeFloorFraction * maxValue
	ceil := slopeCeilFraction * maxValue
	best := 0.0
	worst := 0.0

	for i := 1; i < len(values); i++ {
		lo, hi := values[i-1], values[i]
		if !(lo > floor) || !(hi > floor) || !(lo < ceil) || !(hi < ceil) {
			continue
		}
		dt := times[i] - times[i-1]
		if !(dt > 0) {
			continue
		}
		slope := (math.Log(hi) - math.Log(lo)) / dt
		if slope > best {
			best = slope
		}
		if slope < worst {
			worst = slope
		}
	}

	if best > 0 && isFinite(best) {
		return math.Min(best, maxGuessRate)
	}
	if worst < 0 && isFinite(worst) {
		return math.Max(worst, -maxGuessRate)
	}

	return DefaultGrowthRate
}
