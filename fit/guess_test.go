package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuessRisingSeries(t *testing.T) {
	// Value doubles every time unit: the log-slope is exactly ln 2.
	times := []float64{0, 1, 2, 3, 4, 5}
	values := []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2}

	p := Guess(times, values)

	require.Equal(t, 0.1, p.N0)
	require.Equal(t, 3.2, p.K)
	require.InDelta(t, math.Ln2, p.R, 1e-9)
}

func TestGuessFloorsNonPositiveStart(t *testing.T) {
	times := []float64{0, 2, 4, 6, 8}
	values := []float64{0, 0.2, 0.9, 1.8, 2.0}

	p := Guess(times, values)

	require.Greater(t, p.N0, 0.0)
	require.Equal(t, 2.0, p.K)
	require.Greater(t, p.R, 0.0)
}

func TestGuessDecliningSeriesSeedsNegativeRate(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	values := []float64{3.0, 2.5, 2.0, 1.5, 1.0}

	p := Guess(times, values)

	require.Negative(t, p.R, "declining series must start in the decay regime")
	require.GreaterOrEqual(t, p.R, -maxGuessRate)
	require.Greater(t, p.K, p.N0, "flat or declining series must keep K above N0")
}

func TestGuessFlatSeriesUsesDefaultRate(t *testing.T) {
	times := []float64{0, 1, 2, 3, 4}
	values := []float64{2.0, 2.0, 2.0, 2.0, 2.0}

	p := Guess(times, values)

	require.Equal(t, DefaultGrowthRate, p.R)
	require.Greater(t, p.K, p.N0)
}

func TestGuessCapsRate(t *testing.T) {
	// A several-hundredfold jump in one time unit suggests an absurd rate.
	times := []float64{0, 1, 2, 3, 4}
	values := []float64{0.003, 2.0, 2.2, 2.3, 2.6}

	p := Guess(times, values)
	require.Equal(t, maxGuessRate, p.R)
}

func TestGuessToleratesNonFiniteInput(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	values := []float64{math.NaN(), math.Inf(1), math.NaN(), math.NaN()}

	p := Guess(times, values)

	require.True(t, isFinite(p.N0))
	require.True(t, isFinite(p.K))
	require.True(t, isFinite(p.R))
}
