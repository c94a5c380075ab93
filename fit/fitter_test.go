package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// logisticSeries generates exact model values at the given times.
func logisticSeries(n0, k, r float64, times []float64) []float64 {
	p := Parameters{N0: n0, K: k, R: r}
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = p.Eval(t)
	}

	return out
}

func timeGrid(n int, step float64) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * step
	}

	return times
}

func TestFitRecoversKnownParameters(t *testing.T) {
	times := timeGrid(50, 0.5)
	values := logisticSeries(0.1, 4.0, 0.5, times)

	res, err := Fit(times, values, DefaultConfig())
	require.NoError(t, err)

	require.InEpsilon(t, 0.1, res.Params.N0, 1e-3)
	require.InEpsilon(t, 4.0, res.Params.K, 1e-3)
	require.InEpsilon(t, 0.5, res.Params.R, 1e-3)
	require.Less(t, res.Sigma, 1e-6)
	require.Equal(t, 47, res.DF)
}

func TestFitMeasuredPlateReads(t *testing.T) {
	// Optical-density style readings: lag, exponential phase, plateau.
	times := []float64{0, 2, 4, 6, 8, 10, 12, 14, 16}
	raw := []float64{0.1, 0.1, 0.3, 0.9, 2.0, 3.5, 3.9, 4.0, 4.0}

	cfg := DefaultConfig()
	corrected, err := Correct(raw, cfg)
	require.NoError(t, err)

	res, err := Fit(times, corrected, cfg)
	require.NoError(t, err)

	require.Greater(t, res.Params.K, 3.7)
	require.Less(t, res.Params.K, 4.3)
	require.Greater(t, res.Params.N0, 0.0)
	require.Greater(t, res.Params.R, 0.0)
	require.Equal(t, 6, res.DF)
}

func TestFitDecliningSeries(t *testing.T) {
	// Strictly decreasing series must converge with r <= 0, not fail.
	times := timeGrid(12, 1.0)

	exponential := make([]float64, len(times))
	noisy := make([]float64, len(times))
	linear := make([]float64, len(times))
	for i, tm := range times {
		exponential[i] = 3.5 * math.Exp(-0.3*tm)
		noisy[i] = 3.5*math.Exp(-0.3*tm) + 0.05*math.Sin(float64(i)*1.7)
		linear[i] = 5.0 - 0.35*tm
	}

	tests := []struct {
		name   string
		values []float64
	}{
		{"exponential decay", exponential},
		{"noisy decay", noisy},
		{"linear decline", linear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Fit(times, tt.values, DefaultConfig())
			require.NoError(t, err)
			require.LessOrEqual(t, res.Params.R, 0.0)
		})
	}
}

func TestFitDeterministic(t *testing.T) {
	times := timeGrid(30, 0.5)
	values := logisticSeries(0.05, 2.5, 0.8, times)

	first, err := Fit(times, values, DefaultConfig())
	require.NoError(t, err)
	second, err := Fit(times, values, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestFitModelEvaluatesFittedCurve(t *testing.T) {
	times := timeGrid(40, 0.5)
	values := logisticSeries(0.2, 3.0, 0.6, times)

	res, err := Fit(times, values, DefaultConfig())
	require.NoError(t, err)

	model := res.Model()
	for _, tm := range []float64{0, 5, 10, 19.5} {
		require.InDelta(t, res.Params.Eval(tm), model(tm), 1e-15)
	}
}

func TestFitInputValidation(t *testing.T) {
	good := timeGrid(10, 1.0)

	tests := []struct {
		name   string
		times  []float64
		values []float64
	}{
		{
			name:   "mismatched lengths",
			times:  good,
			values: make([]float64, 9),
		},
		{
			name:   "too few observations",
			times:  []float64{0, 1, 2},
			values: []float64{0.1, 0.2, 0.4},
		},
		{
			name:   "too few distinct times",
			times:  []float64{0, 0, 1, 1, 2, 2},
			values: []float64{0.1, 0.1, 0.2, 0.2, 0.4, 0.4},
		},
		{
			name:   "decreasing time vector",
			times:  []float64{0, 2, 1, 3, 4},
			values: []float64{0.1, 0.2, 0.3, 0.4, 0.5},
		},
		{
			name:   "negative time",
			times:  []float64{-1, 0, 1, 2, 3},
			values: []float64{0.1, 0.2, 0.3, 0.4, 0.5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Fit(tc.times, tc.values, DefaultConfig())
			require.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestFitUnfittableSeriesFailsWithConvergenceError(t *testing.T) {
	times := timeGrid(8, 1.0)
	values := make([]float64, len(times))
	for i := range values {
		values[i] = math.NaN()
	}

	_, err := Fit(times, values, DefaultConfig())
	require.ErrorIs(t, err, ErrConvergence)
}

func TestFitHonorsIterationCap(t *testing.T) {
	times := timeGrid(50, 0.5)
	values := logisticSeries(0.1, 4.0, 0.5, times)

	cfg := DefaultConfig()
	cfg.MaxIterations = 1

	// A single iteration from the heuristic guess cannot reach the
	// documented tolerance on this series.
	_, err := Fit(times, values, cfg)
	require.ErrorIs(t, err, ErrConvergence)
}
