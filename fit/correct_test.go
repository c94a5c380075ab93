package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestCorrectMin(t *testing.T) {
	raw := []float64{0.1, 0.1, 0.3, 0.9, 2.0, 3.5, 3.9, 4.0, 4.0}

	corrected, err := Correct(raw, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, corrected, len(raw))
	require.Zero(t, floats.Min(corrected), "minimum of a min-corrected series is exactly 0")
	require.Equal(t, []float64{0, 0, 0.2, 0.8, 1.9, 3.4, 3.8, 3.9, 3.9}, roundAll(corrected))
	require.Equal(t, 0.1, raw[0], "input series must not be modified")
}

// roundAll removes the float subtraction dust so slices compare cleanly.
func roundAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Round(v*1e12) / 1e12
	}

	return out
}

func TestCorrectMinAllowsNegativeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Correction = ModeBlank
	cfg.Blank = []float64{0.5, 0.5, 0.5}

	corrected, err := Correct([]float64{0.2, 0.6, 1.0}, cfg)
	require.NoError(t, err)
	require.Equal(t, []float64{-0.3, 0.1, 0.5}, roundAll(corrected), "corrected values are not floored at zero")
}

func TestCorrectBlank(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Correction = ModeBlank
	cfg.Blank = []float64{0.1, 0.1, 0.2, 0.1}

	corrected, err := Correct([]float64{0.3, 0.5, 1.0, 2.1}, cfg)
	require.NoError(t, err)
	require.Equal(t, []float64{0.2, 0.4, 0.8, 2.0}, roundAll(corrected))
}

func TestCorrectBlankMismatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Correction = ModeBlank
	cfg.Blank = []float64{0.1, 0.1}

	_, err := Correct([]float64{0.3, 0.5, 1.0}, cfg)
	require.ErrorIs(t, err, ErrConfig)
}

func TestCorrectBlankMissing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Correction = ModeBlank

	_, err := Correct([]float64{0.3, 0.5, 1.0}, cfg)
	require.ErrorIs(t, err, ErrConfig)
}

func TestCorrectNone(t *testing.T) {
	raw := []float64{0.3, 0.5, 1.0}
	cfg := DefaultConfig()
	cfg.Correction = ModeNone

	corrected, err := Correct(raw, cfg)
	require.NoError(t, err)
	require.Equal(t, raw, corrected)

	corrected[0] = 99
	require.Equal(t, 0.3, raw[0], "pass-through must still copy")
}

func TestCorrectEmptySeries(t *testing.T) {
	_, err := Correct(nil, DefaultConfig())
	require.ErrorIs(t, err, ErrConfig)
}

func TestCorrectUnknownMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Correction = Mode(42)

	_, err := Correct([]float64{1, 2, 3}, cfg)
	require.ErrorIs(t, err, ErrConfig)
}

func TestModeStrings(t *testing.T) {
	require.Equal(t, "min", ModeMin.String())
	require.Equal(t, "blank", ModeBlank.String())
	require.Equal(t, "none", ModeNone.String())
	require.Equal(t, "unknown", Mode(42).String())

	mode, ok := ModeFromString("blank")
	require.True(t, ok)
	require.Equal(t, ModeBlank, mode)

	_, ok = ModeFromString("median")
	require.False(t, ok)
}
