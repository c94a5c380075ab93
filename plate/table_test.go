package plate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthfit/fit"
)

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable(nil)
	require.ErrorIs(t, err, fit.ErrConfig)

	_, err = NewTable([]float64{0, 2, 1})
	require.ErrorIs(t, err, fit.ErrConfig)

	_, err = NewTable([]float64{-2, -1, 0, 1})
	require.ErrorIs(t, err, fit.ErrConfig)

	tbl, err := NewTable([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, tbl.Times())
}

func TestAddColumnValidation(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1, 2, 3})
	require.NoError(t, err)

	require.ErrorIs(t, tbl.AddColumn(TimeColumn, []float64{1, 2, 3, 4}), fit.ErrConfig)
	require.ErrorIs(t, tbl.AddColumn("a1", []float64{1, 2, 3}), fit.ErrConfig)

	require.NoError(t, tbl.AddColumn("a1", []float64{1, 2, 3, 4}))
	require.ErrorIs(t, tbl.AddColumn("a1", []float64{1, 2, 3, 4}), fit.ErrConfig)
}

func TestTableColumnsAreCopied(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	values := []float64{1, 2, 3, 4}

	tbl, err := NewTable(times)
	require.NoError(t, err)
	require.NoError(t, tbl.AddColumn("a1", values))

	values[0] = 99
	times[0] = 99

	require.Equal(t, 0.0, tbl.Times()[0])
	require.Equal(t, 1.0, tbl.Samples()[0].Values[0])

	// The accessor hands out a copy too, so callers cannot reach the
	// table's internal state through it.
	tbl.Times()[0] = 99
	require.Equal(t, 0.0, tbl.Times()[0])
}

func TestTableBlankAndSamples(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1, 2, 3})
	require.NoError(t, err)

	require.Nil(t, tbl.Blank())

	require.NoError(t, tbl.AddColumn("a1", []float64{1, 2, 3, 4}))
	require.NoError(t, tbl.AddColumn(BlankColumn, []float64{0.1, 0.1, 0.1, 0.1}))
	require.NoError(t, tbl.AddColumn("a2", []float64{2, 3, 4, 5}))

	require.Equal(t, []float64{0.1, 0.1, 0.1, 0.1}, tbl.Blank())

	samples := tbl.Samples()
	require.Len(t, samples, 2)
	require.Equal(t, "a1", samples[0].Name)
	require.Equal(t, "a2", samples[1].Name)
}

func TestTableFingerprint(t *testing.T) {
	build := func(name string, v0 float64) *Table {
		tbl, err := NewTable([]float64{0, 1, 2, 3})
		require.NoError(t, err)
		require.NoError(t, tbl.AddColumn(name, []float64{v0, 2, 3, 4}))

		return tbl
	}

	require.Equal(t, build("a1", 1).Fingerprint(), build("a1", 1).Fingerprint())
	require.NotEqual(t, build("a1", 1).Fingerprint(), build("a1", 1.5).Fingerprint())
	require.NotEqual(t, build("a1", 1).Fingerprint(), build("a2", 1).Fingerprint())
}
