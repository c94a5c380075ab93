// Package growthfit fits logistic growth curves to optical-density time
// series and derives the biologically meaningful summary metrics from the
// fitted parameters.
//
// Growthfit is built for plate-reader experiments: many short, noisy series
// (e.g. 96 wells x 10-50 reads) that all follow the same three-parameter
// logistic model
//
//	N(t) = K / (1 + ((K - N0) / N0) * exp(-r * t))
//
// where K is the carrying capacity, N0 the baseline population and r the
// intrinsic growth rate.
//
// # Core Features
//
//   - Damped least-squares fitting with data-driven initial guesses
//   - Background correction (minimum-subtraction, blank series, or none)
//   - Derived metrics: midpoint time, generation time, analytical and
//     empirical area under the curve
//   - Per-sample failure isolation: one bad well never aborts the plate
//   - Deterministic output, with optional order-stable parallel fitting
//   - Compact binary snapshots with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Fitting a single series:
//
//	import "github.com/arloliu/growthfit"
//
//	times := []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}
//	values := []float64{0.05, 0.08, 0.15, 0.31, 0.62, 1.1, 1.9, 2.8, 3.5, 3.9}
//
//	m, err := growthfit.Fit(times, values)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("K=%.3f r=%.3f doubling=%.2fh\n", m.K, m.R, m.TGen)
//
// Fitting a whole plate:
//
//	table, _ := growthfit.NewTable(times)
//	table.AddColumn("A1", wellA1)
//	table.AddColumn("A2", wellA2)
//
//	result, err := growthfit.FitPlate(table)
//	for _, row := range result.Rows {
//	    fmt.Println(row.Sample, row.Metrics.K, row.Metrics.Note)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fit, plate
// and metrics packages, covering the common single-series and whole-plate
// cases. For fine-grained control use the subpackages directly:
//
//   - fit: background correction, configuration options and the optimizer
//   - metrics: derived-metric computation and the note vocabulary
//   - plate: table construction and batch orchestration
//   - plot: chart payload construction and the Renderer interface
//   - snapshot: binary serialization of plate results
//   - compress: the snapshot compression codecs
package growthfit

import (
	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/metrics"
	"github.com/arloliu/growthfit/plate"
)

// Metrics is the derived-metric row for one fitted sample.
type Metrics = metrics.Metrics

// Config holds the per-fit options; build one through fit.NewConfig or let
// the top-level wrappers do it from options.
type Config = fit.Config

// Option configures a fit (see the fit package's With* constructors).
type Option = fit.Option

// Mode selects the background-correction policy.
type Mode = fit.Mode

// Background-correction modes, re-exported for convenience.
const (
	ModeMin   = fit.ModeMin
	ModeBlank = fit.ModeBlank
	ModeNone  = fit.ModeNone
)

// Table is a time-aligned collection of sample columns.
type Table = plate.Table

// Column is one named series of a Table.
type Column = plate.Column

// PlateResult is the ordered per-sample outcome of a plate run.
type PlateResult = plate.Result

// Row is one sample's entry in a PlateResult.
type Row = plate.Row

// NewTable creates a plate table over the shared time grid.
//
// Parameters:
//   - times: non-negative, non-decreasing observation times shared by all
//     columns
//
// Returns:
//   - *Table: the empty table, ready for AddColumn
//   - error: fit.ErrConfig if the time grid is empty, starts before t=0,
//     or is not sorted
func NewTable(times []float64) (*Table, error) {
	return plate.NewTable(times)
}

// Fit corrects and fits a single series, then derives its metrics.
//
// The pipeline is the same one FitPlate applies per column: background
// correction per the configured mode, logistic least-squares, then metric
// derivation with the AUC bound resolved from the trim-time option.
//
// Parameters:
//   - times: non-negative, non-decreasing observation times
//   - values: measurements aligned with times
//   - opts: optional configuration (fit.WithCorrection, fit.WithBlank,
//     fit.WithTrimTime, fit.WithMaxIterations, fit.WithTolerance)
//
// Returns:
//   - Metrics: the derived metrics, with notes for degenerate shapes
//   - error: fit.ErrConfig for unusable input or options, fit.ErrConvergence
//     when the optimizer fails
//
// Example:
//
//	m, err := growthfit.Fit(times, values,
//	    fit.WithCorrection(growthfit.ModeNone),
//	    fit.WithTrimTime(24.0),
//	)
func Fit(times, values []float64, opts ...Option) (Metrics, error) {
	cfg, err := fit.NewConfig(opts...)
	if err != nil {
		return Metrics{}, err
	}

	corrected, err := fit.Correct(values, cfg)
	if err != nil {
		return Metrics{}, err
	}

	res, err := fit.Fit(times, corrected, cfg)
	if err != nil {
		return Metrics{}, err
	}

	return metrics.Derive(res, times, corrected, cfg.TrimBound(times[len(times)-1])), nil
}

// FitPlate fits every sample column of the table sequentially.
//
// Individual sample failures never abort the run: the failing row carries
// NaN metrics and a note naming the failed stage. Only an unusable table or
// configuration yields an error.
//
// Parameters:
//   - t: the plate table
//   - opts: optional per-fit configuration, applied to every column
//
// Returns:
//   - *PlateResult: one row per sample column, in input column order
//   - error: fit.ErrConfig for an unusable table or configuration
func FitPlate(t *Table, opts ...Option) (*PlateResult, error) {
	cfg, err := fit.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return plate.Run(t, cfg)
}

// FitPlateParallel behaves exactly like FitPlate but spreads the per-sample
// fits across the given number of workers. Row order and row content match
// the sequential run; only wall-clock time changes.
//
// Parameters:
//   - t: the plate table
//   - workers: number of concurrent fitters (must be positive)
//   - opts: optional per-fit configuration, applied to every column
//
// Returns:
//   - *PlateResult: one row per sample column, in input column order
//   - error: fit.ErrConfig for an unusable table, configuration or worker count
func FitPlateParallel(t *Table, workers int, opts ...Option) (*PlateResult, error) {
	cfg, err := fit.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return plate.Run(t, cfg, plate.WithWorkers(workers))
}
