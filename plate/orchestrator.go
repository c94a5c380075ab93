// Package plate orchestrates growth-curve fitting across all samples of a
// multi-well plate.
//
// Run applies the correct -> fit -> derive pipeline to every sample column
// of a Table independently and assembles one Result row per column, in
// input column order. A failing sample never aborts the batch: its row
// carries sentinel metrics and a note describing the failure. Because every
// sample's fit is self-contained, the per-sample work can be spread across
// workers with WithWorkers; row order is preserved by writing each result
// into its column's slot rather than appending on completion.
package plate

import (
	"fmt"
	"sync"

	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/internal/options"
	"github.com/arloliu/growthfit/metrics"
	"github.com/arloliu/growthfit/plot"
)

// runConfig holds the orchestration-level knobs, separate from the per-fit
// Config.
type runConfig struct {
	workers     int
	renderer    plot.Renderer
	curvePoints int
}

// RunOption is a functional option for Run.
type RunOption = options.Option[*runConfig]

// WithWorkers distributes per-sample fits across n workers. Output row
// order is unaffected by completion order.
func WithWorkers(n int) RunOption {
	return options.New(func(rc *runConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: worker count must be positive, got %d", fit.ErrConfig, n)
		}
		rc.workers = n

		return nil
	})
}

// WithRenderer emits one chart payload per successfully fitted sample to
// the given renderer. Rendering is best-effort: a renderer failure never
// affects the returned Result.
func WithRenderer(r plot.Renderer) RunOption {
	return options.NoError(func(rc *runConfig) {
		rc.renderer = r
	})
}

// WithCurvePoints overrides the number of fitted-curve samples per chart
// payload.
func WithCurvePoints(n int) RunOption {
	return options.New(func(rc *runConfig) error {
		if n < 2 {
			return fmt.Errorf("%w: curve point count must be at least 2, got %d", fit.ErrConfig, n)
		}
		rc.curvePoints = n

		return nil
	})
}

// Run fits every sample column of the table and assembles the plate result.
//
// For blank correction, a blank series already present in cfg wins;
// otherwise the table's blank column is used, and its absence is a
// configuration error. The blank column itself never yields a row.
//
// Returns:
//   - *Result: one row per sample column, in input column order
//   - error: ErrConfig for an unusable table or configuration; individual
//     sample failures are recorded in their rows instead
func Run(t *Table, cfg fit.Config, opts ...RunOption) (*Result, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", fit.ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc := runConfig{workers: 1, curvePoints: plot.DefaultCurvePoints}
	if err := options.Apply(&rc, opts...); err != nil {
		return nil, err
	}

	if cfg.Correction == fit.ModeBlank && cfg.Blank == nil {
		blank := t.Blank()
		if blank == nil {
			return nil, fmt.Errorf("%w: blank correction requested but table has no %q column",
				fit.ErrConfig, BlankColumn)
		}
		cfg.Blank = blank
	}

	samples := t.Samples()
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: table has no sample columns", fit.ErrConfig)
	}

	rows := make([]Row, len(samples))

	if rc.workers <= 1 || len(samples) == 1 {
		for i, col := range samples {
			rows[i] = fitColumn(t.times, col, cfg, &rc)
		}
	} else {
		var wg sync.WaitGroup
		indexes := make(chan int)

		workers := min(rc.workers, len(samples))
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indexes {
					rows[i] = fitColumn(t.times, samples[i], cfg, &rc)
				}
			}()
		}

		for i := range samples {
			indexes <- i
		}
		close(indexes)
		wg.Wait()
	}

	return &Result{Rows: rows, Fingerprint: t.Fingerprint()}, nil
}

// fitColumn runs one sample through the pipeline, converting failures into
// a sentinel row instead of aborting the batch.
func fitColumn(times []float64, col Column, cfg fit.Config, rc *runConfig) Row {
	corrected, err := fit.Correct(col.Values, cfg)
	if err != nil {
		return Row{Sample: col.Name, Metrics: metrics.Failed("background correction failed: " + err.Error())}
	}

	res, err := fit.Fit(times, corrected, cfg)
	if err != nil {
		return Row{Sample: col.Name, Metrics: metrics.Failed("fit failed: " + err.Error())}
	}

	m := metrics.Derive(res, times, corrected, cfg.TrimBound(times[len(times)-1]))

	if rc.renderer != nil {
		// Chart emission is a side channel; its failure never reaches the row.
		_ = rc.renderer.Render(plot.Build(col.Name, times, corrected, res, rc.curvePoints))
	}

	return Row{Sample: col.Name, Metrics: m}
}
