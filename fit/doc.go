// Package fit estimates logistic growth parameters from time-series
// measurements by nonlinear least squares.
//
// The package covers the first three stages of the growth-analysis
// pipeline: background correction of raw measurements, initial-parameter
// guessing, and the Levenberg-Marquardt fit of the logistic model
//
//	N(t) = K / (1 + ((K-N0)/N0) * e^(-r*t))
//
// against the corrected series. Derived summary statistics live in the
// metrics package; batch orchestration across many samples lives in the
// plate package.
//
// # Basic Usage
//
// Correct a raw series, fit it, and inspect the parameters:
//
//	cfg, err := fit.NewConfig(fit.WithCorrection(fit.ModeMin))
//	if err != nil {
//	    return err
//	}
//
//	corrected, err := fit.Correct(raw, cfg)
//	if err != nil {
//	    return err
//	}
//
//	res, err := fit.Fit(times, corrected, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("K=%.3f N0=%.3f r=%.3f (rss=%.4g)\n",
//	    res.Params.K, res.Params.N0, res.Params.R, res.Sigma)
//
// # Correction Modes
//
// Three policies are supported:
//
//   - ModeMin: subtract the series' own minimum (per-sample, independent
//     across samples)
//   - ModeBlank: subtract an aligned blank reference series point by point
//   - ModeNone: pass through; the caller has already corrected the data
//
// # Failure Model
//
// Unusable input (mismatched lengths, missing blank, too few points)
// fails with ErrConfig. An optimizer that cannot reach a minimum within
// its iteration and damping bounds fails with ErrConvergence. Both are
// plain sentinel errors, so callers can branch with errors.Is. Degenerate
// but fittable data (near-zero or negative corrected values, declining
// series) does not error: it converges to whatever parameters minimize the
// residual and is flagged downstream by the metrics layer.
//
// # Determinism
//
// Fitting has no random component. Re-running Fit on an identical input
// triple produces bit-identical results.
package fit
