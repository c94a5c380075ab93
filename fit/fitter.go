package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tunable optimizer constants. The defaults satisfy the recovery property
// for clean sigmoidal data (relative parameter error below 1e-3) while
// keeping pathological inputs bounded.
const (
	// DefaultMaxIterations caps the Levenberg-Marquardt outer loop.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the relative residual-sum-of-squares improvement
	// below which an accepted step declares convergence.
	DefaultTolerance = 1e-10

	// initialLambda is the starting damping factor.
	initialLambda = 1e-3

	// maxLambda is the damping ceiling. Reaching it means no step of any
	// size improves the objective: a numerical minimum when the residual
	// sum is finite, a failed fit otherwise.
	maxLambda = 1e12

	// lambdaUp and lambdaDown scale the damping factor after a rejected
	// and an accepted step respectively.
	lambdaUp   = 10.0
	lambdaDown = 0.1

	// minLambda keeps the damping factor from underflowing after long
	// streaks of accepted steps.
	minLambda = 1e-12

	// gradientTolerance declares a stationary point when the largest
	// gradient component falls below it.
	gradientTolerance = 1e-12
)

// freeParameters is the number of fitted logistic parameters.
const freeParameters = 3

// minDistinctTimes is the smallest number of distinct time points that
// yields a meaningful three-parameter fit.
const minDistinctTimes = 4

// Fit runs nonlinear least squares of the logistic growth model against a
// time series. The value series is expected to be background-corrected
// already (see Correct); Fit never applies a correction itself.
//
// Parameters:
//   - times: observation times, non-negative and non-decreasing, at least
//     4 distinct
//   - values: corrected measurements, same length as times
//   - cfg: fitting options; zero MaxIterations/Tolerance fall back to the
//     package defaults
//
// Returns:
//   - *Result: fitted parameters, standard errors, residual sum of squares
//     and degrees of freedom
//   - error: ErrConfig for unusable input, ErrConvergence when the
//     optimizer fails to reach a minimum within its bounds
//
// Fit is deterministic: the same input triple always produces the same
// result.
func Fit(times, values []float64, cfg Config) (*Result, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: time and value lengths differ (%d vs %d)",
			ErrConfig, len(times), len(values))
	}

	n := len(times)
	df := n - freeParameters
	if df <= 0 {
		return nil, fmt.Errorf("%w: %d observations leave no degrees of freedom for %d parameters",
			ErrConfig, n, freeParameters)
	}

	// The AUC metrics integrate from t=0, so observations before that are
	// rejected outright rather than silently extrapolated over.
	if times[0] < 0 {
		return nil, fmt.Errorf("%w: negative time %v", ErrConfig, times[0])
	}

	distinct := 1
	for i := 1; i < n; i++ {
		if times[i] < times[i-1] {
			return nil, fmt.Errorf("%w: time vector must be non-decreasing", ErrConfig)
		}
		if times[i] > times[i-1] {
			distinct++
		}
	}
	if distinct < minDistinctTimes {
		return nil, fmt.Errorf("%w: need at least %d distinct time points, got %d",
			ErrConfig, minDistinctTimes, distinct)
	}

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	params, err := levenbergMarquardt(times, values, Guess(times, values), maxIter, tol)
	if err != nil {
		return nil, err
	}

	ssr := residualSumSquares(times, values, params)

	return &Result{
		Params: params,
		StdErr: standardErrors(times, values, params, ssr, df),
		Sigma:  ssr,
		DF:     df,
	}, nil
}

// levenbergMarquardt minimizes the sum of squared residuals over the three
// logistic parameters, starting from start. Each iteration solves the
// damped normal equations
//
//	(JᵀJ + lambda*diag(JᵀJ)) * delta = Jᵀresidual
//
// accepting the step when it lowers the objective and raising the damping
// factor otherwise.
func levenbergMarquardt(times, values []float64, start Parameters, maxIter int, tol float64) (Parameters, error) {
	p := start
	lambda := initialLambda
	ssr := residualSumSquares(times, values, p)

	for iter := 0; iter < maxIter; iter++ {
		jtj, jtr := normalEquations(times, values, p)

		if maxAbs(jtr) < gradientTolerance {
			// Stationary point; nothing left to improve.
			return p, nil
		}

		for {
			delta, ok := solveDamped(jtj, jtr, lambda)
			if ok {
				trial := Parameters{
					N0: p.N0 + delta[0],
					K:  p.K + delta[1],
					R:  p.R + delta[2],
				}
				trialSSR := residualSumSquares(times, values, trial)

				if trialSSR < ssr {
					improved := ssr - trialSSR
					p, ssr = trial, trialSSR
					lambda = math.Max(lambda*lambdaDown, minLambda)
					if improved <= tol*(ssr+tol) {
						return p, nil
					}

					break
				}
			}

			lambda *= lambdaUp
			if lambda > maxLambda {
				if isFinite(ssr) {
					// Not even a maximally damped (near gradient-descent)
					// step improves a finite objective: the current point
					// is a numerical minimum, not a divergence.
					return p, nil
				}

				return p, fmt.Errorf("%w: damping limit reached after %d iterations (rss=%g)",
					ErrConvergence, iter+1, ssr)
			}
		}
	}

	return p, fmt.Errorf("%w: iteration limit %d reached", ErrConvergence, maxIter)
}

// solveDamped solves the damped 3x3 normal system for one candidate step.
// ok is false when the system is singular at the current damping factor.
func solveDamped(jtj [3][3]float64, jtr [3]float64, lambda float64) (delta [3]float64, ok bool) {
	flat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := jtj[i][j]
			if i == j {
				d := jtj[i][i]
				if d == 0 {
					d = 1
				}
				v += lambda * d
			}
			flat = append(flat, v)
		}
	}

	var sol mat.VecDense
	if err := sol.SolveVec(mat.NewDense(3, 3, flat), mat.NewVecDense(3, jtr[:])); err != nil {
		return delta, false
	}

	for i := 0; i < 3; i++ {
		delta[i] = sol.AtVec(i)
		if !isFinite(delta[i]) {
			return delta, false
		}
	}

	return delta, true
}

// normalEquations accumulates JᵀJ and Jᵀresidual for the current parameters
// in one pass over the data.
func normalEquations(times, values []float64, p Parameters) (jtj [3][3]float64, jtr [3]float64) {
	for i := range times {
		dn0, dk, dr := p.partials(times[i])
		grad := [3]float64{dn0, dk, dr}
		residual := values[i] - p.Eval(times[i])

		for a := 0; a < 3; a++ {
			jtr[a] += grad[a] * residual
			for b := 0; b < 3; b++ {
				jtj[a][b] += grad[a] * grad[b]
			}
		}
	}

	return jtj, jtr
}

// standardErrors estimates per-parameter standard errors from the residual
// variance and the inverse curvature matrix at the optimum. When JᵀJ cannot
// be inverted, all entries are NaN; the metrics layer turns that into a
// diagnostic note.
func standardErrors(times, values []float64, p Parameters, ssr float64, df int) Parameters {
	nan := math.NaN()

	jtj, _ := normalEquations(times, values, p)
	flat := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			flat = append(flat, jtj[i][j])
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(3, 3, flat)); err != nil {
		// An ill-conditioned (but invertible) matrix still yields a usable
		// estimate; anything else does not.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Parameters{N0: nan, K: nan, R: nan}
		}
	}

	variance := ssr / float64(df)
	se := func(i int) float64 {
		v := inv.At(i, i) * variance
		if v < 0 || math.IsNaN(v) {
			return nan
		}

		return math.Sqrt(v)
	}

	return Parameters{N0: se(0), K: se(1), R: se(2)}
}

func residualSumSquares(times, values []float64, p Parameters) float64 {
	var ssr float64
	for i := range times {
		d := values[i] - p.Eval(times[i])
		ssr += d * d
	}

	return ssr
}

func maxAbs(v [3]float64) float64 {
	m := math.Abs(v[0])
	for _, x := range v[1:] {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}
