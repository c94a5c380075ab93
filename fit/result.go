package fit

// Result holds the outcome of one logistic least-squares fit. It is created
// once per successful optimization and is immutable afterwards.
type Result struct {
	// Params are the fitted logistic parameters.
	Params Parameters

	// StdErr carries the per-parameter standard errors, estimated from the
	// residual variance and the curvature of the objective at the optimum.
	// Entries are NaN when the curvature matrix cannot be inverted.
	StdErr Parameters

	// Sigma is the residual sum of squares at the optimum.
	Sigma float64

	// DF is the degrees of freedom: observations minus fitted parameters.
	DF int
}

// Model returns the fitted curve as a callable function of time.
func (r *Result) Model() func(t float64) float64 {
	p := r.Params
	return func(t float64) float64 {
		return p.Eval(t)
	}
}
