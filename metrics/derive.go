// Package metrics derives the standard summary-statistic battery from a
// fitted logistic growth curve.
//
// Every fitted sample yields one Metrics value: the fitted parameters, the
// curve midpoint time, the fastest doubling time, analytical and empirical
// area-under-curve, the residual sum of squares, degrees of freedom, and a
// diagnostic note. Metric derivation never fails: numerically or
// biologically degenerate fits get NaN sentinels and note tokens instead of
// errors, and all remaining metrics are still computed and returned.
package metrics

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/integrate"

	"github.com/arloliu/growthfit/fit"
)

// Diagnostic note tokens. A non-empty note marks a biologically implausible
// or numerically unstable fit; multiple tokens are joined with "; " in the
// order they are listed here. An empty note means no issues were detected.
const (
	// NoteCapacity: fitted carrying capacity does not exceed the initial
	// population, which no real growth curve can produce.
	NoteCapacity = "k not above n0"

	// NoteMidpoint: the fitted curve reaches half capacity before the
	// experiment started.
	NoteMidpoint = "negative midpoint time"

	// NoteNoGrowth: the fitted growth rate is zero or negative.
	NoteNoGrowth = "no growth detected"

	// NoteAUC: the closed-form integral of the fitted curve is undefined
	// for the fitted parameters.
	NoteAUC = "analytic auc undefined"

	// NoteIdentifiability: at least one parameter's standard error is
	// undefined or very large relative to the parameter itself.
	NoteIdentifiability = "poorly identified parameters"
)

// seRatio is the identifiability threshold: a parameter whose standard
// error exceeds this multiple of its own magnitude is considered
// unidentified.
const seRatio = 100.0

// Metrics is the derived, read-only summary of one fitted sample.
type Metrics struct {
	// K, N0 and R are the fitted logistic parameters, carried over.
	K  float64
	N0 float64
	R  float64

	// TMid is the time at which the modeled population reaches K/2.
	// NaN unless K > N0 > 0 and R is nonzero.
	TMid float64

	// TGen is the fastest doubling time, ln(2)/R. NaN when R <= 0.
	TGen float64

	// AUCLogistic is the closed-form integral of the fitted curve from
	// t=0 to the trim bound.
	AUCLogistic float64

	// AUCEmpirical is the trapezoidal integral over the observed corrected
	// points up to the same trim bound.
	AUCEmpirical float64

	// Sigma is the residual sum of squares of the fit.
	Sigma float64

	// DF is the fit's degrees of freedom.
	DF int

	// Note carries the diagnostic tokens, empty when no issues were
	// detected. For failed samples it describes the failure instead.
	Note string
}

// Failed returns the sentinel Metrics recorded for a sample whose
// correction or fit failed: every float field is NaN, DF is zero, and the
// note describes the failure.
func Failed(note string) Metrics {
	nan := math.NaN()

	return Metrics{
		K:            nan,
		N0:           nan,
		R:            nan,
		TMid:         nan,
		TGen:         nan,
		AUCLogistic:  nan,
		AUCEmpirical: nan,
		Sigma:        nan,
		Note:         note,
	}
}

// Derive computes the metric battery for one fitted sample.
//
// Parameters:
//   - res: the fit outcome
//   - times, values: the observed (corrected) series the fit was run on
//   - bound: the AUC integration bound, shared by both AUC variants so
//     they stay comparable (normally Config.TrimBound of the last time)
//
// Derive recovers every numeric degeneracy locally: an undefined metric
// becomes NaN plus a note token, and the remaining metrics are still
// computed. It never panics and never returns an error.
func Derive(res *fit.Result, times, values []float64, bound float64) Metrics {
	p := res.Params
	nan := math.NaN()

	m := Metrics{
		K:            p.K,
		N0:           p.N0,
		R:            p.R,
		TMid:         nan,
		TGen:         nan,
		AUCLogistic:  nan,
		AUCEmpirical: nan,
		Sigma:        res.Sigma,
		DF:           res.DF,
	}

	var notes []string

	if p.K > p.N0 && p.N0 > 0 && p.R != 0 {
		m.TMid = math.Log((p.K-p.N0)/p.N0) / p.R
	}
	if !(p.K > p.N0) {
		notes = append(notes, NoteCapacity)
	}
	if m.TMid < 0 {
		notes = append(notes, NoteMidpoint)
	}

	if p.R > 0 {
		m.TGen = math.Ln2 / p.R
	} else {
		notes = append(notes, NoteNoGrowth)
	}

	if auc := p.Integral(bound); isFinite(auc) {
		m.AUCLogistic = auc
	} else {
		notes = append(notes, NoteAUC)
	}

	m.AUCEmpirical = empiricalAUC(times, values, bound)

	if poorlyIdentified(res) {
		notes = append(notes, NoteIdentifiability)
	}

	m.Note = strings.Join(notes, "; ")

	return m
}

// empiricalAUC integrates the observed points up to bound with the
// trapezoidal rule. Fewer than two usable points yield NaN.
func empiricalAUC(times, values []float64, bound float64) float64 {
	n := 0
	for n < len(times) && times[n] <= bound {
		n++
	}
	if n < 2 {
		return math.NaN()
	}

	return integrate.Trapezoidal(times[:n], values[:n])
}

// poorlyIdentified reports whether any parameter's standard error is
// undefined or exceeds seRatio times the parameter magnitude.
func poorlyIdentified(res *fit.Result) bool {
	checks := [...][2]float64{
		{res.StdErr.N0, res.Params.N0},
		{res.StdErr.K, res.Params.K},
		{res.StdErr.R, res.Params.R},
	}

	for _, c := range checks {
		se, param := c[0], c[1]
		if math.IsNaN(se) || math.IsInf(se, 0) {
			return true
		}
		if se > seRatio*math.Abs(param) {
			return true
		}
	}

	return false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
