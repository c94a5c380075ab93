package fit

import "math"

const (
	// expClamp bounds arguments passed to math.Exp so degenerate parameter
	// combinations saturate instead of overflowing.
	expClamp = 700

	// tinyValue is the magnitude floor for denominators in the model and
	// its partial derivatives.
	tinyValue = 1e-12

	// tinyRate is the growth-rate magnitude below which the closed-form
	// integral switches to its r->0 limit.
	tinyRate = 1e-12
)

// Parameters holds the three logistic growth parameters.
type Parameters struct {
	// N0 is the initial population size.
	N0 float64
	// K is the carrying capacity.
	K float64
	// R is the intrinsic growth rate.
	R float64
}

// Eval returns the modeled population size at time t:
//
//	N(t) = K / (1 + ((K-N0)/N0) * e^(-r*t))
//
// Near-zero N0 and vanishing denominators are guarded, so Eval returns a
// finite value even for implausible parameter combinations; such
// combinations surface as a poor fit rather than a numeric exception.
func (p Parameters) Eval(t float64) float64 {
	n0 := guardTiny(p.N0)
	a := (p.K - n0) / n0
	d := guardTiny(1 + a*safeExp(-p.R*t))

	return p.K / d
}

// Integral returns the closed-form definite integral of the curve over
// [0, tEnd]:
//
//	(K/r) * ln((K + (e^(r*tEnd)-1)*N0) / K)
//
// As r approaches zero the expression degenerates to N0*tEnd, which is used
// when |r| < tinyRate. When the parameters put the logarithm outside its
// domain, Integral returns NaN for the caller to flag.
func (p Parameters) Integral(tEnd float64) float64 {
	if math.Abs(p.R) < tinyRate {
		return p.N0 * tEnd
	}

	if p.K == 0 {
		return math.NaN()
	}

	arg := (p.K + (safeExp(p.R*tEnd)-1)*p.N0) / p.K
	if arg <= 0 {
		return math.NaN()
	}

	return p.K / p.R * math.Log(arg)
}

// partials returns the partial derivatives of Eval with respect to N0, K
// and r at time t, sharing Eval's guards so both stay consistent.
func (p Parameters) partials(t float64) (dn0, dk, dr float64) {
	n0 := guardTiny(p.N0)
	a := (p.K - n0) / n0
	e := safeExp(-p.R * t)
	d := guardTiny(1 + a*e)
	d2 := d * d

	dn0 = p.K * p.K * e / (n0 * n0 * d2)
	dk = 1/d - p.K*e/(n0*d2)
	dr = p.K * a * t * e / d2

	return dn0, dk, dr
}

// safeExp is math.Exp with the argument clamped to [-expClamp, expClamp].
func safeExp(x float64) float64 {
	if x > expClamp {
		x = expClamp
	} else if x < -expClamp {
		x = -expClamp
	}

	return math.Exp(x)
}

// guardTiny keeps v away from zero, preserving its sign.
func guardTiny(v float64) float64 {
	if math.Abs(v) >= tinyValue {
		return v
	}
	if math.Signbit(v) {
		return -tinyValue
	}

	return tinyValue
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
