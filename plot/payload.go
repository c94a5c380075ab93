// Package plot builds renderable chart payloads for fitted samples.
//
// The package deliberately knows nothing about rendering technology: a
// Payload is plain data (observed points plus a sampled fitted curve) that
// a caller-supplied Renderer turns into an actual chart. Orchestration
// treats rendering as a best-effort side channel, so a Renderer error never
// affects fitting results.
package plot

import "github.com/arloliu/growthfit/fit"

// DefaultCurvePoints is the number of curve samples in a payload when the
// caller does not override it.
const DefaultCurvePoints = 100

// Point is one (time, value) chart coordinate.
type Point struct {
	T float64
	V float64
}

// Payload describes one sample's chart: the observed corrected points and
// the fitted curve sampled across the observed time span.
type Payload struct {
	// Sample is the sample (column) name.
	Sample string
	// Points are the observed corrected measurements.
	Points []Point
	// Curve is the fitted model sampled on an even time grid.
	Curve []Point
}

// Renderer consumes chart payloads. Implementations are external
// collaborators (terminal plotters, SVG writers, notebooks); errors they
// return are reported to no one and must be handled internally if they
// matter.
type Renderer interface {
	Render(p Payload) error
}

// Build assembles the render payload for one fitted sample. n is the curve
// sample count; a non-positive n falls back to DefaultCurvePoints.
func Build(sample string, times, values []float64, res *fit.Result, n int) Payload {
	if n <= 0 {
		n = DefaultCurvePoints
	}

	points := make([]Point, len(times))
	for i := range times {
		points[i] = Point{T: times[i], V: values[i]}
	}

	var curve []Point
	if len(times) > 0 {
		t0 := times[0]
		t1 := times[len(times)-1]
		step := 0.0
		if n > 1 {
			step = (t1 - t0) / float64(n-1)
		}

		model := res.Model()
		curve = make([]Point, n)
		for i := range curve {
			tm := t0 + float64(i)*step
			curve[i] = Point{T: tm, V: model(tm)}
		}
	}

	return Payload{Sample: sample, Points: points, Curve: curve}
}
