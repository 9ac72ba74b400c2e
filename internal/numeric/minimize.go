package numeric

import "math"

// invPhi is 1/φ for the golden ratio φ
var invPhi = (math.Sqrt(5) - 1) / 2

// Minimum is the outcome of a bounded one-dimensional search.
type Minimum struct {
	X          float64
	F          float64
	Iterations int
	Converged  bool
}

// GoldenSection minimizes a unimodal f over [lo, hi]. The best point seen is
// always returned, with Converged false if the interval did not shrink
// below tol within MaxIterations.
func GoldenSection(f func(float64) float64, lo, hi, tol float64) Minimum {
	if hi < lo {
		lo, hi = hi, lo
	}

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)

	iter := 0
	for ; iter < MaxIterations; iter++ {
		if math.Abs(b-a) <= tol*(1+math.Abs(c)+math.Abs(d)) {
			break
		}
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}

	m := Minimum{Iterations: iter, Converged: iter < MaxIterations}
	if fc < fd {
		m.X, m.F = c, fc
	} else {
		m.X, m.F = d, fd
	}

	// The bracket ends are candidates too when the minimum sits on a bound
	for _, x := range []float64{lo, hi} {
		if fx := f(x); fx < m.F {
			m.X, m.F = x, fx
		}
	}
	return m
}
