// Package numeric holds the small reentrant solvers used by the column
// and buckling calculations. Every search is bounded and reports whether
// it converged instead of looping forever.
package numeric

import "math"

// MaxIterations caps every iterative search in this package.
const MaxIterations = 200

// SmallestPositiveRoot returns the smallest strictly positive real root of
// a·x² + b·x + c = 0. ok is false when no such root exists.
func SmallestPositiveRoot(a, b, c float64) (root float64, ok bool) {
	if a == 0 {
		// Linear fallback
		if b == 0 {
			return math.NaN(), false
		}
		x := -c / b
		if x > 0 && !math.IsInf(x, 0) {
			return x, true
		}
		return math.NaN(), false
	}

	disc := b*b - 4*a*c
	if disc < 0 || math.IsNaN(disc) {
		return math.NaN(), false
	}

	// Numerically stable form avoids cancellation when b² >> 4ac
	sq := math.Sqrt(disc)
	q := -0.5 * (b + math.Copysign(sq, b))
	x1 := q / a
	x2 := math.Inf(1)
	if q != 0 {
		x2 = c / q
	}

	best := math.Inf(1)
	for _, x := range []float64{x1, x2} {
		if x > 0 && x < best {
			best = x
		}
	}
	if math.IsInf(best, 1) {
		return math.NaN(), false
	}
	return best, true
}

// Bisect finds a root of f inside [lo, hi]. The bracket must change sign.
// converged is false if the bracket is invalid or the iteration cap was hit
// before the interval shrank below tol; the midpoint of the last bracket is
// returned either way.
func Bisect(f func(float64) float64, lo, hi, tol float64) (x float64, converged bool) {
	flo := f(lo)
	fhi := f(hi)
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return 0.5 * (lo + hi), false
	}

	for iter := 0; iter < MaxIterations; iter++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if fmid == 0 || 0.5*(hi-lo) < tol {
			return mid, true
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), false
}
