package numeric

import "math"

// WaveNumber solves the linear finite-depth dispersion relation
// ω² = g·k·tanh(k·h) for the wavenumber k (rad/m) of a wave with period T
// in water of depth h. Zero is returned for a zero or negative period.
func WaveNumber(period, depth, gravity float64) (k float64, converged bool) {
	if period <= 0 || depth <= 0 || gravity <= 0 {
		return 0, true
	}
	omega := 2 * math.Pi / period
	w2 := omega * omega

	// Deep-water value bounds the solution from below, shallow-water from above
	kDeep := w2 / gravity
	kShallow := omega / math.Sqrt(gravity*depth)
	lo := 0.5 * kDeep
	hi := 2 * math.Max(kDeep, kShallow)

	disp := func(k float64) float64 {
		return gravity*k*math.Tanh(k*depth) - w2
	}
	return Bisect(disp, lo, hi, 1e-12*hi)
}
