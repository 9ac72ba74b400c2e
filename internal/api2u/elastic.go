package api2u

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/numeric"
)

// Mode search bounds for general instability under external pressure
const (
	GeneralModeMin = 2.0
	GeneralModeMax = 50.0
)

// PressureLoading selects the end-cap term of the general instability
// pressure expression.
type PressureLoading string

const (
	Hydrostatic PressureLoading = "hydrostatic" // k = 0.5
	Radial      PressureLoading = "radial"      // k = 0
)

func (l PressureLoading) k() float64 {
	if l == Radial {
		return 0
	}
	return 0.5
}

// plateBuckling is π²E / (12(1-ν²)) · (t/Lr)²
func plateBuckling(s Shell, lr float64) float64 {
	return math.Pi * math.Pi * s.E / (12 * (1 - s.Nu*s.Nu)) * math.Pow(s.Thickness/lr, 2)
}

// LocalAxial returns the elastic local buckling stress under axial
// compression (Section 4.2.1).
func LocalAxial(s Shell, lr float64) float64 {
	m := GeometryParameter(s, lr)
	dt := 2 * s.MeanRadius() / s.Thickness

	alpha := 9 / math.Pow(300+dt, 0.4)
	c := math.Sqrt(1 + 150/dt*alpha*alpha*math.Pow(m, 4))
	return c * plateBuckling(s, lr)
}

// LocalMode is the solution of the local external pressure mode search
type LocalMode struct {
	Stress    float64 // Fθel
	Waves     int     // n, circumferential wave number
	Beta      float64 // β at the integer wave number
	Converged bool
}

// LocalPressure returns the elastic local buckling stress under external
// pressure (Section 4.2.2). The continuous mode parameter is rounded to the
// nearest whole number of circumferential waves before the coefficient is
// evaluated.
func LocalPressure(s Shell, lr float64) LocalMode {
	m := GeometryParameter(s, lr)
	r := s.MeanRadius()

	z := 12 * math.Pow(m*m*math.Sqrt(1-s.Nu*s.Nu), 2) / math.Pow(math.Pi, 4)
	mode := func(x float64) float64 {
		x2 := x * x
		return x2*math.Pow(1+x2, 4)/(2+3*x2) - z
	}
	beta, ok := numeric.Bisect(mode, 0, 15, 1e-10)

	n := math.Round(beta * math.Pi * r / lr)
	if n < 1 {
		n = 1
	}
	beta = lr / (math.Pi * r / n)

	alpha := 1.0
	if m >= 5 {
		alpha = 0.8
	}
	b2 := 1 + beta*beta
	c := (b2*b2/(0.5+beta*beta) + 0.112*math.Pow(m, 4)/(b2*b2*(0.5+beta*beta))) * alpha

	return LocalMode{
		Stress:    c * plateBuckling(s, lr),
		Waves:     int(n),
		Beta:      beta,
		Converged: ok,
	}
}

// GeneralAxial returns the elastic general instability stress under axial
// compression (Section 4.3.1) for a ring of area ar at spacing lr.
func GeneralAxial(s Shell, ar, lr float64) float64 {
	t := s.Thickness
	ac := ar / (lr * t)
	alphaX := 0.85 / (1 + 0.0025*(2*s.OuterRadius/t))

	var alphaXG float64
	switch {
	case ac >= 0.2:
		alphaXG = 0.72
	case ac > 0.06:
		alphaXG = (3.6-0.5*alphaX)*ac + alphaX
	default:
		alphaXG = alphaX
	}
	return alphaXG * 0.605 * s.E * t / s.MeanRadius() * math.Sqrt(1+ac)
}

// GeneralMode is the solution of the general external pressure mode search
type GeneralMode struct {
	Stress     float64 // Fθeg
	Pressure   float64 // minimum elastic buckling pressure PeG
	Waves      float64 // continuous mode parameter at the minimum
	Iterations int
	Converged  bool
}

// GeneralPressure returns the elastic general instability stress under
// external pressure (Section 4.3.2). lb is the distance between bulkheads
// or deep frames and kthetaG the hoop factor at the ring.
func GeneralPressure(s Shell, ring EffectiveRing, lr, lb, kthetaG float64, loading PressureLoading) GeneralMode {
	e, t := s.E, s.Thickness
	r, ro := s.MeanRadius(), s.OuterRadius
	lambda := math.Pi * r / lb
	l2 := lambda * lambda
	k := loading.k()
	rc := ring.CentroidRadius

	peg := func(x float64) float64 {
		x2 := x * x
		shell := e * (t / r) * l2 * l2 / ((x2 + k*l2 - 1) * (x2 + l2) * (x2 + l2))
		rings := e * ring.Inertia * (x2 - 1) / (lr * rc * rc * ro)
		return shell + rings
	}

	m := numeric.GoldenSection(peg, GeneralModeMin, GeneralModeMax, 1e-8)
	return GeneralMode{
		Stress:     AlphaThetaG * m.F * ro * kthetaG / t,
		Pressure:   m.F,
		Waves:      m.X,
		Iterations: m.Iterations,
		Converged:  m.Converged,
	}
}
