package api2u

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/numeric"
)

// Critical is a combined-load critical stress pair (Section 6)
type Critical struct {
	Axial   float64 // Fφc
	Hoop    float64 // Fθc
	Defined bool    // false when the interaction has no positive root
}

// Interaction solves
//
//	(C·x/Fxc)² − c·(C·x/Fxc)·(x/Frc) + (x/Frc)² = 1
//
// for the critical hoop stress x, with c = (Fxc+Frc)/Fy − 1 and C the
// axial-to-hoop load ratio over the hoop factor. Without pressure the
// uncoupled critical stresses are returned.
func Interaction(fxc, frc, fy, ratio float64, hasPressure bool) Critical {
	if !hasPressure {
		return Critical{Axial: fxc, Hoop: frc, Defined: true}
	}

	c := (fxc+frc)/fy - 1
	a := math.Pow(ratio/fxc, 2) - c*ratio/(fxc*frc) + 1/(frc*frc)

	x, ok := numeric.SmallestPositiveRoot(a, 0, -1)
	if !ok {
		return Critical{Axial: math.NaN(), Hoop: math.NaN()}
	}
	return Critical{Axial: ratio * x, Hoop: x, Defined: true}
}

// LoadRatio is C = (Nφ/Nθ) / Kθ with Nφ = W/(2πR) and Nθ = P·Ro.
func LoadRatio(axialForce, p float64, s Shell, ktheta float64) float64 {
	nphi := axialForce / (2 * math.Pi * s.MeanRadius())
	ntheta := p * s.OuterRadius
	return nphi / ntheta / ktheta
}
