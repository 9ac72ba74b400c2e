// Package api2u implements the stiffened-shell formulas of API Bulletin 2U
// (Stability Design of Cylindrical Shells) used by the column checker.
// All functions are unit-consistent; callers work in SI.
package api2u

import "math"

// API Bulletin 2U constants

const (
	// Factors of safety (Section 3.2)
	FOSExtreme = 1.25 // Extreme / reduced-load condition
	FOSNormal  = 1.65 // Normal operating condition

	// Plasticity reduction applies above this fraction of yield (Section 5)
	ElasticLimitRatio = 2.0 / 3.0

	// Ring compactness (Section 7)
	FlangeCompactCoeff = 0.375

	// Imperfection factor for general instability under external pressure
	AlphaThetaG = 0.8
)

// LoadCondition selects the baseline factor of safety
type LoadCondition string

const (
	Normal  LoadCondition = "normal"
	Extreme LoadCondition = "extreme"
)

// FactorOfSafety returns the baseline factor of safety for a load condition.
// Anything other than Normal is treated as the reduced-load case.
func FactorOfSafety(c LoadCondition) float64 {
	if c == Normal {
		return FOSNormal
	}
	return FOSExtreme
}

// PlasticityReduction converts an elastic buckling stress into its
// inelastic counterpart (Section 5, Eq. 5.1).
func PlasticityReduction(fe, fy float64) float64 {
	if fe <= ElasticLimitRatio*fy {
		return fe
	}
	// Fi = Fe (Fy/Fe) (1 + 3.75 (Fy/Fe)²)^-0.25
	r := fy / fe
	return fe * r * math.Pow(1+3.75*r*r, -0.25)
}

// Psi is the safety factor multiplier for the critical stress level.
// It ramps from 1.2 for Fc <= 0.5 Fy down to 1.0 for Fc >= Fy.
func Psi(fc, fy float64) float64 {
	ratio := fc / fy
	switch {
	case ratio <= 0.5:
		return 1.2
	case ratio >= 1:
		return 1.0
	}
	return 1.4 - 0.4*ratio
}

// Allowable divides a critical stress by FOS × Psi (Section 3.2).
func Allowable(fc, fy float64, c LoadCondition) float64 {
	return fc / (FactorOfSafety(c) * Psi(fc, fy))
}

// FlangeCompactness is (b/2t) of the flange over 0.375√(E/Fy); <= 1 is compact.
func FlangeCompactness(flangeWidth, flangeThickness, e, fy float64) float64 {
	return (0.5 * flangeWidth / flangeThickness) / (FlangeCompactCoeff * math.Sqrt(e/fy))
}

// WebCompactness is (h/t) of the web over √(E/Fy); <= 1 is compact.
func WebCompactness(webHeight, webThickness, e, fy float64) float64 {
	return (webHeight / webThickness) / math.Sqrt(e/fy)
}
