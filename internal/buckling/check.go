// Package buckling runs the API Bulletin 2U stiffened-shell checks on every
// section of a column. Each section is checked independently with no state
// shared between sections or calls.
package buckling

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/api2u"
	"github.com/alexiusacademia/gospar/internal/column"
)

// Status tells whether a unity value could be computed
type Status string

const (
	StatusOK        Status = "ok"
	StatusUndefined Status = "undefined" // interaction equation had no positive root
)

// Unity is one applied/allowable ratio. Value is NaN when Status is
// StatusUndefined and is never clamped.
type Unity struct {
	Value  float64
	Status Status
}

// Passes reports whether the check is defined and at most 1.0
func (u Unity) Passes() bool {
	return u.Status == StatusOK && u.Value <= 1
}

// Stress is an elastic buckling stress and its plasticity-reduced value
type Stress struct {
	Elastic   float64 // Pa
	Inelastic float64 // Pa
}

func reduced(fe, fy float64) Stress {
	return Stress{Elastic: fe, Inelastic: api2u.PlasticityReduction(fe, fy)}
}

// Options control the checks
type Options struct {
	Condition api2u.LoadCondition
	Loading   api2u.PressureLoading
}

// SectionResult holds every intermediate and final value of one section
type SectionResult struct {
	Index     int
	Elevation float64 // m, section midpoint

	WebCompactness    float64
	FlangeCompactness float64

	AxialForce  float64 // N, stack weight above the section
	AxialStress float64 // Pa, negative in compression
	Pressure    float64 // Pa, external
	HoopStress  float64 // Pa, shell hoop stress midway between rings

	Ring api2u.EffectiveRing
	Hoop api2u.HoopFactors

	LocalAxial      Stress
	LocalPressure   Stress
	GeneralAxial    Stress
	GeneralPressure Stress

	LocalWaves       int     // circumferential waves, local mode
	GeneralWaves     float64 // continuous mode parameter, general mode
	GeneralConverged bool    // general mode search finished within its cap
	LocalConverged   bool

	LocalCritical   api2u.Critical
	GeneralCritical api2u.Critical

	AxialLocal      Unity
	AxialGeneral    Unity
	ExternalLocal   Unity
	ExternalGeneral Unity
}

// UnityNames labels the checks in the order returned by Unities
var UnityNames = [4]string{"axial-local", "axial-general", "external-local", "external-general"}

// Unities returns the four unity checks in a fixed order: axial-local,
// axial-general, external-local, external-general
func (r SectionResult) Unities() [4]Unity {
	return [4]Unity{r.AxialLocal, r.AxialGeneral, r.ExternalLocal, r.ExternalGeneral}
}

// Passes reports whether all four checks pass
func (r SectionResult) Passes() bool {
	for _, u := range r.Unities() {
		if !u.Passes() {
			return false
		}
	}
	return true
}

// CheckSection checks one section for an axial compressive force and an
// external pressure.
func CheckSection(sec column.Section, mat column.Material, axialForce, pressure float64, opts Options) SectionResult {
	shell := api2u.Shell{
		OuterRadius: sec.OuterRadius(),
		Thickness:   sec.Thickness(),
		E:           mat.E,
		Nu:          mat.Nu,
		Fy:          mat.YieldStress,
	}
	ring := api2u.Ring{
		WebHeight:       sec.Stiffener.WebHeight,
		WebThickness:    sec.Stiffener.WebThickness,
		FlangeWidth:     sec.Stiffener.FlangeWidth,
		FlangeThickness: sec.Stiffener.FlangeThickness,
		Spacing:         sec.Spacing,
	}
	fy := mat.YieldStress
	ro, t, r := shell.OuterRadius, shell.Thickness, shell.MeanRadius()

	res := SectionResult{
		Index:             sec.Index,
		Elevation:         sec.Midpoint(),
		WebCompactness:    api2u.WebCompactness(ring.WebHeight, ring.WebThickness, mat.E, fy),
		FlangeCompactness: api2u.FlangeCompactness(ring.FlangeWidth, ring.FlangeThickness, mat.E, fy),
		AxialForce:        axialForce,
		AxialStress:       -axialForce / (2 * math.Pi * r * t),
		Pressure:          math.Max(pressure, 0),
	}

	tbeam := sec.Stiffener.CalculateProperties()
	res.Ring = api2u.NewEffectiveRing(shell, ring, tbeam.Ixx, tbeam.Centroid)
	res.Hoop = api2u.NewHoopFactors(shell, ring, res.Pressure, res.AxialStress)
	res.HoopStress = res.Hoop.Local * res.Pressure * ro / t

	// Elastic and inelastic critical stresses
	res.LocalAxial = reduced(api2u.LocalAxial(shell, ring.Spacing), fy)

	local := api2u.LocalPressure(shell, ring.Spacing)
	res.LocalPressure = reduced(local.Stress, fy)
	res.LocalWaves = local.Waves
	res.LocalConverged = local.Converged

	res.GeneralAxial = reduced(api2u.GeneralAxial(shell, ring.Area(), ring.Spacing), fy)

	general := api2u.GeneralPressure(shell, res.Ring, ring.Spacing, sec.BayLength, res.Hoop.General, opts.Loading)
	res.GeneralPressure = reduced(general.Stress, fy)
	res.GeneralWaves = general.Waves
	res.GeneralConverged = general.Converged

	// Combined-load interaction
	hasPressure := res.Pressure > 0
	var ratioL, ratioG float64
	if hasPressure {
		ratioL = api2u.LoadRatio(axialForce, res.Pressure, shell, res.Hoop.Local)
		ratioG = api2u.LoadRatio(axialForce, res.Pressure, shell, res.Hoop.General)
	}
	res.LocalCritical = api2u.Interaction(res.LocalAxial.Inelastic, res.LocalPressure.Inelastic, fy, ratioL, hasPressure)
	res.GeneralCritical = api2u.Interaction(res.GeneralAxial.Inelastic, res.GeneralPressure.Inelastic, fy, ratioG, hasPressure)

	res.AxialLocal = unity(res.AxialStress, res.LocalCritical, res.LocalCritical.Axial, fy, opts.Condition)
	res.AxialGeneral = unity(res.AxialStress, res.GeneralCritical, res.GeneralCritical.Axial, fy, opts.Condition)
	res.ExternalLocal = unity(res.HoopStress, res.LocalCritical, res.LocalCritical.Hoop, fy, opts.Condition)
	res.ExternalGeneral = unity(res.HoopStress, res.GeneralCritical, res.GeneralCritical.Hoop, fy, opts.Condition)

	return res
}

// unity divides an applied stress by the allowable stress derived from a
// critical stress
func unity(applied float64, crit api2u.Critical, critical, fy float64, cond api2u.LoadCondition) Unity {
	if !crit.Defined {
		return Unity{Value: math.NaN(), Status: StatusUndefined}
	}
	if applied == 0 {
		return Unity{Value: 0, Status: StatusOK}
	}
	allowable := api2u.Allowable(critical, fy, cond)
	return Unity{Value: math.Abs(applied) / allowable, Status: StatusOK}
}
