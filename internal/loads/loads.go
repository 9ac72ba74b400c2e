// Package loads defines the site environment and the externally supplied
// turbine and mooring loads acting on a floating platform.
package loads

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gospar/internal/numeric"
	"gonum.org/v1/gonum/mat"
)

// StandardGravity is used when an Environment leaves Gravity unset
const StandardGravity = 9.80665

// SymmetryTolerance is the absolute or relative mismatch allowed between
// K[i][j] and K[j][i] of the mooring stiffness
const SymmetryTolerance = 1e-6

// Environment describes the site
type Environment struct {
	WaterDepth   float64 `mapstructure:"water_depth" yaml:"water_depth"`     // m
	WaterDensity float64 `mapstructure:"water_density" yaml:"water_density"` // kg/m³
	AirDensity   float64 `mapstructure:"air_density" yaml:"air_density"`     // kg/m³

	SignificantWaveHeight float64 `mapstructure:"wave_height" yaml:"wave_height"` // m
	SignificantWavePeriod float64 `mapstructure:"wave_period" yaml:"wave_period"` // s

	WindReferenceSpeed  float64 `mapstructure:"wind_reference_speed" yaml:"wind_reference_speed"`   // m/s
	WindReferenceHeight float64 `mapstructure:"wind_reference_height" yaml:"wind_reference_height"` // m
	ShearExponent       float64 `mapstructure:"shear_exponent" yaml:"shear_exponent"`

	Gravity float64 `mapstructure:"gravity" yaml:"gravity"` // m/s²
}

// G returns the gravitational acceleration
func (e Environment) G() float64 {
	if e.Gravity <= 0 {
		return StandardGravity
	}
	return e.Gravity
}

// Validate checks the environment
func (e Environment) Validate() error {
	if e.WaterDepth <= 0 {
		return fmt.Errorf("water depth must be positive")
	}
	if e.WaterDensity <= 0 {
		return fmt.Errorf("water density must be positive")
	}
	if e.SignificantWaveHeight < 0 || e.SignificantWavePeriod < 0 {
		return fmt.Errorf("wave height and period cannot be negative")
	}
	return nil
}

// WaveNumber returns the wavenumber of the significant wave, zero for
// still water.
func (e Environment) WaveNumber() (k float64, converged bool) {
	if e.SignificantWaveHeight == 0 || e.SignificantWavePeriod == 0 {
		return 0, true
	}
	return numeric.WaveNumber(e.SignificantWavePeriod, e.WaterDepth, e.G())
}

// DynamicHead is the linear-wave pressure head at elevation z (negative
// below the still waterline). It is zero without waves.
func (e Environment) DynamicHead(z float64) float64 {
	k, _ := e.WaveNumber()
	if k == 0 {
		return 0
	}
	d := e.WaterDepth
	depth := math.Min(math.Max(-z, 0), d)
	return 0.5 * e.SignificantWaveHeight * math.Cosh(k*(d-depth)) / math.Cosh(k*d)
}

// Pressure is the external pressure at elevation z: hydrostatic plus the
// dynamic wave head. Points above the waterline see none.
func (e Environment) Pressure(z float64) float64 {
	if z >= 0 {
		return 0
	}
	rhoG := e.WaterDensity * e.G()
	return rhoG*(-z) + rhoG*e.DynamicHead(z)
}

// WindSpeedAt evaluates the power-law wind profile at height z
func (e Environment) WindSpeedAt(z float64) float64 {
	if e.WindReferenceHeight <= 0 || z <= 0 {
		return 0
	}
	return e.WindReferenceSpeed * math.Pow(z/e.WindReferenceHeight, e.ShearExponent)
}

// Turbine carries the tower and rotor-nacelle assembly (RNA) data.
// Elevations are measured above the column top.
type Turbine struct {
	TowerMass   float64 `mapstructure:"tower_mass" yaml:"tower_mass"`     // kg
	TowerCG     float64 `mapstructure:"tower_cg" yaml:"tower_cg"`         // m
	RNAMass     float64 `mapstructure:"rna_mass" yaml:"rna_mass"`         // kg
	RNACG       float64 `mapstructure:"rna_cg" yaml:"rna_cg"`             // m
	RNAOffset   float64 `mapstructure:"rna_offset" yaml:"rna_offset"`     // m, downwind x offset of RNA CG
	RNAInertia  float64 `mapstructure:"rna_inertia" yaml:"rna_inertia"`   // kg·m², about its own CG
	TowerForce  float64 `mapstructure:"tower_force" yaml:"tower_force"`   // N, wind force at tower CG
	RNAForce    float64 `mapstructure:"rna_force" yaml:"rna_force"`       // N, rotor thrust at RNA CG
	PitchMoment float64 `mapstructure:"pitch_moment" yaml:"pitch_moment"` // N·m, pure moment from the rotor
}

// Mass returns tower plus RNA mass
func (t Turbine) Mass() float64 {
	return t.TowerMass + t.RNAMass
}

// PointLoad is a horizontal force applied at an elevation
type PointLoad struct {
	Force     float64 `mapstructure:"force" yaml:"force"`         // N
	Elevation float64 `mapstructure:"elevation" yaml:"elevation"` // m, absolute
}

// Mooring is the output of the mooring solver at the mean position
type Mooring struct {
	VerticalLoad float64 `mapstructure:"vertical_load" yaml:"vertical_load"` // N, downward pretension
	Mass         float64 `mapstructure:"mass" yaml:"mass"`                   // kg, line mass
	Cost         float64 `mapstructure:"cost" yaml:"cost"`                   // $

	SurgeRestoring float64 `mapstructure:"surge_restoring" yaml:"surge_restoring"` // N, horizontal capacity

	// Per-line force vectors (Fx, Fy, Fz) in N when the platform is pitched
	PitchForces [][3]float64 `mapstructure:"pitch_forces" yaml:"pitch_forces"`

	// Row-major 6×6 stiffness at the mean position, may be empty
	Stiffness []float64 `mapstructure:"stiffness" yaml:"stiffness"`

	FairleadDepth  float64 `mapstructure:"fairlead_depth" yaml:"fairlead_depth"`   // m below waterline
	FairleadOffset float64 `mapstructure:"fairlead_offset" yaml:"fairlead_offset"` // m beyond the shell
}

// EffectiveMass converts the vertical pretension into an equivalent mass
func (m Mooring) EffectiveMass(g float64) float64 {
	return m.VerticalLoad / g
}

// StiffnessMatrix returns the 6×6 mooring stiffness, zero if unset
func (m Mooring) StiffnessMatrix() (*mat.Dense, error) {
	if len(m.Stiffness) == 0 {
		return mat.NewDense(6, 6, nil), nil
	}
	if len(m.Stiffness) != 36 {
		return nil, fmt.Errorf("mooring stiffness needs 36 entries, got %d", len(m.Stiffness))
	}
	data := make([]float64, 36)
	copy(data, m.Stiffness)
	return mat.NewDense(6, 6, data), nil
}

// Loads gathers everything applied to the platform from outside
type Loads struct {
	Turbine    Turbine     `mapstructure:"turbine" yaml:"turbine"`
	Mooring    Mooring     `mapstructure:"mooring" yaml:"mooring"`
	PointLoads []PointLoad `mapstructure:"point_loads" yaml:"point_loads"`

	MaxHeel     float64 `mapstructure:"max_heel" yaml:"max_heel"`         // deg, 0 = unchecked
	PontoonCost float64 `mapstructure:"pontoon_cost" yaml:"pontoon_cost"` // $
}

// Validate checks the supplied loads
func (l Loads) Validate() error {
	t := l.Turbine
	if t.TowerMass < 0 || t.RNAMass < 0 {
		return fmt.Errorf("turbine masses cannot be negative")
	}
	if l.Mooring.Mass < 0 {
		return fmt.Errorf("mooring mass cannot be negative")
	}
	k, err := l.Mooring.StiffnessMatrix()
	if err != nil {
		return err
	}
	if !mat.EqualApprox(k, k.T(), SymmetryTolerance) {
		return fmt.Errorf("mooring stiffness must be symmetric")
	}
	return nil
}
