package substructure

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stability is the hydrostatic stability of the balanced system
type Stability struct {
	WaterplaneArea    float64 // m²
	WaterplaneInertia float64 // m⁴, about the roll/pitch axis

	StaticStability   float64 // m, zCB - zCG
	MetacentricHeight float64 // m, may be negative

	MooringMoment     float64 // N·m
	RestoringMoment   float64 // N·m per rad
	OverturningMoment float64 // N·m
	HeelAngle         float64 // deg
	HeelMargin        float64 // deg, allowed minus actual
	HorizontalForce   float64 // N
	OffsetForceRatio  float64

	Unstable       bool // GM <= 0
	MaxHeelChecked bool
}

// waterplane returns the system waterplane area and its second moment
// about the y axis through the platform center.
func (s *System) waterplane() (area, inertia float64) {
	area = s.Base.Hydro.WaterplaneArea
	inertia = s.Base.Hydro.WaterplaneInertia
	a := s.Auxiliary
	for _, at := range a.positions() {
		area += a.Member.Hydro.WaterplaneArea
		inertia += a.Member.Hydro.WaterplaneInertia + a.Member.Hydro.WaterplaneArea*at.X*at.X
	}
	return area, inertia
}

// mooringLines counts the leading line forces with a vertical component.
// Rows after the first zero entry are padding.
func mooringLines(forces [][3]float64) int {
	for k, f := range forces {
		if f[2] == 0 {
			return k
		}
	}
	return len(forces)
}

// mooringMoment sums the pitch moment of the mooring line forces about the
// system CG. Lines are evenly spaced starting on +x.
func (s *System) mooringMoment(cg r3.Vec) float64 {
	forces := s.Loads.Mooring.PitchForces
	n := mooringLines(forces)
	zFair := -s.Loads.Mooring.FairleadDepth

	var m float64
	for k, f := range forces[:n] {
		phi := 2 * math.Pi * float64(k) / float64(n)
		r := r3.Vec{
			X: s.FairleadRadius * math.Cos(phi),
			Y: s.FairleadRadius * math.Sin(phi),
			Z: zFair - cg.Z,
		}
		m += r3.Cross(r, r3.Vec{X: f[0], Y: f[1], Z: f[2]}).Y
	}
	return m
}

// overturning returns the overturning moment about the CG and the total
// horizontal force.
func (s *System) overturning(cg r3.Vec) (moment, force float64) {
	t := s.Loads.Turbine
	g := s.Env.G()

	apply := func(f, z float64) {
		force += f
		moment += f * (z - cg.Z)
	}
	apply(t.TowerForce, s.Base.Top+t.TowerCG)
	apply(t.RNAForce, s.Base.Top+t.RNACG)
	for _, p := range s.Loads.PointLoads {
		apply(p.Force, p.Elevation)
	}
	moment += t.PitchMoment
	moment -= t.RNAMass * g * t.RNAOffset
	return moment, force
}

// Stability evaluates the balanced system for static stability, heel under
// the applied loads and mooring offset capacity.
func (s *System) Stability(b Balance) Stability {
	rho := s.Env.WaterDensity
	g := s.Env.G()

	var st Stability
	st.WaterplaneArea, st.WaterplaneInertia = s.waterplane()
	st.StaticStability = b.CB - b.CG.Z
	if b.DisplacedVolume > 0 {
		st.MetacentricHeight = st.WaterplaneInertia/b.DisplacedVolume + st.StaticStability
	}
	st.Unstable = st.MetacentricHeight <= 0

	st.MooringMoment = s.mooringMoment(b.CG)
	st.RestoringMoment = st.MetacentricHeight*rho*g*b.DisplacedVolume + st.MooringMoment

	st.OverturningMoment, st.HorizontalForce = s.overturning(b.CG)
	switch {
	case st.OverturningMoment == 0:
		st.HeelAngle = 0
	case st.RestoringMoment == 0:
		st.HeelAngle = math.Inf(1)
	default:
		st.HeelAngle = math.Abs(st.OverturningMoment/st.RestoringMoment) * 180 / math.Pi
	}
	if s.Loads.MaxHeel > 0 {
		st.MaxHeelChecked = true
		st.HeelMargin = s.Loads.MaxHeel - st.HeelAngle
	}

	capacity := s.Loads.Mooring.SurgeRestoring
	f := math.Abs(st.HorizontalForce)
	switch {
	case capacity != 0:
		st.OffsetForceRatio = f / capacity
	case f != 0:
		st.OffsetForceRatio = math.Inf(1)
	}
	return st
}
