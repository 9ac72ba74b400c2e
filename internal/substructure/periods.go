package substructure

import "math"

// DOF names the rigid-body degrees of freedom in matrix order
var DOF = [6]string{"surge", "sway", "heave", "roll", "pitch", "yaw"}

// Periods holds the diagonal dynamics of the platform
type Periods struct {
	Mass      [6]float64 // kg and kg·m², about the system CG
	AddedMass [6]float64
	Stiffness [6]float64 // N/m and N·m/rad
	Period    [6]float64 // s, +Inf where stiffness is not positive

	// |T - Twave| / Twave, zero when no wave period is set
	Margin [6]float64
}

// addedMass transfers the added mass of every column to the system CG
func (s *System) addedMass(zcg float64) [6]float64 {
	var a [6]float64
	add := func(m Member, x, y float64) {
		am := m.AddedMass
		dz := m.Hydro.CB - zcg
		a[0] += am[0]
		a[1] += am[1]
		a[2] += am[2]
		a[3] += am[3] + am[1]*dz*dz + am[2]*y*y
		a[4] += am[4] + am[0]*dz*dz + am[2]*x*x
		a[5] += am[5] + am[0]*(x*x+y*y)
	}

	add(s.Base, 0, 0)
	for _, at := range s.Auxiliary.positions() {
		add(s.Auxiliary.Member, at.X, at.Y)
	}
	return a
}

// stiffness returns the hydrostatic plus mooring stiffness diagonal
func (s *System) stiffness(b Balance, st Stability) ([6]float64, error) {
	rho := s.Env.WaterDensity
	g := s.Env.G()

	moor, err := s.Loads.Mooring.StiffnessMatrix()
	if err != nil {
		return [6]float64{}, err
	}

	var k [6]float64
	k[2] = rho * g * st.WaterplaneArea
	k[3] = rho * g * b.DisplacedVolume * st.MetacentricHeight
	k[4] = k[3]
	for i := range k {
		k[i] += moor.At(i, i)
	}
	return k, nil
}

// Periods computes the uncoupled natural periods of the balanced system
func (s *System) Periods(b Balance, st Stability) (Periods, error) {
	var p Periods
	p.Mass = [6]float64{
		b.RigidMass, b.RigidMass, b.RigidMass,
		b.RigidInertia.Ixx, b.RigidInertia.Iyy, b.RigidInertia.Izz,
	}
	p.AddedMass = s.addedMass(b.CG.Z)

	k, err := s.stiffness(b, st)
	if err != nil {
		return p, err
	}
	p.Stiffness = k

	wave := s.Env.SignificantWavePeriod
	for i := range p.Period {
		p.Period[i] = NaturalPeriod(p.Mass[i]+p.AddedMass[i], k[i])
		if wave > 0 {
			p.Margin[i] = math.Abs(p.Period[i]-wave) / wave
		}
	}
	return p, nil
}

// NaturalPeriod returns 2π√(m/k), or +Inf when k is not positive
func NaturalPeriod(m, k float64) float64 {
	if k <= 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(m/k)
}

