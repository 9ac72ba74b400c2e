package substructure

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/section"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// BallastState is the solved variable ballast. RequiredMass is the raw
// equilibrium demand; Water holds what the tank can actually take.
type BallastState struct {
	RequiredMass float64     // kg, may be negative or exceed Capacity
	Water        column.Slug // applied variable ballast
	Capacity     float64     // kg
	HeightRatio  float64     // fill height over available tank length

	InsufficientCapacity bool
	ExcessBuoyancy       bool
}

// Balance is the system in static equilibrium
type Balance struct {
	Ballast BallastState

	DisplacedVolume float64 // m³
	CB              float64 // m

	// Floating mass including variable ballast and the effective mooring
	// mass; CG uses the same streams
	Mass float64
	CG   r3.Vec

	// Rigid-body mass and its inertia about CG, mooring excluded
	RigidMass    float64
	RigidInertia section.Inertia

	MooringEffectiveMass float64
	TotalMass            float64 // everything afloat plus the mooring lines
	SolidBallastMass     float64
}

// Balance solves for the variable water ballast that makes the weight of
// the system equal its buoyancy.
func (s *System) Balance() Balance {
	rho := s.Env.WaterDensity
	g := s.Env.G()

	fixed := s.fixedMasses()
	masses := make([]float64, len(fixed))
	for i, p := range fixed {
		masses[i] = p.mass
	}

	moor := s.Loads.Mooring
	mMoor := moor.EffectiveMass(g)

	var b Balance
	b.DisplacedVolume, b.CB = s.displacement()
	b.MooringEffectiveMass = mMoor

	// Direct algebraic solve: geometry and draft are fixed
	required := b.DisplacedVolume*rho - floats.Sum(masses) - mMoor
	bs := BallastState{RequiredMass: required}

	applied := required
	if s.Ballast != nil {
		bs.Capacity = s.Ballast.Capacity()
	}
	switch {
	case required < 0:
		applied = 0
		bs.ExcessBuoyancy = true
	case required > bs.Capacity:
		applied = bs.Capacity
		bs.InsufficientCapacity = true
	}
	if s.Ballast != nil {
		bs.Water = s.Ballast.WaterSlug(applied)
		if l := s.Ballast.Length(); l > 0 {
			bs.HeightRatio = bs.Water.Height / l
		}
	}
	b.Ballast = bs

	streams := append(fixed[:len(fixed):len(fixed)], pointMass{name: "water ballast", mass: bs.Water.Mass, pos: r3.Vec{Z: bs.Water.CG}, inertia: bs.Water.Inertia})

	var moment r3.Vec
	for _, p := range streams {
		b.RigidMass += p.mass
		moment = r3.Add(moment, r3.Scale(p.mass, p.pos))
	}

	// The mooring effective mass hangs at the fairleads
	b.Mass = b.RigidMass + mMoor
	moment = r3.Add(moment, r3.Scale(mMoor, r3.Vec{Z: -moor.FairleadDepth}))
	if b.Mass != 0 {
		b.CG = r3.Scale(1/b.Mass, moment)
	}

	for _, p := range streams {
		d := r3.Sub(p.pos, b.CG)
		b.RigidInertia = b.RigidInertia.Add(p.inertia.Shifted(p.mass, d.X, d.Y, d.Z))
	}

	b.SolidBallastMass = s.Base.SolidMass()
	if a := s.Auxiliary; a != nil {
		b.SolidBallastMass += float64(a.Count) * a.Member.SolidMass()
	}
	b.TotalMass = b.RigidMass + moor.Mass
	return b
}

// Residual is the buoyancy minus the weight left after ballasting, in kg.
// It is zero unless the ballast was clamped.
func (b Balance) Residual(rho float64) float64 {
	return b.DisplacedVolume*rho - b.Mass
}

// Equilibrium reports whether the applied ballast balances the system to
// within tol kilograms.
func (b Balance) Equilibrium(rho, tol float64) bool {
	return math.Abs(b.Residual(rho)) <= tol
}
