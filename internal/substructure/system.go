// Package substructure combines the columns of a floating platform with
// the turbine and mooring loads: ballast balance, hydrostatic stability,
// and rigid-body natural periods.
package substructure

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
	"github.com/alexiusacademia/gospar/internal/section"
	"gonum.org/v1/gonum/spatial/r3"
)

// Member is what the system solve needs from one column. Elevations are
// absolute; the column axis passes through the member's horizontal
// position.
type Member struct {
	StructuralMass    float64         // kg, structure plus outfitting
	StructuralCG      float64         // m
	StructuralInertia section.Inertia // about StructuralCG

	Solid []column.Slug // permanent and fixed ballast

	Hydro     column.Hydrostatics
	AddedMass [6]float64 // about the member's own CB
	Top       float64    // m, elevation of the top node
	MaxRadius float64    // m, largest outer radius
}

// NewMember collects the properties of a built column
func NewMember(c *column.Column, mb column.MassBreakdown, rhoWater float64) Member {
	hs := c.Hydrostatics()
	var rmax float64
	for _, r := range c.Radius {
		rmax = math.Max(rmax, r)
	}
	outfit := 1.0
	if mb.Structural > 0 {
		outfit = mb.Total() / mb.Structural
	}
	return Member{
		StructuralMass:    mb.Total(),
		StructuralCG:      mb.CG,
		StructuralInertia: mb.Inertia.Scale(outfit),
		Solid:             []column.Slug{c.PermanentBallast(), c.FixedBallast()},
		Hydro:             hs,
		AddedMass:         c.AddedMass(rhoWater, hs),
		Top:               c.Top(),
		MaxRadius:         rmax,
	}
}

// SolidMass returns the solid ballast mass of the member
func (m Member) SolidMass() float64 {
	var s float64
	for _, b := range m.Solid {
		s += b.Mass
	}
	return s
}

// Auxiliary is a set of identical columns evenly spaced on a circle
// around the base column.
type Auxiliary struct {
	Member Member
	Count  int
	Radius float64 // m, platform center to column axis
}

// positions returns the horizontal positions of the auxiliary columns.
// The first column sits on the +x axis.
func (a *Auxiliary) positions() []r3.Vec {
	if a == nil || a.Count <= 0 {
		return nil
	}
	pos := make([]r3.Vec, a.Count)
	for k := range pos {
		theta := 2 * math.Pi * float64(k) / float64(a.Count)
		pos[k] = r3.Vec{X: a.Radius * math.Cos(theta), Y: a.Radius * math.Sin(theta)}
	}
	return pos
}

// System is a complete floating platform at its mean position. Variable
// water ballast fills the base column only.
type System struct {
	Base      Member
	Auxiliary *Auxiliary
	Ballast   *column.BallastTable

	Env   loads.Environment
	Loads loads.Loads

	// Radius from the platform axis to the fairleads
	FairleadRadius float64
}

// pointMass is one mass stream of the system
type pointMass struct {
	name    string
	mass    float64
	pos     r3.Vec
	inertia section.Inertia // about its own CG
}

// fixedMasses lists every mass stream except the variable ballast
func (s *System) fixedMasses() []pointMass {
	var pm []pointMass
	add := func(name string, m Member, at r3.Vec) {
		pm = append(pm, pointMass{name, m.StructuralMass, r3.Vec{X: at.X, Y: at.Y, Z: m.StructuralCG}, m.StructuralInertia})
		for _, b := range m.Solid {
			pm = append(pm, pointMass{name + " ballast", b.Mass, r3.Vec{X: at.X, Y: at.Y, Z: b.CG}, b.Inertia})
		}
	}

	add("base", s.Base, r3.Vec{})
	for _, at := range s.Auxiliary.positions() {
		add("auxiliary", s.Auxiliary.Member, at)
	}

	t := s.Loads.Turbine
	pm = append(pm,
		pointMass{name: "tower", mass: t.TowerMass, pos: r3.Vec{Z: s.Base.Top + t.TowerCG}},
		pointMass{name: "rna", mass: t.RNAMass, pos: r3.Vec{X: t.RNAOffset, Z: s.Base.Top + t.RNACG},
			inertia: section.Inertia{Ixx: t.RNAInertia, Iyy: t.RNAInertia, Izz: t.RNAInertia}},
	)
	return pm
}

// displacement returns the total displaced volume and center of buoyancy
func (s *System) displacement() (v, cb float64) {
	v = s.Base.Hydro.DisplacedVolume
	moment := v * s.Base.Hydro.CB
	if a := s.Auxiliary; a != nil && a.Count > 0 {
		n := float64(a.Count)
		v += n * a.Member.Hydro.DisplacedVolume
		moment += n * a.Member.Hydro.DisplacedVolume * a.Member.Hydro.CB
	}
	if v > 0 {
		cb = moment / v
	}
	return v, cb
}

// BaseAuxiliarySpacing is (Rbase + Raux) / spacing radius; values at or
// above 1 mean the columns overlap. Zero without auxiliary columns.
func (s *System) BaseAuxiliarySpacing() float64 {
	a := s.Auxiliary
	if a == nil || a.Count == 0 || a.Radius <= 0 {
		return 0
	}
	return (s.Base.MaxRadius + a.Member.MaxRadius) / a.Radius
}

// Solution is the balanced system with its stability and periods
type Solution struct {
	Balance   Balance
	Stability Stability
	Periods   Periods
}

// Solve balances the system and evaluates stability and natural periods
func (s *System) Solve() (Solution, error) {
	var sol Solution
	sol.Balance = s.Balance()
	sol.Stability = s.Stability(sol.Balance)
	p, err := s.Periods(sol.Balance, sol.Stability)
	if err != nil {
		return sol, err
	}
	sol.Periods = p
	return sol, nil
}
