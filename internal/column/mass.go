package column

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/section"
)

// MassBreakdown holds the structural mass of a column. Per-component
// arrays are before the column factor is applied.
type MassBreakdown struct {
	Shell     []float64 // kg, per section
	Bulkhead  []float64 // kg, per node
	Stiffener []float64 // kg, per section

	// Lumped structural mass per section (column factor applied), the
	// bulkhead at the top node is carried by the last section
	Section []float64 // kg

	Structural float64 // kg, column factor × Σ(shell + bulkhead + stiffener)
	Outfitting float64 // kg, outfitting fraction × structural
	CG         float64 // m, shared by structural and outfitting mass

	// Structural inertia about CG, outfitting excluded
	Inertia section.Inertia
}

// Total returns structural plus outfitting mass
func (m MassBreakdown) Total() float64 {
	return m.Structural + m.Outfitting
}

// ShellMass returns the mass of section s before the column factor.
// Radii are measured to the wall mid-fiber.
func (c *Column) ShellMass(s Section) float64 {
	rb := s.RadiusBot - 0.5*s.ThicknessBot
	rt := s.RadiusTop - 0.5*s.ThicknessTop
	vol := section.FrustumShellVolume(rb, rt, s.ThicknessBot, s.ThicknessTop, s.Height)
	return c.Material.Density * c.MassFactors.Shell * vol
}

// BulkheadMass returns the mass of the bulkhead plate at node i, zero if
// there is none.
func (c *Column) BulkheadMass(i int) float64 {
	t := c.Bulkhead[i]
	if t <= 0 {
		return 0
	}
	ri := c.Radius[i] - c.Thickness[i]
	return math.Pi * c.Material.Density * c.MassFactors.Bulkhead * ri * ri * t
}

// ringRadii returns web outer, web inner, and flange inner radii of the
// stiffeners in section s
func ringRadii(s Section) (rwo, rwi, rfi float64) {
	rwo = s.OuterRadius() - s.Thickness()
	rwi = rwo - s.Stiffener.WebHeight
	rfi = rwi - s.Stiffener.FlangeThickness
	return rwo, rwi, rfi
}

// StiffenerMass returns the mass of all rings in section s before the
// column factor. Rings are smeared along the section at their spacing.
func (c *Column) StiffenerMass(s Section) float64 {
	rwo, rwi, rfi := ringRadii(s)
	web := math.Pi * (rwo*rwo - rwi*rwi) * s.Stiffener.WebThickness
	flange := math.Pi * (rwi*rwi - rfi*rfi) * s.Stiffener.FlangeWidth
	return c.MassFactors.Ring * c.Material.Density * (web + flange) * s.Height / s.Spacing
}

// Mass aggregates shell, bulkhead, and stiffener masses and their center
// of gravity.
func (c *Column) Mass() MassBreakdown {
	nSec := len(c.Sections)
	mb := MassBreakdown{
		Shell:     make([]float64, nSec),
		Bulkhead:  make([]float64, len(c.Z)),
		Stiffener: make([]float64, nSec),
		Section:   make([]float64, nSec),
	}
	f := c.MassFactors.Column

	var sum, moment float64
	for i := range c.Z {
		mb.Bulkhead[i] = c.BulkheadMass(i)
		sum += mb.Bulkhead[i]
		moment += mb.Bulkhead[i] * c.Z[i]
	}
	for i, s := range c.Sections {
		mb.Shell[i] = c.ShellMass(s)
		mb.Stiffener[i] = c.StiffenerMass(s)
		m := mb.Shell[i] + mb.Stiffener[i]
		sum += m
		moment += m * s.Midpoint()

		mb.Section[i] = f * (m + mb.Bulkhead[i])
	}
	mb.Section[nSec-1] += f * mb.Bulkhead[nSec]

	mb.Structural = f * sum
	mb.Outfitting = c.MassFactors.OutfittingFraction * mb.Structural
	if sum > 0 {
		mb.CG = moment / sum
	}

	var in section.Inertia
	for i, m := range mb.Bulkhead {
		if m == 0 {
			continue
		}
		ri := c.Radius[i] - c.Thickness[i]
		in = in.Add(section.DiskInertia(m, ri).Shifted(m, 0, 0, c.Z[i]-mb.CG))
	}
	for i, s := range c.Sections {
		dz := s.Midpoint() - mb.CG
		ro := s.OuterRadius()
		shell := section.TubeInertia(mb.Shell[i], ro-s.Thickness(), ro, s.Height)
		in = in.Add(shell.Shifted(mb.Shell[i], 0, 0, dz))

		rwo, _, rfi := ringRadii(s)
		rings := section.TubeInertia(mb.Stiffener[i], rfi, rwo, s.Height)
		in = in.Add(rings.Shifted(mb.Stiffener[i], 0, 0, dz))
	}
	mb.Inertia = in.Scale(f)

	return mb
}
