package column

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/section"
)

// Section is one axial segment of the discretized column, bottom to top.
// Radii are to the outer surface.
type Section struct {
	Index  int     // position in the fine grid
	Coarse int     // index of the coarse section it came from
	ZBot   float64 // m
	ZTop   float64 // m
	Height float64 // m

	RadiusBot    float64 // m
	RadiusTop    float64 // m
	ThicknessBot float64 // m
	ThicknessTop float64 // m

	Stiffener section.TBeam
	Spacing   float64 // m, ring spacing
	BayLength float64 // m, coarse section height used for general instability
}

// Midpoint returns the elevation of the section midpoint
func (s Section) Midpoint() float64 {
	return 0.5 * (s.ZBot + s.ZTop)
}

// OuterRadius returns the mean outer radius of the section
func (s Section) OuterRadius() float64 {
	return 0.5 * (s.RadiusBot + s.RadiusTop)
}

// Thickness returns the mean wall thickness of the section
func (s Section) Thickness() float64 {
	return 0.5 * (s.ThicknessBot + s.ThicknessTop)
}

// Column is the fine-grid description of a column built from a Config.
type Column struct {
	Sections []Section

	// Nodal values, len(Sections)+1
	Z         []float64 // m, z[0] = -draft, top = freeboard
	Radius    []float64 // m, outer
	Thickness []float64 // m
	Bulkhead  []float64 // m, bulkhead plate thickness, 0 = none

	Freeboard float64
	Draft     float64

	Material    Material
	MassFactors MassFactors
	Ballast     Ballast
	Costs       CostRates
}

// Layout summarizes the vertical arrangement of a column at a site
type Layout struct {
	Draft              float64 // m
	Freeboard          float64 // m
	DraftDepthRatio    float64 // draft / water depth
	FairleadDraftRatio float64 // fairlead depth / draft
}

// Build validates cfg and discretizes it into a Column. Each coarse
// section is split into cfg.Refinement sub-sections with diameters and
// thicknesses interpolated linearly.
func Build(cfg Config) (*Column, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	refine := cfg.Refinement
	if refine < 1 {
		refine = 1
	}

	n := cfg.NumSections()
	nFine := n * refine
	c := &Column{
		Sections:    make([]Section, 0, nFine),
		Z:           make([]float64, nFine+1),
		Radius:      make([]float64, nFine+1),
		Thickness:   make([]float64, nFine+1),
		Bulkhead:    make([]float64, nFine+1),
		Freeboard:   cfg.Freeboard,
		Draft:       cfg.TotalHeight() - cfg.Freeboard,
		Material:    cfg.Material,
		MassFactors: cfg.MassFactors,
		Ballast:     cfg.Ballast,
		Costs:       cfg.Costs,
	}

	z := -c.Draft
	c.Z[0] = z
	c.Radius[0] = 0.5 * cfg.OuterDiameter[0]
	c.Thickness[0] = cfg.WallThickness[0]
	for i := 0; i < n; i++ {
		h := cfg.SectionHeight[i]
		rb, rt := 0.5*cfg.OuterDiameter[i], 0.5*cfg.OuterDiameter[i+1]
		tb, tt := cfg.WallThickness[i], cfg.WallThickness[i+1]

		for j := 1; j <= refine; j++ {
			k := i*refine + j
			frac := float64(j) / float64(refine)
			c.Z[k] = z + frac*h
			c.Radius[k] = rb + frac*(rt-rb)
			c.Thickness[k] = tb + frac*(tt-tb)
		}
		z += h
	}
	// Pin the top node to the freeboard so round-off never shifts it
	c.Z[nFine] = cfg.Freeboard

	for i, t := range cfg.BulkheadThickness {
		c.Bulkhead[i*refine] = t
	}

	for i := 0; i < n; i++ {
		st := cfg.Stiffeners
		for j := 0; j < refine; j++ {
			k := i*refine + j
			c.Sections = append(c.Sections, Section{
				Index:        k,
				Coarse:       i,
				ZBot:         c.Z[k],
				ZTop:         c.Z[k+1],
				Height:       c.Z[k+1] - c.Z[k],
				RadiusBot:    c.Radius[k],
				RadiusTop:    c.Radius[k+1],
				ThicknessBot: c.Thickness[k],
				ThicknessTop: c.Thickness[k+1],
				Stiffener: section.TBeam{
					WebHeight:       st.WebHeight[i],
					WebThickness:    st.WebThickness[i],
					FlangeWidth:     st.FlangeWidth[i],
					FlangeThickness: st.FlangeThickness[i],
				},
				Spacing:   st.Spacing[i],
				BayLength: cfg.SectionHeight[i],
			})
		}
	}

	return c, nil
}

// Top returns the elevation of the top node
func (c *Column) Top() float64 {
	return c.Z[len(c.Z)-1]
}

// Layout returns draft and freeboard ratios for a site
func (c *Column) Layout(waterDepth, fairleadDepth float64) Layout {
	l := Layout{Draft: c.Draft, Freeboard: c.Freeboard}
	if waterDepth > 0 {
		l.DraftDepthRatio = c.Draft / waterDepth
	}
	l.FairleadDraftRatio = fairleadDepth / c.Draft
	return l
}

// interpNodal linearly interpolates a nodal array at elevation z, holding
// the end values outside the column.
func (c *Column) interpNodal(vals []float64, z float64) float64 {
	n := len(c.Z)
	if z <= c.Z[0] {
		return vals[0]
	}
	if z >= c.Z[n-1] {
		return vals[n-1]
	}
	for i := 0; i < n-1; i++ {
		if z <= c.Z[i+1] {
			frac := (z - c.Z[i]) / (c.Z[i+1] - c.Z[i])
			return vals[i] + frac*(vals[i+1]-vals[i])
		}
	}
	return vals[n-1]
}

// OuterRadiusAt returns the outer radius at elevation z
func (c *Column) OuterRadiusAt(z float64) float64 {
	return c.interpNodal(c.Radius, z)
}

// InnerRadiusAt returns the inner radius at elevation z
func (c *Column) InnerRadiusAt(z float64) float64 {
	return c.interpNodal(c.Radius, z) - c.interpNodal(c.Thickness, z)
}

// Ratios are geometric manufacturability ratios
type Ratios struct {
	Taper                []float64 // per section, smaller over larger diameter
	DiameterThickness    []float64 // per node
	FlangeSpacing        []float64 // per section, 2·bf / spacing
	StiffenerRadius      []float64 // per section, (t + hw + tf) / Ro
	MaxDiameterThickness float64
}

// Ratios computes the geometric constraint ratios of the column
func (c *Column) Ratios() Ratios {
	r := Ratios{
		Taper:             make([]float64, len(c.Sections)),
		DiameterThickness: make([]float64, len(c.Z)),
		FlangeSpacing:     make([]float64, len(c.Sections)),
		StiffenerRadius:   make([]float64, len(c.Sections)),
	}
	for i := range c.Z {
		r.DiameterThickness[i] = 2 * c.Radius[i] / c.Thickness[i]
		r.MaxDiameterThickness = math.Max(r.MaxDiameterThickness, r.DiameterThickness[i])
	}
	for i, s := range c.Sections {
		r.Taper[i] = math.Min(s.RadiusBot, s.RadiusTop) / math.Max(s.RadiusBot, s.RadiusTop)
		r.FlangeSpacing[i] = 2 * s.Stiffener.FlangeWidth / s.Spacing
		r.StiffenerRadius[i] = (s.Thickness() + s.Stiffener.WebHeight + s.Stiffener.FlangeThickness) / s.OuterRadius()
	}
	return r
}
