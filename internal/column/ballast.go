package column

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/section"
	"gonum.org/v1/gonum/interp"
)

// Slug is a solid cylinder of ballast resting inside the column
type Slug struct {
	Mass    float64 // kg
	Height  float64 // m
	ZBot    float64 // m
	CG      float64 // m
	Radius  float64 // m
	Inertia section.Inertia
}

// Top returns the elevation of the top of the slug
func (s Slug) Top() float64 {
	return s.ZBot + s.Height
}

// baseRadius is the inner radius at the column base
func (c *Column) baseRadius() float64 {
	return c.Radius[0] - c.Thickness[0]
}

func (c *Column) slug(zBot, h, rho float64) Slug {
	r := c.baseRadius()
	m := math.Pi * r * r * h * rho
	return Slug{
		Mass:    m,
		Height:  h,
		ZBot:    zBot,
		CG:      zBot + h/2,
		Radius:  r,
		Inertia: section.CylinderInertia(m, r, h),
	}
}

// PermanentBallast returns the permanent ballast slug. It sits on the
// base plate, one wall thickness above the bottom node.
func (c *Column) PermanentBallast() Slug {
	z0 := c.Z[0] + c.Thickness[0]
	return c.slug(z0, c.Ballast.PermanentHeight, c.Ballast.PermanentDensity)
}

// FixedBallast returns the fixed ballast slug stacked on the permanent
// ballast.
func (c *Column) FixedBallast() Slug {
	return c.slug(c.PermanentBallast().Top(), c.Ballast.FixedHeight, c.Ballast.FixedDensity)
}

// BallastTable is the cumulative mass of water that fills the column from
// the top of the solid ballast up to each elevation.
type BallastTable struct {
	Elevation []float64 // m
	Mass      []float64 // kg, cumulative
	Density   float64   // kg/m³

	curve interp.PiecewiseLinear
}

// BallastTable tabulates the variable ballast capacity. Water may fill the
// column up to the waterline or the column top, whichever is lower.
func (c *Column) BallastTable(rhoWater float64) (*BallastTable, error) {
	start := c.FixedBallast().Top()
	top := math.Min(0, c.Top())

	elev := []float64{start}
	for _, z := range c.Z {
		if z > start && z < top {
			elev = append(elev, z)
		}
	}
	if top > start {
		elev = append(elev, top)
	}

	mass := make([]float64, len(elev))
	for i := 1; i < len(elev); i++ {
		z1, z2 := elev[i-1], elev[i]
		v := section.FrustumVolume(c.InnerRadiusAt(z1), c.InnerRadiusAt(z2), z2-z1)
		mass[i] = mass[i-1] + rhoWater*v
	}
	return NewBallastTable(elev, mass, rhoWater)
}

// NewBallastTable builds a table from cumulative water mass at increasing
// elevations.
func NewBallastTable(elevation, mass []float64, rhoWater float64) (*BallastTable, error) {
	if len(elevation) == 0 || len(elevation) != len(mass) {
		return nil, NewConfigurationError("ballast_table", "elevation and mass must be non-empty and equal length")
	}
	tbl := &BallastTable{Elevation: elevation, Mass: mass, Density: rhoWater}
	if len(mass) > 1 {
		if err := tbl.curve.Fit(mass, elevation); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// Capacity returns the largest mass of water the column can hold
func (t *BallastTable) Capacity() float64 {
	return t.Mass[len(t.Mass)-1]
}

// Start returns the elevation where variable ballast begins
func (t *BallastTable) Start() float64 {
	return t.Elevation[0]
}

// Length returns the height available for variable ballast
func (t *BallastTable) Length() float64 {
	return t.Elevation[len(t.Elevation)-1] - t.Start()
}

// HeightFor returns the fill height above Start for a mass of water.
// Masses outside [0, Capacity] are held at the table ends.
func (t *BallastTable) HeightFor(mass float64) float64 {
	if len(t.Mass) < 2 || mass <= 0 {
		return 0
	}
	if mass >= t.Capacity() {
		return t.Length()
	}
	return t.curve.Predict(mass) - t.Start()
}

// WaterSlug returns the variable ballast for a mass of water. Callers
// clamp mass to [0, Capacity] first. The inertia uses the cylinder with
// the same volume and fill height.
func (t *BallastTable) WaterSlug(mass float64) Slug {
	h := t.HeightFor(mass)
	m := math.Max(mass, 0)

	var r float64
	if h > 0 && t.Density > 0 {
		r = math.Sqrt(m / t.Density / (math.Pi * h))
	}
	return Slug{
		Mass:    m,
		Height:  h,
		ZBot:    t.Start(),
		CG:      t.Start() + h/2,
		Radius:  r,
		Inertia: section.CylinderInertia(m, r, h),
	}
}
