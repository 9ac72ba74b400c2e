package column

import (
	"math"

	"github.com/alexiusacademia/gospar/internal/section"
)

// Hydrostatics holds the still-water properties of one column
type Hydrostatics struct {
	DisplacedVolume   float64 // m³
	CB                float64 // m, center of buoyancy elevation
	WaterlineRadius   float64 // m, 0 if the column is fully submerged
	WaterplaneArea    float64 // m²
	WaterplaneInertia float64 // m⁴, about a diametral axis
}

// Hydrostatics integrates the submerged outer volume of the column. The
// section crossing the waterline is cut at z = 0.
func (c *Column) Hydrostatics() Hydrostatics {
	var h Hydrostatics
	var moment float64

	for _, s := range c.Sections {
		if s.ZBot >= 0 {
			break
		}
		zTop, rTop := s.ZTop, s.RadiusTop
		if zTop > 0 {
			zTop = 0
			rTop = c.OuterRadiusAt(0)
		}
		dz := zTop - s.ZBot
		v := section.FrustumVolume(s.RadiusBot, rTop, dz)
		h.DisplacedVolume += v
		moment += v * (s.ZBot + section.FrustumCentroid(s.RadiusBot, rTop, dz))
	}
	if h.DisplacedVolume > 0 {
		h.CB = moment / h.DisplacedVolume
	}

	if c.Top() > 0 {
		r := c.OuterRadiusAt(0)
		h.WaterlineRadius = r
		h.WaterplaneArea = math.Pi * r * r
		h.WaterplaneInertia = 0.25 * math.Pi * r * r * r * r
	}
	return h
}

// AddedMass returns the hydrodynamic added mass of the column about its
// own center of buoyancy: surge, sway, heave, roll, pitch, yaw.
func (c *Column) AddedMass(rhoWater float64, hs Hydrostatics) [6]float64 {
	var a [6]float64
	a[0] = rhoWater * hs.DisplacedVolume
	a[1] = a[0]

	if c.Z[0] < 0 {
		r := c.Radius[0]
		a[2] = rhoWater * 4.0 / 3.0 * r * r * r
	}

	// Strip theory over the submerged length
	for _, s := range c.Sections {
		if s.ZBot >= 0 {
			break
		}
		zTop := math.Min(s.ZTop, 0)
		r := 0.5 * (s.RadiusBot + c.OuterRadiusAt(zTop))
		d1, d2 := s.ZBot-hs.CB, zTop-hs.CB
		a[3] += rhoWater * math.Pi * r * r * (d2*d2*d2 - d1*d1*d1) / 3
	}
	a[4] = a[3]
	return a
}
