package section

import "math"

// CalculateProperties computes the area, centroid, and second moments of
// the T-beam.
func (b TBeam) CalculateProperties() TBeamProperties {
	hw, tw := b.WebHeight, b.WebThickness
	bf, tf := b.FlangeWidth, b.FlangeThickness

	aw := hw * tw
	af := bf * tf
	area := aw + af

	var y float64
	if area > 0 {
		y = (aw*hw/2 + af*(hw+tf/2)) / area
	}

	// Parallel-axis combination of web and flange rectangles
	ixx := tw*hw*hw*hw/12 + aw*math.Pow(hw/2-y, 2) +
		bf*tf*tf*tf/12 + af*math.Pow(hw+tf/2-y, 2)
	iyy := tw*tw*tw*hw/12 + bf*bf*bf*tf/12

	return TBeamProperties{Area: area, Centroid: y, Ixx: ixx, Iyy: iyy}
}

// TubeInertia returns the inertia of a hollow cylinder of mass m, inner and
// outer radius ri and ro, and height h about its own centroid.
func TubeInertia(m, ri, ro, h float64) Inertia {
	r2 := ri*ri + ro*ro
	ixx := m * (3*r2 + h*h) / 12
	return Inertia{Ixx: ixx, Iyy: ixx, Izz: m * r2 / 2}
}

// CylinderInertia returns the inertia of a solid cylinder of mass m,
// radius r, and height h about its own centroid.
func CylinderInertia(m, r, h float64) Inertia {
	return TubeInertia(m, 0, r, h)
}

// DiskInertia returns the inertia of a thin circular plate.
func DiskInertia(m, r float64) Inertia {
	return Inertia{Ixx: 0.25 * m * r * r, Iyy: 0.25 * m * r * r, Izz: 0.5 * m * r * r}
}

// FrustumVolume is the volume of a conical frustum with base radius r1,
// top radius r2 and height h.
func FrustumVolume(r1, r2, h float64) float64 {
	return math.Pi / 3 * h * (r1*r1 + r1*r2 + r2*r2)
}

// FrustumCentroid is the centroid height of a conical frustum measured from
// its base.
func FrustumCentroid(r1, r2, h float64) float64 {
	den := r1*r1 + r1*r2 + r2*r2
	if den == 0 {
		return h / 2
	}
	return h * (r1*r1 + 2*r1*r2 + 3*r2*r2) / (4 * den)
}

// FrustumShellVolume is the material volume of a thin tapered shell whose
// mid-wall radius and thickness vary linearly from (rb, tb) at the base to
// (rt, tt) at the top over height h.
func FrustumShellVolume(rb, rt, tb, tt, h float64) float64 {
	return math.Pi / 3 * h * (rb*(2*tb+tt) + rt*(tb+2*tt))
}
