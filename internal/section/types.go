// Package section computes cross-section and solid properties used by the
// column mass and stiffener bookkeeping: T-beam ring stiffeners, hollow
// tubes, and conical frustums.
package section

// TBeam is a ring stiffener cross-section. The web stands on the shell
// inner surface and the flange caps the web.
type TBeam struct {
	WebHeight       float64 `json:"web_height"`       // m
	WebThickness    float64 `json:"web_thickness"`    // m
	FlangeWidth     float64 `json:"flange_width"`     // m
	FlangeThickness float64 `json:"flange_thickness"` // m
}

// TBeamProperties holds calculated geometric properties of a T-beam
type TBeamProperties struct {
	Area     float64 // m²
	Centroid float64 // m, from the web base (shell inner surface)

	// Second moments of area about the centroid
	Ixx float64 // m⁴, bending out of the shell plane (diametral axis)
	Iyy float64 // m⁴, about the web axis
}

// Inertia is a diagonal inertia tensor about a body's own centroid
type Inertia struct {
	Ixx float64 // kg·m²
	Iyy float64 // kg·m²
	Izz float64 // kg·m², about the column axis
}

// Add returns the component-wise sum of two inertias
func (i Inertia) Add(o Inertia) Inertia {
	return Inertia{Ixx: i.Ixx + o.Ixx, Iyy: i.Iyy + o.Iyy, Izz: i.Izz + o.Izz}
}

// Scale multiplies every component by f
func (i Inertia) Scale(f float64) Inertia {
	return Inertia{Ixx: i.Ixx * f, Iyy: i.Iyy * f, Izz: i.Izz * f}
}

// Shifted applies the parallel-axis theorem for a body of mass m whose
// centroid sits dz above and (dx, dy) beside the reference point.
func (i Inertia) Shifted(m, dx, dy, dz float64) Inertia {
	return Inertia{
		Ixx: i.Ixx + m*(dy*dy+dz*dz),
		Iyy: i.Iyy + m*(dx*dx+dz*dz),
		Izz: i.Izz + m*(dx*dx+dy*dy),
	}
}
