package api2u

import "math"

// Ring is a T-shaped ring stiffener welded to the inside of the shell.
type Ring struct {
	WebHeight       float64 // hw
	WebThickness    float64 // tw
	FlangeWidth     float64 // bf
	FlangeThickness float64 // tf
	Spacing         float64 // Lr
}

// Area returns the stiffener cross-sectional area Ar
func (r Ring) Area() float64 {
	return r.WebHeight*r.WebThickness + r.FlangeWidth*r.FlangeThickness
}

// Shell holds the plate data at one section of the cylinder.
type Shell struct {
	OuterRadius float64 // Ro
	Thickness   float64 // t
	E           float64
	Nu          float64
	Fy          float64
}

// MeanRadius is the radius to the wall mid-fiber
func (s Shell) MeanRadius() float64 {
	return s.OuterRadius - 0.5*s.Thickness
}

// GeometryParameter is M = Lr / √(R·t)
func GeometryParameter(s Shell, lr float64) float64 {
	return lr / math.Sqrt(s.MeanRadius()*s.Thickness)
}

// EffectiveRing holds ring-plus-shell properties (Section 4.5)
type EffectiveRing struct {
	EffectiveWidth float64 // Le
	Area           float64 // Aer
	Centroid       float64 // measured from the shell outer surface
	Inertia        float64 // Ier
	CentroidRadius float64 // Rc
}

// NewEffectiveRing combines the ring with its effective width of shell.
// ringInertia and ringCentroid are the bare T-section Ixx and centroid
// offset measured from the shell inner surface.
func NewEffectiveRing(s Shell, r Ring, ringInertia, ringCentroid float64) EffectiveRing {
	t := s.Thickness
	ar := r.Area()

	le := r.Spacing
	if GeometryParameter(s, r.Spacing) > 1.56 {
		le = 1.1*math.Sqrt(2*s.MeanRadius()*t) + r.WebThickness
	}
	aer := ar + le*t

	hw, tw := r.WebHeight, r.WebThickness
	bf, tf := r.FlangeWidth, r.FlangeThickness
	yena := (le*t*t/2 + hw*tw*(hw/2+t) + tf*bf*(tf/2+hw+t)) / aer

	ier := ringInertia + ar*math.Pow(ringCentroid+t/2, 2)*le*t/aer + le*t*t*t/12

	return EffectiveRing{
		EffectiveWidth: le,
		Area:           aer,
		Centroid:       yena,
		Inertia:        ier,
		CentroidRadius: s.OuterRadius - yena,
	}
}

// HoopFactors are the hoop-stress redistribution factors (Section 11)
type HoopFactors struct {
	Local   float64 // Kθl, shell midway between rings
	General float64 // Kθg, shell at the ring
	Psi     float64 // ψk
}

// NewHoopFactors splits the external pressure p between shell and ring.
// axialStress is negative in compression. Both factors are 1 without
// pressure.
func NewHoopFactors(s Shell, r Ring, p, axialStress float64) HoopFactors {
	if p <= 0 {
		return HoopFactors{Local: 1, General: 1, Psi: 0}
	}
	ro, t, e, nu := s.OuterRadius, s.Thickness, s.E, s.Nu

	d := e * t * t * t / (12 * (1 - nu*nu))
	beta := math.Pow(e*t/(4*ro*ro*d), 0.25)
	bl := beta * r.Spacing

	kt := 8 * beta * beta * beta * d * (math.Cosh(bl) - math.Cos(bl)) / (math.Sinh(bl) + math.Sin(bl))

	rf := ro - r.WebHeight
	tws := r.Area() / r.WebHeight
	kd := e * tws * (ro*ro - rf*rf) / (ro * ((1+nu)*ro*ro + (1-nu)*rf*rf))

	h := bl / 2
	psiK := 2 * (math.Sin(h)*math.Cosh(h) + math.Cos(h)*math.Sinh(h)) / (math.Sinh(bl) + math.Sin(bl))
	psiK = math.Max(psiK, 0)

	pSigma := math.Min(p+nu*axialStress*t/ro, p)
	share := kd / (kd + kt)

	return HoopFactors{
		Local:   1 - psiK*pSigma/p*share,
		General: 1 - pSigma/p*share,
		Psi:     psiK,
	}
}
