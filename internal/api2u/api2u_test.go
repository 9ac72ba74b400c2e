package api2u

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unit conversions for the Appendix B worked example
const (
	ksi  = 6894757.29317831
	inch = 0.0254
	ft   = 0.3048
)

func TestPlasticityReduction(t *testing.T) {
	// Elastic regime is unchanged
	assert.Equal(t, 2.0, PlasticityReduction(2, 4))
	assert.Equal(t, 8.0/3.0, PlasticityReduction(8.0/3.0, 4))

	// Inelastic regime
	fr := 4.0 / 3.0
	want := 3 * fr * math.Pow(1+3.75*fr*fr, -0.25)
	assert.InEpsilon(t, want, PlasticityReduction(3, 4), 1e-9)
}

func TestPsiRamp(t *testing.T) {
	assert.InDelta(t, 1.2, Psi(25, 100), 1e-12)
	assert.InDelta(t, 1.08, Psi(80, 100), 1e-12)
	assert.InDelta(t, 1.0, Psi(125, 100), 1e-12)

	assert.InDelta(t, 1.25*1.2, FactorOfSafety(Extreme)*Psi(25, 100), 1e-12)
	assert.InDelta(t, 1.65, FactorOfSafety(Normal)*Psi(125, 100), 1e-12)
}

func TestCompactness(t *testing.T) {
	e, fy := 29000.0, 50.0
	assert.InDelta(t, 0.5536, FlangeCompactness(10, 1, e, fy), 1e-4)
	assert.InDelta(t, 0.9301, WebCompactness(14, 0.625, e, fy), 1e-4)
}

func TestInteractionNoRoot(t *testing.T) {
	// A strongly negative quadratic coefficient leaves no positive root
	crit := Interaction(1, 1, 0.1, 1, true)
	assert.False(t, crit.Defined)
	assert.True(t, math.IsNaN(crit.Axial))

	crit = Interaction(10, 20, 50, 0, false)
	assert.True(t, crit.Defined)
	assert.Equal(t, 10.0, crit.Axial)
	assert.Equal(t, 20.0, crit.Hoop)
}

// Appendix B of API Bulletin 2U, ring-stiffened cylinder
func TestAppendixBElasticStresses(t *testing.T) {
	s := Shell{
		OuterRadius: 300 * inch,
		Thickness:   0.75 * inch,
		E:           29000 * ksi,
		Nu:          0.3,
		Fy:          50 * ksi,
	}
	r := Ring{
		WebHeight:       14 * inch,
		WebThickness:    0.625 * inch,
		FlangeWidth:     10 * inch,
		FlangeThickness: 1 * inch,
		Spacing:         5 * ft,
	}

	assert.InEpsilon(t, 16.0748, LocalAxial(s, r.Spacing)/ksi, 1e-3)

	local := LocalPressure(s, r.Spacing)
	require.True(t, local.Converged)
	assert.Equal(t, 24, local.Waves)
	assert.InEpsilon(t, 19.8025, local.Stress/ksi, 1e-3)

	assert.InEpsilon(t, 37.636, GeneralAxial(s, r.Area(), r.Spacing)/ksi, 1e-3)
}

func TestEffectiveRing(t *testing.T) {
	s := Shell{OuterRadius: 300 * inch, Thickness: 0.75 * inch, E: 29000 * ksi, Nu: 0.3, Fy: 50 * ksi}
	r := Ring{WebHeight: 14 * inch, WebThickness: 0.625 * inch, FlangeWidth: 10 * inch, FlangeThickness: 1 * inch, Spacing: 5 * ft}

	// Long spacing: the effective width is limited
	er := NewEffectiveRing(s, r, 0, 0)
	require.Greater(t, GeometryParameter(s, r.Spacing), 1.56)
	assert.InDelta(t, 1.1*math.Sqrt(2*s.MeanRadius()*s.Thickness)+r.WebThickness, er.EffectiveWidth, 1e-12)
	assert.InDelta(t, r.Area()+er.EffectiveWidth*s.Thickness, er.Area, 1e-12)
	assert.InDelta(t, s.OuterRadius-er.Centroid, er.CentroidRadius, 1e-12)

	// Close spacing: the whole bay is effective
	r.Spacing = 6 * inch
	er = NewEffectiveRing(s, r, 0, 0)
	assert.Equal(t, r.Spacing, er.EffectiveWidth)
}

func TestHoopFactors(t *testing.T) {
	s := Shell{OuterRadius: 300 * inch, Thickness: 0.75 * inch, E: 29000 * ksi, Nu: 0.3, Fy: 50 * ksi}
	r := Ring{WebHeight: 14 * inch, WebThickness: 0.625 * inch, FlangeWidth: 10 * inch, FlangeThickness: 1 * inch, Spacing: 5 * ft}

	h := NewHoopFactors(s, r, 0, -1e6)
	assert.Equal(t, 1.0, h.Local)
	assert.Equal(t, 1.0, h.General)

	h = NewHoopFactors(s, r, 1e5, 0)
	assert.Greater(t, h.General, 0.0)
	assert.Less(t, h.General, 1.0)
	assert.GreaterOrEqual(t, h.Psi, 0.0)
	assert.InDelta(t, h.Psi*(1-h.General), 1-h.Local, 1e-12)
}
