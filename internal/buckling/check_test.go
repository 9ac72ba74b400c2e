package buckling

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gospar/internal/api2u"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
	"github.com/alexiusacademia/gospar/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ksi  = 6894757.29317831
	inch = 0.0254
	ft   = 0.3048
	kip  = 4448.2216
)

// Ring-stiffened cylinder of API Bulletin 2U Appendix B
func appendixB() (column.Section, column.Material) {
	sec := column.Section{
		ZBot:         -85 * ft,
		ZTop:         -35 * ft,
		Height:       50 * ft,
		RadiusBot:    300 * inch,
		RadiusTop:    300 * inch,
		ThicknessBot: 0.75 * inch,
		ThicknessTop: 0.75 * inch,
		Stiffener: section.TBeam{
			WebHeight:       14 * inch,
			WebThickness:    0.625 * inch,
			FlangeWidth:     10 * inch,
			FlangeThickness: 1 * inch,
		},
		Spacing:   5 * ft,
		BayLength: 50 * ft,
	}
	mat := column.Material{E: 29000 * ksi, Nu: 0.3, YieldStress: 50 * ksi, Density: 7850}
	return sec, mat
}

func TestAppendixB(t *testing.T) {
	sec, mat := appendixB()
	rho := 64 * 16.0185
	p := rho * loads.StandardGravity * 60 * ft
	w := 9000 * kip

	res := CheckSection(sec, mat, w, p, Options{Condition: api2u.Extreme, Loading: api2u.Radial})

	assert.InDelta(t, 0.9301, res.WebCompactness, 1e-4)
	assert.InDelta(t, 0.5536, res.FlangeCompactness, 1e-4)

	assert.InDelta(t, 1.0, res.Hoop.Local, 1e-9)
	assert.InDelta(t, 0.574934, res.Hoop.General, 1e-5)

	assert.InEpsilon(t, 16.07, res.LocalAxial.Elastic/ksi, 1e-2)
	assert.InEpsilon(t, 19.80, res.LocalPressure.Elastic/ksi, 1e-2)
	assert.InEpsilon(t, 37.64, res.GeneralAxial.Elastic/ksi, 1e-2)
	assert.InEpsilon(t, 93.77, res.GeneralPressure.Elastic/ksi, 1e-2)
	assert.Equal(t, 24, res.LocalWaves)
	assert.True(t, res.GeneralConverged)

	// Local stresses stay elastic, general ones exceed 2/3 Fy and are reduced
	assert.Equal(t, res.LocalAxial.Elastic, res.LocalAxial.Inelastic)
	assert.Equal(t, res.LocalPressure.Elastic, res.LocalPressure.Inelastic)
	assert.Less(t, res.GeneralAxial.Inelastic, res.GeneralAxial.Elastic)

	assert.InDelta(t, 1.0688, res.AxialLocal.Value, 1e-3)
	assert.InDelta(t, 0.3388, res.AxialGeneral.Value, 1e-3)
	assert.InDelta(t, 1.0688, res.ExternalLocal.Value, 1e-3)
	assert.InDelta(t, 0.5934, res.ExternalGeneral.Value, 1e-3)

	assert.False(t, res.Passes())
	assert.False(t, res.AxialLocal.Passes())
	assert.True(t, res.AxialGeneral.Passes())
}

func TestNoPressure(t *testing.T) {
	sec, mat := appendixB()
	w := 9000 * kip

	res := CheckSection(sec, mat, w, 0, Options{Condition: api2u.Normal})

	assert.Equal(t, 1.0, res.Hoop.Local)
	assert.Equal(t, 1.0, res.Hoop.General)
	assert.Zero(t, res.HoopStress)
	assert.Zero(t, res.ExternalLocal.Value)
	assert.Equal(t, StatusOK, res.ExternalGeneral.Status)

	fa := api2u.Allowable(res.LocalAxial.Inelastic, mat.YieldStress, api2u.Normal)
	assert.InEpsilon(t, math.Abs(res.AxialStress)/fa, res.AxialLocal.Value, 1e-12)
}

func TestUndefinedUnity(t *testing.T) {
	u := unity(-10, api2u.Critical{Axial: math.NaN(), Hoop: math.NaN()}, math.NaN(), 1, api2u.Extreme)
	assert.Equal(t, StatusUndefined, u.Status)
	assert.True(t, math.IsNaN(u.Value))
	assert.False(t, u.Passes())
}

func TestColumnStack(t *testing.T) {
	cfg := column.Config{
		SectionHeight:     []float64{20, 20},
		OuterDiameter:     []float64{10, 10, 10},
		WallThickness:     []float64{0.05, 0.05, 0.05},
		BulkheadThickness: []float64{0, 0, 0},
		Stiffeners: column.Stiffeners{
			WebHeight:       []float64{0.3, 0.3},
			WebThickness:    []float64{0.02, 0.02},
			FlangeWidth:     []float64{0.15, 0.15},
			FlangeThickness: []float64{0.03, 0.03},
			Spacing:         []float64{1.5, 1.5},
		},
		Freeboard:   15,
		Material:    column.Material{Density: 7850, E: 200e9, Nu: 0.3, YieldStress: 345e6},
		MassFactors: column.MassFactors{Shell: 1, Bulkhead: 1, Ring: 1, Column: 1},
	}
	c, err := column.Build(cfg)
	require.NoError(t, err)
	mb := c.Mass()

	env := loads.Environment{WaterDepth: 200, WaterDensity: 1025}
	top := 600e3
	res := Check(c, mb, top, env, Options{Condition: api2u.Extreme})
	require.Len(t, res.Sections, 2)

	g := loads.StandardGravity
	assert.InDelta(t, g*(top+mb.Section[1]), res.Sections[1].AxialForce, 1e-6)
	assert.InDelta(t, g*(top+mb.Section[0]+mb.Section[1]), res.Sections[0].AxialForce, 1e-6)

	// Upper section midpoint is above the waterline
	assert.Zero(t, res.Sections[1].Pressure)
	assert.InDelta(t, 1025*g*15, res.Sections[0].Pressure, 1e-6)

	assert.Len(t, res.Array(0), 2)
	assert.Empty(t, res.Undefined())
	assert.Greater(t, res.MaxUnity(), 0.0)

	again := Check(c, mb, top, env, Options{Condition: api2u.Extreme})
	assert.Equal(t, res, again)
}
