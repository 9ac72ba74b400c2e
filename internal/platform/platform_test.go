package platform

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gospar/internal/api2u"
	"github.com/alexiusacademia/gospar/internal/buckling"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testColumn(diameter float64) column.Config {
	return column.Config{
		SectionHeight:     []float64{20, 20},
		OuterDiameter:     []float64{diameter, diameter, diameter},
		WallThickness:     []float64{0.05, 0.05, 0.05},
		BulkheadThickness: []float64{0.05, 0, 0},
		Stiffeners: column.Stiffeners{
			WebHeight:       []float64{0.5, 0.5},
			WebThickness:    []float64{0.05, 0.05},
			FlangeWidth:     []float64{0.3, 0.3},
			FlangeThickness: []float64{0.05, 0.05},
			Spacing:         []float64{1, 1},
		},
		Freeboard:   5,
		Material:    column.Material{Density: 7850, E: 200e9, Nu: 0.3, YieldStress: 345e6},
		MassFactors: column.MassFactors{Shell: 1, Bulkhead: 1, Ring: 1, Column: 1, OutfittingFraction: 0.06},
		Ballast:     column.Ballast{PermanentHeight: 2, PermanentDensity: 4492},
		Costs:       column.CostRates{Tapered: 4.72, Outfitting: 6.98, Ballast: 0.1},
	}
}

func sparDesign() Design {
	return Design{
		Base: testColumn(20),
		Environment: loads.Environment{
			WaterDepth:            200,
			WaterDensity:          1025,
			AirDensity:            1.198,
			SignificantWaveHeight: 5,
			SignificantWavePeriod: 10,
		},
		Loads: loads.Loads{
			Turbine: loads.Turbine{
				TowerMass: 2e5, TowerCG: 30, TowerForce: 1e5,
				RNAMass: 1e5, RNACG: 80, RNAForce: 5e5,
			},
			Mooring: loads.Mooring{
				VerticalLoad:   1e5,
				Cost:           2e6,
				SurgeRestoring: 2e6,
				FairleadDepth:  20,
				FairleadOffset: 1,
			},
			MaxHeel: 6,
		},
	}
}

func semiDesign() Design {
	d := sparDesign()
	d.Auxiliary = &AuxiliaryColumns{Column: testColumn(6), Count: 3, Radius: 30}
	d.Loads.PontoonCost = 5e5
	return d
}

func TestEvaluateSpar(t *testing.T) {
	d := sparDesign()
	r, err := Evaluate(d)
	require.NoError(t, err)

	assert.Nil(t, r.Auxiliary)
	assert.Len(t, r.Base.Buckling.Sections, 2)
	assert.Zero(t, r.BaseAuxiliarySpacing)
	assert.InDelta(t, 11.0, r.FairleadRadius, 1e-12)

	assert.False(t, r.Has(InsufficientBallastCapacity))
	assert.False(t, r.Has(ExcessBuoyancy))
	assert.True(t, r.Balance.Equilibrium(1025, 1))
	assert.InDelta(t, math.Pi*100*35, r.Balance.DisplacedVolume, 1e-6)

	c := r.Base.Costs
	assert.InDelta(t, 4.72*r.Base.Mass.Structural, c.Structural, 1e-6)
	assert.InDelta(t, c.Total()+2e6, r.TotalCost, 1e-6)

	assert.InDelta(t, 35.0/200, r.Base.Layout.DraftDepthRatio, 1e-12)
	assert.Greater(t, r.Stability.HeelAngle, 0.0)
	assert.InDelta(t, 6e5/2e6, r.Stability.OffsetForceRatio, 1e-12)
	assert.True(t, math.IsInf(r.Periods.Period[0], 1))
}

func TestEvaluateSemi(t *testing.T) {
	d := semiDesign()
	r, err := Evaluate(d)
	require.NoError(t, err)
	require.NotNil(t, r.Auxiliary)

	assert.InDelta(t, 13.0/30, r.BaseAuxiliarySpacing, 1e-12)
	assert.InDelta(t, 30+3+1.0, r.FairleadRadius, 1e-12)
	assert.InDelta(t, math.Pi*(100+3*9), r.Stability.WaterplaneArea, 1e-9)

	v := math.Pi * 35 * (100 + 3*9)
	assert.InDelta(t, v, r.Balance.DisplacedVolume, 1e-6)

	want := r.Base.Costs.Total() + 3*r.Auxiliary.Costs.Total() + 2e6 + 5e5
	assert.InDelta(t, want, r.TotalCost, 1e-6)

	// Only the base column carries the turbine
	top := len(r.Auxiliary.Buckling.Sections) - 1
	assert.InDelta(t, 9.80665*r.Auxiliary.Mass.Section[top], r.Auxiliary.Buckling.Sections[top].AxialForce, 1e-6)
}

func TestEvaluateConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Design)
		field  string
	}{
		{"freeboard", func(d *Design) { d.Base.Freeboard = 50 }, "freeboard"},
		{"auxiliary radius", func(d *Design) {
			d.Auxiliary = &AuxiliaryColumns{Column: testColumn(6), Count: 3}
		}, "auxiliary.radius"},
		{"auxiliary column", func(d *Design) {
			d.Auxiliary = &AuxiliaryColumns{Column: testColumn(6), Count: 3, Radius: 30}
			d.Auxiliary.Column.WallThickness = []float64{0.05}
		}, "wall_thickness"},
		{"water depth", func(d *Design) { d.Environment.WaterDepth = 0 }, "environment"},
		{"mooring stiffness", func(d *Design) { d.Loads.Mooring.Stiffness = []float64{1} }, "loads"},
		{"load condition", func(d *Design) { d.Options.Condition = "storm" }, "options.condition"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sparDesign()
			tt.mutate(&d)
			r, err := Evaluate(d)
			require.Error(t, err)
			assert.Nil(t, r)

			var cfgErr *column.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestEvaluateConditions(t *testing.T) {
	t.Run("excess buoyancy", func(t *testing.T) {
		d := sparDesign()
		d.Base.Ballast = column.Ballast{PermanentHeight: 30, PermanentDensity: 8000}
		r, err := Evaluate(d)
		require.NoError(t, err)

		assert.True(t, r.Has(ExcessBuoyancy))
		assert.Zero(t, r.Balance.Ballast.Water.Mass)
		assert.Less(t, r.Balance.Ballast.RequiredMass, 0.0)
	})

	t.Run("insufficient capacity", func(t *testing.T) {
		d := sparDesign()
		d.Base.Ballast = column.Ballast{PermanentHeight: 20}
		r, err := Evaluate(d)
		require.NoError(t, err)

		assert.True(t, r.Has(InsufficientBallastCapacity))
		b := r.Balance.Ballast
		assert.InDelta(t, b.Capacity, b.Water.Mass, 1e-6)
		assert.Greater(t, b.RequiredMass, b.Capacity)
	})
}

func TestEvaluateLogsConditions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := sparDesign()
	d.Base.Ballast = column.Ballast{PermanentHeight: 30, PermanentDensity: 8000}
	d.Options.Logger = zap.New(core)

	_, err := Evaluate(d)
	require.NoError(t, err)

	warn := logs.FilterLevelExact(zapcore.WarnLevel).FilterField(zap.String("kind", string(ExcessBuoyancy)))
	assert.Equal(t, 1, warn.Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.InfoLevel).Len())
	assert.NotZero(t, logs.FilterMessage("system solved").Len())
}

func TestEvaluateOptions(t *testing.T) {
	d := sparDesign()
	extreme, err := Evaluate(d)
	require.NoError(t, err)

	d.Options.Condition = api2u.Normal
	normal, err := Evaluate(d)
	require.NoError(t, err)

	// The larger normal safety factor raises every defined unity
	e := extreme.Base.Buckling.Sections[0].AxialLocal
	n := normal.Base.Buckling.Sections[0].AxialLocal
	require.Equal(t, e.Status, n.Status)
	if e.Status == buckling.StatusOK {
		assert.InDelta(t, e.Value*api2u.FOSNormal/api2u.FOSExtreme, n.Value, 1e-9)
	}
}

// sameBits compares float slices bit for bit so NaN unities compare equal
func sameBits(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, math.Float64bits(want[i]), math.Float64bits(got[i]), "index %d", i)
	}
}

func assertSameResults(t *testing.T, want, got *Results) {
	t.Helper()
	assert.Equal(t, want.Balance, got.Balance)
	assert.Equal(t, want.Stability, got.Stability)
	assert.Equal(t, want.Periods, got.Periods)
	assert.Equal(t, want.TotalCost, got.TotalCost)
	assert.Equal(t, want.Conditions, got.Conditions)
	for k := range want.Base.Buckling.Sections[0].Unities() {
		sameBits(t, want.Base.Buckling.Array(k), got.Base.Buckling.Array(k))
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	d := semiDesign()
	a, err := Evaluate(d)
	require.NoError(t, err)
	b, err := Evaluate(d)
	require.NoError(t, err)
	assertSameResults(t, a, b)
}

func TestEvaluateBatch(t *testing.T) {
	bad := sparDesign()
	bad.Base.Freeboard = 50
	designs := []Design{sparDesign(), bad, semiDesign(), sparDesign()}

	out := EvaluateBatch(context.Background(), designs, 2)
	require.Len(t, out, len(designs))

	var cfgErr *column.ConfigurationError
	assert.True(t, errors.As(out[1].Err, &cfgErr))
	assert.Nil(t, out[1].Results)

	for _, i := range []int{0, 2, 3} {
		require.NoError(t, out[i].Err)
		want, err := Evaluate(designs[i])
		require.NoError(t, err)
		assertSameResults(t, want, out[i].Results)
	}
	assertSameResults(t, out[0].Results, out[3].Results)
}

func TestEvaluateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := EvaluateBatch(ctx, []Design{sparDesign(), semiDesign()}, 1)
	for _, r := range out {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Results)
	}
	assert.Empty(t, EvaluateBatch(context.Background(), nil, 4))
}

func TestConditionsFromSections(t *testing.T) {
	ok := buckling.Unity{Value: 0.5, Status: buckling.StatusOK}
	undefined := buckling.Unity{Value: math.NaN(), Status: buckling.StatusUndefined}
	section := func() buckling.SectionResult {
		return buckling.SectionResult{
			AxialLocal: ok, AxialGeneral: ok, ExternalLocal: ok, ExternalGeneral: ok,
			LocalConverged: true, GeneralConverged: true,
		}
	}

	tests := []struct {
		name      string
		auxiliary bool
		edit      func(s *buckling.SectionResult)
		want      []Condition
	}{
		{"clean", false, func(s *buckling.SectionResult) {}, nil},
		{
			"undefined unity", false,
			func(s *buckling.SectionResult) { s.ExternalGeneral = undefined },
			[]Condition{{Kind: NoPositiveRoot, Column: "base", Section: 1, Message: "external-general interaction has no positive root"}},
		},
		{
			"local mode", false,
			func(s *buckling.SectionResult) { s.LocalConverged = false },
			[]Condition{{Kind: NonConvergence, Column: "base", Section: 1, Message: "local mode search"}},
		},
		{
			"auxiliary general mode", true,
			func(s *buckling.SectionResult) { s.GeneralConverged = false },
			[]Condition{{Kind: NonConvergence, Column: "auxiliary", Section: 1, Message: "general mode search"}},
		},
		{
			"several on one section", false,
			func(s *buckling.SectionResult) {
				s.AxialLocal = undefined
				s.AxialGeneral = undefined
				s.GeneralConverged = false
			},
			[]Condition{
				{Kind: NoPositiveRoot, Column: "base", Section: 1, Message: "axial-local interaction has no positive root"},
				{Kind: NoPositiveRoot, Column: "base", Section: 1, Message: "axial-general interaction has no positive root"},
				{Kind: NonConvergence, Column: "base", Section: 1, Message: "general mode search"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagged := section()
			tt.edit(&flagged)
			sections := []buckling.SectionResult{section(), flagged, section()}

			r := &Results{Base: ColumnResults{Buckling: buckling.Result{Sections: sections}}}
			if tt.auxiliary {
				r.Base.Buckling.Sections = []buckling.SectionResult{section(), section(), section()}
				r.Auxiliary = &ColumnResults{Buckling: buckling.Result{Sections: sections}}
			}

			got := conditions(r, loads.Environment{WaterDepth: 200, WaterDensity: 1025})
			assert.Equal(t, tt.want, got)

			r.Conditions = got
			for _, c := range tt.want {
				assert.True(t, r.Has(c.Kind))
			}
		})
	}
}
