package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gospar/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultEvaluates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	r, err := platform.Evaluate(cfg.Design)
	require.NoError(t, err)
	assert.False(t, r.Has(platform.InsufficientBallastCapacity))
	assert.False(t, r.Has(platform.ExcessBuoyancy))
	assert.Greater(t, r.Stability.MetacentricHeight, 0.0)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	want := Default()
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.Base, got.Base)
	assert.Nil(t, got.Auxiliary)
	assert.Equal(t, want.Environment, got.Environment)
	assert.Equal(t, want.Loads.Turbine, got.Loads.Turbine)
	assert.Equal(t, want.Loads.Mooring.FairleadDepth, got.Loads.Mooring.FairleadDepth)
	assert.Equal(t, want.Loads.MaxHeel, got.Loads.MaxHeel)
	assert.Equal(t, want.Options.Condition, got.Options.Condition)
	assert.Equal(t, want.Logging, got.Logging)
}

const partial = `
environment:
  wave_height: 2
base:
  section_height: [60, 30]
  outer_diameter: 12
  wall_thickness: 0.06
  bulkhead_thickness: [0.05, 0, 0.05]
  stiffeners:
    web_height: 0.4
    web_thickness: 0.03
    flange_width: 0.2
    flange_thickness: 0.03
    spacing: 2
  freeboard: 10
logging:
  level: debug
`

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeFile(t, partial))
	require.NoError(t, err)

	b := cfg.Base
	assert.Equal(t, []float64{60, 30}, b.SectionHeight)
	assert.Equal(t, []float64{12, 12, 12}, b.OuterDiameter)
	assert.Equal(t, []float64{0.06, 0.06, 0.06}, b.WallThickness)
	assert.Equal(t, []float64{2, 2}, b.Stiffeners.Spacing)
	assert.Equal(t, Material(), b.Material)

	assert.Equal(t, 2.0, cfg.Environment.SignificantWaveHeight)
	assert.Equal(t, 320.0, cfg.Environment.WaterDepth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	_, err = platform.Evaluate(cfg.Design)
	assert.NoError(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GOSPAR_ENVIRONMENT_WAVE_HEIGHT", "3.5")
	t.Setenv("GOSPAR_OPTIONS_CONDITION", "normal")

	cfg, err := Load(writeFile(t, partial))
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.Environment.SignificantWaveHeight)
	assert.EqualValues(t, "normal", cfg.Options.Condition)
}

func TestLoadAuxiliaryInherits(t *testing.T) {
	cfg, err := Load(writeFile(t, `
auxiliary:
  count: 3
  radius: 30
  column:
    section_height: [20, 20]
    outer_diameter: 6
    wall_thickness: 0.03
    bulkhead_thickness: 0
    stiffeners:
      web_height: 0.3
      web_thickness: 0.02
      flange_width: 0.15
      flange_thickness: 0.02
      spacing: 1
    freeboard: 5
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Auxiliary)

	a := cfg.Auxiliary
	assert.Equal(t, 3, a.Count)
	assert.Equal(t, []float64{0, 0, 0}, a.Column.BulkheadThickness)
	assert.Equal(t, cfg.Base.Material, a.Column.Material)
	assert.Equal(t, cfg.Base.MassFactors, a.Column.MassFactors)
	assert.Equal(t, cfg.Base.Costs, a.Column.Costs)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "base: [unclosed"))
	assert.Error(t, err)
}
