// Package column builds the discretized geometry of a single cylindrical
// floating column and derives its mass, ballast, and hydrostatic
// properties.
package column

import (
	"fmt"
)

// Material holds the shell steel properties
type Material struct {
	Density     float64 `mapstructure:"density" yaml:"density"`           // kg/m³
	E           float64 `mapstructure:"e" yaml:"e"`                       // Pa
	Nu          float64 `mapstructure:"nu" yaml:"nu"`                     // Poisson's ratio
	YieldStress float64 `mapstructure:"yield_stress" yaml:"yield_stress"` // Pa
}

// Stiffeners holds ring stiffener dimensions, one entry per section
type Stiffeners struct {
	WebHeight       []float64 `mapstructure:"web_height" yaml:"web_height"`             // m
	WebThickness    []float64 `mapstructure:"web_thickness" yaml:"web_thickness"`       // m
	FlangeWidth     []float64 `mapstructure:"flange_width" yaml:"flange_width"`         // m
	FlangeThickness []float64 `mapstructure:"flange_thickness" yaml:"flange_thickness"` // m
	Spacing         []float64 `mapstructure:"spacing" yaml:"spacing"`                   // m, between rings
}

// MassFactors scale the analytic masses to account for welds, paint,
// and secondary steel
type MassFactors struct {
	Shell              float64 `mapstructure:"shell" yaml:"shell"`
	Bulkhead           float64 `mapstructure:"bulkhead" yaml:"bulkhead"`
	Ring               float64 `mapstructure:"ring" yaml:"ring"`
	Column             float64 `mapstructure:"column" yaml:"column"`
	OutfittingFraction float64 `mapstructure:"outfitting_fraction" yaml:"outfitting_fraction"`
}

// Ballast describes the solid ballast placed at the column base
type Ballast struct {
	PermanentHeight  float64 `mapstructure:"permanent_height" yaml:"permanent_height"`   // m
	PermanentDensity float64 `mapstructure:"permanent_density" yaml:"permanent_density"` // kg/m³
	FixedHeight      float64 `mapstructure:"fixed_height" yaml:"fixed_height"`           // m
	FixedDensity     float64 `mapstructure:"fixed_density" yaml:"fixed_density"`         // kg/m³
}

// CostRates are linear cost rates per kilogram
type CostRates struct {
	Tapered    float64 `mapstructure:"tapered" yaml:"tapered"`       // $/kg of column steel
	Outfitting float64 `mapstructure:"outfitting" yaml:"outfitting"` // $/kg of outfitting
	Ballast    float64 `mapstructure:"ballast" yaml:"ballast"`       // $/kg of solid ballast
}

// Config is the coarse description of one column. Nodal arrays carry one
// more entry than the per-section arrays.
type Config struct {
	SectionHeight     []float64 `mapstructure:"section_height" yaml:"section_height"`         // m, per section
	OuterDiameter     []float64 `mapstructure:"outer_diameter" yaml:"outer_diameter"`         // m, per node
	WallThickness     []float64 `mapstructure:"wall_thickness" yaml:"wall_thickness"`         // m, per node
	BulkheadThickness []float64 `mapstructure:"bulkhead_thickness" yaml:"bulkhead_thickness"` // m, per node, 0 = none

	Stiffeners Stiffeners `mapstructure:"stiffeners" yaml:"stiffeners"`

	Freeboard  float64 `mapstructure:"freeboard" yaml:"freeboard"`   // m, top node above waterline
	Refinement int     `mapstructure:"refinement" yaml:"refinement"` // sub-sections per section

	Material    Material    `mapstructure:"material" yaml:"material"`
	MassFactors MassFactors `mapstructure:"mass_factors" yaml:"mass_factors"`
	Ballast     Ballast     `mapstructure:"ballast" yaml:"ballast"`
	Costs       CostRates   `mapstructure:"costs" yaml:"costs"`
}

// NumSections returns the number of coarse sections
func (c *Config) NumSections() int {
	return len(c.SectionHeight)
}

// TotalHeight is the sum of all section heights
func (c *Config) TotalHeight() float64 {
	var h float64
	for _, v := range c.SectionHeight {
		h += v
	}
	return h
}

// Validate checks the configuration before any computation runs
func (c *Config) Validate() error {
	n := c.NumSections()
	if n == 0 {
		return &ConfigurationError{Field: "section_height", msg: "column must have at least one section"}
	}

	nodal := []namedArray{
		{"outer_diameter", c.OuterDiameter},
		{"wall_thickness", c.WallThickness},
	}
	if c.BulkheadThickness != nil {
		nodal = append(nodal, namedArray{"bulkhead_thickness", c.BulkheadThickness})
	}
	for _, a := range nodal {
		if len(a.values) != n+1 {
			return &ConfigurationError{Field: a.name, msg: fmt.Sprintf("expected %d nodal values, got %d", n+1, len(a.values))}
		}
	}

	sectional := []namedArray{
		{"stiffeners.web_height", c.Stiffeners.WebHeight},
		{"stiffeners.web_thickness", c.Stiffeners.WebThickness},
		{"stiffeners.flange_width", c.Stiffeners.FlangeWidth},
		{"stiffeners.flange_thickness", c.Stiffeners.FlangeThickness},
		{"stiffeners.spacing", c.Stiffeners.Spacing},
	}
	for _, a := range sectional {
		if len(a.values) != n {
			return &ConfigurationError{Field: a.name, msg: fmt.Sprintf("expected %d section values, got %d", n, len(a.values))}
		}
		for i, v := range a.values {
			if v <= 0 {
				return &ConfigurationError{Field: a.name, msg: fmt.Sprintf("section %d must be positive", i+1)}
			}
		}
	}

	for i, h := range c.SectionHeight {
		if h <= 0 {
			return &ConfigurationError{Field: "section_height", msg: fmt.Sprintf("section %d height must be positive", i+1)}
		}
	}
	for i := range c.OuterDiameter {
		d, t := c.OuterDiameter[i], c.WallThickness[i]
		if d <= 0 {
			return &ConfigurationError{Field: "outer_diameter", msg: fmt.Sprintf("node %d diameter must be positive", i+1)}
		}
		if t <= 0 {
			return &ConfigurationError{Field: "wall_thickness", msg: fmt.Sprintf("node %d thickness must be positive", i+1)}
		}
		if 2*t >= d {
			return &ConfigurationError{Field: "wall_thickness", msg: fmt.Sprintf("node %d wall is thicker than its radius", i+1)}
		}
	}
	for i, t := range c.BulkheadThickness {
		if t < 0 {
			return &ConfigurationError{Field: "bulkhead_thickness", msg: fmt.Sprintf("node %d thickness cannot be negative", i+1)}
		}
	}

	if c.Freeboard >= c.TotalHeight() {
		return &ConfigurationError{Field: "freeboard", msg: "freeboard must be less than the total column height"}
	}
	if c.Refinement < 0 {
		return &ConfigurationError{Field: "refinement", msg: "refinement cannot be negative"}
	}

	m := c.Material
	if m.Density <= 0 || m.E <= 0 || m.YieldStress <= 0 {
		return &ConfigurationError{Field: "material", msg: "density, E, and yield stress must be positive"}
	}
	if m.Nu <= 0 || m.Nu >= 0.5 {
		return &ConfigurationError{Field: "material.nu", msg: "Poisson's ratio must be between 0 and 0.5"}
	}

	b := c.Ballast
	if b.PermanentHeight < 0 || b.FixedHeight < 0 || b.PermanentDensity < 0 || b.FixedDensity < 0 {
		return &ConfigurationError{Field: "ballast", msg: "ballast heights and densities cannot be negative"}
	}
	if b.PermanentHeight+b.FixedHeight >= c.TotalHeight() {
		return &ConfigurationError{Field: "ballast", msg: "solid ballast does not fit inside the column"}
	}

	return nil
}

type namedArray struct {
	name   string
	values []float64
}

// ConfigurationError reports an invalid column definition. It aborts an
// evaluation before any computation runs.
type ConfigurationError struct {
	Field string
	msg   string
}

// NewConfigurationError creates a ConfigurationError for field
func NewConfigurationError(field, msg string) *ConfigurationError {
	return &ConfigurationError{Field: field, msg: msg}
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.msg
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.msg)
}

// Expand repeats single-valued arrays to the length the column needs:
// one value per section or one per node.
func (c *Config) Expand() {
	n := c.NumSections()
	if n == 0 {
		return
	}
	for _, a := range []*[]float64{&c.OuterDiameter, &c.WallThickness, &c.BulkheadThickness} {
		*a = repeat(*a, n+1)
	}
	s := &c.Stiffeners
	for _, a := range []*[]float64{&s.WebHeight, &s.WebThickness, &s.FlangeWidth, &s.FlangeThickness, &s.Spacing} {
		*a = repeat(*a, n)
	}
}

func repeat(vals []float64, n int) []float64 {
	if len(vals) != 1 || n == 1 {
		return vals
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = vals[0]
	}
	return out
}
