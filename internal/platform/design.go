// Package platform evaluates a complete floating platform design: column
// geometry and mass, ballast balance, stability, natural periods, and
// API Bulletin 2U buckling checks on every section.
package platform

import (
	"fmt"

	"github.com/alexiusacademia/gospar/internal/api2u"
	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/loads"
	"go.uber.org/zap"
)

// AuxiliaryColumns describes identical offset columns of a semisubmersible
type AuxiliaryColumns struct {
	Column column.Config `mapstructure:"column" yaml:"column"`
	Count  int           `mapstructure:"count" yaml:"count"`
	Radius float64       `mapstructure:"radius" yaml:"radius"` // m, platform axis to column axis
}

// Options select the load case for the buckling checks
type Options struct {
	Condition api2u.LoadCondition   `mapstructure:"condition" yaml:"condition"`
	Loading   api2u.PressureLoading `mapstructure:"loading" yaml:"loading"`

	Logger *zap.Logger `mapstructure:"-" yaml:"-"`
}

// Design is everything needed to evaluate one platform. Auxiliary is nil
// for a single-column spar.
type Design struct {
	Base        column.Config     `mapstructure:"base" yaml:"base"`
	Auxiliary   *AuxiliaryColumns `mapstructure:"auxiliary" yaml:"auxiliary,omitempty"`
	Environment loads.Environment `mapstructure:"environment" yaml:"environment"`
	Loads       loads.Loads       `mapstructure:"loads" yaml:"loads"`
	Options     Options           `mapstructure:"options" yaml:"options"`
}

// hasAuxiliary reports whether the design carries offset columns
func (d *Design) hasAuxiliary() bool {
	return d.Auxiliary != nil && d.Auxiliary.Count > 0
}

// Validate checks the design before any computation. Every failure is a
// *column.ConfigurationError.
func (d *Design) Validate() error {
	if err := d.Base.Validate(); err != nil {
		return fmt.Errorf("base column: %w", err)
	}
	if a := d.Auxiliary; a != nil {
		if a.Count < 0 {
			return column.NewConfigurationError("auxiliary.count", "cannot be negative")
		}
		if a.Count > 0 {
			if a.Radius <= 0 {
				return column.NewConfigurationError("auxiliary.radius", "must be positive")
			}
			if err := a.Column.Validate(); err != nil {
				return fmt.Errorf("auxiliary column: %w", err)
			}
		}
	}
	if err := d.Environment.Validate(); err != nil {
		return column.NewConfigurationError("environment", err.Error())
	}
	if err := d.Loads.Validate(); err != nil {
		return column.NewConfigurationError("loads", err.Error())
	}
	switch d.Options.Condition {
	case "", api2u.Normal, api2u.Extreme:
	default:
		return column.NewConfigurationError("options.condition", fmt.Sprintf("unknown load condition %q", d.Options.Condition))
	}
	switch d.Options.Loading {
	case "", api2u.Hydrostatic, api2u.Radial:
	default:
		return column.NewConfigurationError("options.loading", fmt.Sprintf("unknown pressure loading %q", d.Options.Loading))
	}
	return nil
}

// Unset options default to the extreme condition with hydrostatic end-cap
// loading.
func (o Options) condition() api2u.LoadCondition {
	if o.Condition == "" {
		return api2u.Extreme
	}
	return o.Condition
}

func (o Options) loading() api2u.PressureLoading {
	if o.Loading == "" {
		return api2u.Hydrostatic
	}
	return o.Loading
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
