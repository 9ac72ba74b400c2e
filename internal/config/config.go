// Package config loads and writes YAML design files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gospar/internal/column"
	"github.com/alexiusacademia/gospar/internal/platform"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override design
// values, e.g. GOSPAR_ENVIRONMENT_WAVE_HEIGHT.
const EnvPrefix = "GOSPAR"

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`             // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`           // json, console
	OutputFile string `mapstructure:"output_file" yaml:"output_file,omitempty"` // optional file output
}

// Config is the content of a design file
type Config struct {
	platform.Design `mapstructure:",squash" yaml:",inline"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
}

// Load reads a YAML design file over the defaults. Values may be
// overridden from the environment. A scalar given for a per-section or
// per-node array is repeated over the whole column.
func Load(path string) (*Config, error) {
	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("unable to encode defaults, %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("unable to read defaults, %w", err)
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	cfg.Base.Expand()
	if a := cfg.Auxiliary; a != nil {
		a.Column.Expand()
		inherit(&a.Column, cfg.Base)
	}
	return &cfg, nil
}

// inherit copies the base column's material, mass factors, and cost rates
// into an auxiliary column that leaves them unset.
func inherit(aux *column.Config, base column.Config) {
	if aux.Material == (column.Material{}) {
		aux.Material = base.Material
	}
	if aux.MassFactors == (column.MassFactors{}) {
		aux.MassFactors = base.MassFactors
	}
	if aux.Costs == (column.CostRates{}) {
		aux.Costs = base.Costs
	}
}

// Save writes cfg as YAML
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
