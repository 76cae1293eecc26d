// SPDX-License-Identifier: MIT

// Package config loads process configuration for applications built on
// astrokit and turns it into a qfloat.Factory and a logger.
//
// Sources:
//   - environment variables with the ASTROKIT_ prefix (Load);
//   - YAML files (LoadYAML), starting from Default.
//
// The numeric packages never read configuration themselves; everything
// flows through explicit options.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/astrokit/deriv"
	"github.com/katalvlaran/astrokit/logging"
	"github.com/katalvlaran/astrokit/qfloat"
)

// EnvPrefix prefixes every environment variable, e.g. ASTROKIT_LOG_LEVEL.
const EnvPrefix = "ASTROKIT"

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all astrokit configuration.
type Config struct {
	LogLevel         string   `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level"`
	LogDevelopment   bool     `envconfig:"LOG_DEV" default:"false" yaml:"log_development"`
	LogOutputs       []string `envconfig:"LOG_OUTPUTS" default:"stderr" yaml:"log_outputs"`
	TrackUncertainty bool     `envconfig:"TRACK_UNCERTAINTY" default:"true" yaml:"track_uncertainty"`
	DerivativeStep   float64  `envconfig:"DERIVATIVE_STEP" default:"1.4901161193847656e-08" yaml:"derivative_step"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		LogDevelopment:   false,
		LogOutputs:       []string{"stderr"},
		TrackUncertainty: qfloat.DefaultTrackUncertainty,
		DerivativeStep:   deriv.DefaultStep,
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns Default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// LoadYAML reads a YAML file over Default; keys absent from the file keep
// their default values.
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return ParseYAML(data)
}

// ParseYAML decodes YAML bytes over Default.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the log level and the derivative step.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if math.IsNaN(c.DerivativeStep) || math.IsInf(c.DerivativeStep, 0) || c.DerivativeStep <= 0 {
		return fmt.Errorf("%w: derivative step %g must be finite and positive", ErrInvalid, c.DerivativeStep)
	}

	return nil
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:       c.LogLevel,
		Development: c.LogDevelopment,
		OutputPaths: c.LogOutputs,
	}
}

// Logger builds the configured logger.
func (c *Config) Logger() (*logging.Logger, error) {
	return logging.New(c.Logging())
}

// Factory builds a qfloat.Factory that reports to logger (nil disables
// logging). The configuration must be valid.
func (c *Config) Factory(logger *logging.Logger) (*qfloat.Factory, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []qfloat.Option{
		qfloat.WithDerivativeStep(c.DerivativeStep),
		qfloat.WithLogger(logger.For(logging.ComponentQFloat)),
	}
	if !c.TrackUncertainty {
		opts = append(opts, qfloat.WithoutUncertainty())
	}

	return qfloat.NewFactory(opts...), nil
}
