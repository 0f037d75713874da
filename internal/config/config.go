package config

import (
	"fmt"
	"vendors/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// Report output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the application configuration structure.
// It contains the environment, where the scenario lives and how reports are
// produced.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Scenario locates the document describing provinces, cities, vendors and centers
	Scenario struct {
		// Path is the scenario file; its extension selects the decoder (yaml, json, toml, edn)
		Path string `env:"SCENARIO_PATH" env-default:"scenario.yml" yaml:"path"`
	} `yaml:"scenario"`

	// Report contains the settings of the report command
	Report struct {
		// Format is either "text" or "json"
		Format string `env:"REPORT_FORMAT" env-default:"text" yaml:"format"`
		// MetricsFile, when set, receives the fleet gauges in Prometheus textfile format
		MetricsFile string `env:"REPORT_METRICS_FILE" yaml:"metricsFile"`
		// Concurrency bounds how many centers are analyzed at once
		Concurrency int `env:"REPORT_CONCURRENCY" env-default:"4" yaml:"concurrency"`
	} `yaml:"report"`
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatText, FormatJSON:
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown report format %q", c.Report.Format)
	}
	if c.Report.Concurrency < 0 {
		return serrors.With(serrors.ErrBadRequest, "report concurrency must not be negative")
	}
	if c.Scenario.Path == "" {
		return serrors.With(serrors.ErrBadRequest, "scenario path is required")
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled, validated
// Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
