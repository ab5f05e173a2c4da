// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads and validates experiment configuration files.
//
// A config file is YAML with two top-level sections, one per
// experiment. Both sections are optional; missing values fall back to
// the canonical defaults.
//
//	cohorts:
//	  population: 100000
//	  seed: 0
//	  model: age-linked      # or: uniform
//	  rate: 0.4              # uniform model only
//	correlate:
//	  samples: 1000
//	  speed_mean: 3.0
//	  speed_stddev: 1.0
//	  amount_mean: 50.0
//	  amount_stddev: 10.0
//	  plot_dir: ./plots
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the validator instance for config structs.
var validate = validator.New()

// CohortsConfig configures the cohort purchase simulation.
type CohortsConfig struct {
	// Population is the number of synthetic shoppers.
	Population int `yaml:"population" validate:"gte=1"`

	// Seed feeds the PCG generator; the same seed reproduces the run.
	Seed uint64 `yaml:"seed"`

	// Model selects the purchase model.
	Model string `yaml:"model" validate:"oneof=age-linked uniform"`

	// Rate is the shared purchase probability for the uniform model.
	Rate float64 `yaml:"rate" validate:"gte=0,lte=1"`
}

// CorrelateConfig configures the page-speed correlation scenarios.
type CorrelateConfig struct {
	// Samples is the number of paired observations per scenario.
	Samples int `yaml:"samples" validate:"gte=2"`

	// Page-speed distribution parameters (seconds).
	SpeedMean   float64 `yaml:"speed_mean"`
	SpeedStdDev float64 `yaml:"speed_stddev" validate:"gte=0"`

	// Purchase-amount distribution parameters (dollars).
	AmountMean   float64 `yaml:"amount_mean"`
	AmountStdDev float64 `yaml:"amount_stddev" validate:"gte=0"`

	// PlotDir is where scatter HTML files are written. Empty disables
	// plotting.
	PlotDir string `yaml:"plot_dir"`
}

// Config is the root of an experiment configuration file.
type Config struct {
	Cohorts   CohortsConfig   `yaml:"cohorts"`
	Correlate CorrelateConfig `yaml:"correlate"`
}

// Default returns the canonical configuration: the standard experiment
// sizes with the age-linked model and a 40% uniform fallback rate.
func Default() *Config {
	return &Config{
		Cohorts: CohortsConfig{
			Population: 100_000,
			Seed:       0,
			Model:      "age-linked",
			Rate:       0.4,
		},
		Correlate: CorrelateConfig{
			Samples:      1000,
			SpeedMean:    3.0,
			SpeedStdDev:  1.0,
			AmountMean:   50.0,
			AmountStdDev: 10.0,
		},
	}
}

// Load reads, merges, and validates a YAML config file. Fields absent
// from the file keep their default values.
//
// Outputs:
//   - *Config: The validated configuration.
//   - error: Read, parse, or validation failure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
