// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package pagespeed generates paired page-speed / purchase-amount
// samples under three scenarios of varying dependence, and analyzes
// their covariance and correlation.
package pagespeed

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/AleutianAI/shopstats/pkg/stats"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrUnknownScenario indicates a scenario name outside the fixed set.
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrInvalidSampleSize indicates fewer than two sample pairs, for
	// which covariance is undefined.
	ErrInvalidSampleSize = errors.New("sample size must be at least 2")
)

// -----------------------------------------------------------------------------
// Scenarios
// -----------------------------------------------------------------------------

// Scenario selects how purchase amounts relate to page speeds.
type Scenario int

const (
	// Independent draws amounts from their own normal distribution,
	// unrelated to page speed. Expected correlation near zero.
	Independent Scenario = iota

	// InverseLinked divides the amount draw by the page speed: slower
	// pages earn less. Expected correlation negative.
	InverseLinked

	// Affine sets amount = 100 - 3*speed exactly. Expected correlation
	// -1 up to floating-point rounding.
	Affine
)

// Affine scenario coefficients: amount = affineIntercept + affineSlope*speed.
const (
	affineIntercept = 100.0
	affineSlope     = -3.0
)

// String returns the scenario name.
func (s Scenario) String() string {
	switch s {
	case Independent:
		return "independent"
	case InverseLinked:
		return "inverse"
	case Affine:
		return "affine"
	default:
		return "unknown"
	}
}

// AllScenarios returns the scenario set.
func AllScenarios() []Scenario {
	return []Scenario{Independent, InverseLinked, Affine}
}

// ParseScenario converts a name into a Scenario.
func ParseScenario(name string) (Scenario, error) {
	for _, s := range AllScenarios() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// -----------------------------------------------------------------------------
// Generation
// -----------------------------------------------------------------------------

// Params holds the generation parameters for one scenario run.
type Params struct {
	// N is the number of sample pairs. Must be at least 2.
	N int

	// SpeedMean and SpeedStdDev parameterize the page-speed normal
	// distribution (seconds).
	SpeedMean   float64
	SpeedStdDev float64

	// AmountMean and AmountStdDev parameterize the purchase-amount
	// normal distribution (dollars). Ignored by the Affine scenario.
	AmountMean   float64
	AmountStdDev float64
}

// DefaultParams returns the canonical parameters: 1000 pairs, page
// speeds ~ Normal(3.0, 1.0), purchase amounts ~ Normal(50.0, 10.0).
func DefaultParams() Params {
	return Params{
		N:            1000,
		SpeedMean:    3.0,
		SpeedStdDev:  1.0,
		AmountMean:   50.0,
		AmountStdDev: 10.0,
	}
}

// SamplePair holds paired observations for the same synthetic visits.
// The sequences have equal length; index i is one visit.
type SamplePair struct {
	PageSpeeds []float64
	Amounts    []float64
}

// Generate produces a sample pair for the scenario.
//
// Inputs:
//   - p: Generation parameters. p.N must be at least 2.
//   - seed: PCG seed. The same seed always yields the same pair.
//
// Outputs:
//   - *SamplePair: The generated pair.
//   - error: ErrInvalidSampleSize if p.N < 2.
func (s Scenario) Generate(p Params, seed uint64) (*SamplePair, error) {
	if p.N < 2 {
		return nil, ErrInvalidSampleSize
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	speeds := make([]float64, p.N)
	for i := range speeds {
		speeds[i] = rng.NormFloat64()*p.SpeedStdDev + p.SpeedMean
	}

	amounts := make([]float64, p.N)
	switch s {
	case Independent:
		for i := range amounts {
			amounts[i] = rng.NormFloat64()*p.AmountStdDev + p.AmountMean
		}
	case InverseLinked:
		for i := range amounts {
			draw := rng.NormFloat64()*p.AmountStdDev + p.AmountMean
			amounts[i] = draw / speeds[i]
		}
	case Affine:
		for i := range amounts {
			amounts[i] = affineIntercept + affineSlope*speeds[i]
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScenario, s)
	}

	return &SamplePair{PageSpeeds: speeds, Amounts: amounts}, nil
}

// -----------------------------------------------------------------------------
// Analysis
// -----------------------------------------------------------------------------

// Result holds the covariance and correlation of one scenario run.
type Result struct {
	Scenario    string  `json:"scenario"`
	N           int     `json:"n"`
	Seed        uint64  `json:"seed"`
	Covariance  float64 `json:"covariance"`
	Correlation float64 `json:"correlation"`
}

// Run generates and analyzes a scenario in one step.
//
// Outputs:
//   - *Result: Covariance and correlation of the generated pair.
//   - *SamplePair: The pair itself, for plotting.
//   - error: Generation or analysis failure.
func (s Scenario) Run(p Params, seed uint64) (*Result, *SamplePair, error) {
	pair, err := s.Generate(p, seed)
	if err != nil {
		return nil, nil, err
	}

	cov, err := stats.PairedCovariance(pair.PageSpeeds, pair.Amounts)
	if err != nil {
		return nil, nil, fmt.Errorf("covariance: %w", err)
	}
	corr, err := stats.PairedCorrelation(pair.PageSpeeds, pair.Amounts)
	if err != nil {
		return nil, nil, fmt.Errorf("correlation: %w", err)
	}

	return &Result{
		Scenario:    s.String(),
		N:           p.N,
		Seed:        seed,
		Covariance:  cov,
		Correlation: corr,
	}, pair, nil
}
