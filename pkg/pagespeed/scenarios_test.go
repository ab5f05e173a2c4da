// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package pagespeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndependent_NearZeroCorrelation verifies that unrelated normals
// show no meaningful linear relationship at n=1000.
func TestIndependent_NearZeroCorrelation(t *testing.T) {
	result, pair, err := Independent.Run(DefaultParams(), 1)
	require.NoError(t, err)

	assert.Len(t, pair.PageSpeeds, 1000)
	assert.Len(t, pair.Amounts, 1000)
	assert.InDelta(t, 0, result.Correlation, 0.1,
		"independent draws should have correlation near zero")
}

// TestInverseLinked_NegativeCorrelation verifies the inverse
// relationship: dividing amounts by page speed makes slow pages earn
// less.
func TestInverseLinked_NegativeCorrelation(t *testing.T) {
	result, _, err := InverseLinked.Run(DefaultParams(), 1)
	require.NoError(t, err)

	assert.Negative(t, result.Correlation)
	assert.Negative(t, result.Covariance)
}

// TestAffine_PerfectNegativeCorrelation verifies the exact linear
// relationship produces correlation -1 up to rounding.
func TestAffine_PerfectNegativeCorrelation(t *testing.T) {
	result, pair, err := Affine.Run(DefaultParams(), 1)
	require.NoError(t, err)

	assert.InDelta(t, -1.0, result.Correlation, 1e-9)
	for i := range pair.PageSpeeds {
		assert.InDelta(t, 100-3*pair.PageSpeeds[i], pair.Amounts[i], 1e-12)
	}
}

// TestGenerate_Reproducible verifies the seeding contract.
func TestGenerate_Reproducible(t *testing.T) {
	first, err := InverseLinked.Generate(DefaultParams(), 77)
	require.NoError(t, err)
	second, err := InverseLinked.Generate(DefaultParams(), 77)
	require.NoError(t, err)

	assert.Equal(t, first.PageSpeeds, second.PageSpeeds)
	assert.Equal(t, first.Amounts, second.Amounts)

	other, err := InverseLinked.Generate(DefaultParams(), 78)
	require.NoError(t, err)
	assert.NotEqual(t, first.PageSpeeds, other.PageSpeeds)
}

func TestGenerate_RejectsTinySamples(t *testing.T) {
	p := DefaultParams()
	p.N = 1
	_, err := Independent.Generate(p, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleSize)
}

func TestParseScenario(t *testing.T) {
	for _, s := range AllScenarios() {
		got, err := ParseScenario(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseScenario("quadratic")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

// TestSpeedDistribution sanity-checks the generated page speeds against
// their distribution parameters.
func TestSpeedDistribution(t *testing.T) {
	p := DefaultParams()
	p.N = 10_000
	pair, err := Independent.Generate(p, 5)
	require.NoError(t, err)

	var sum float64
	for _, v := range pair.PageSpeeds {
		sum += v
	}
	assert.InDelta(t, p.SpeedMean, sum/float64(p.N), 0.05)
}
