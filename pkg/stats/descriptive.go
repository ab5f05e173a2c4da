// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package stats provides descriptive statistics over float64 samples.
//
// The kernel functions (Mean, DeMean, Variance, StdDev, Covariance,
// Correlation) are deliberately unguarded: calling Covariance on fewer
// than two observations, or Correlation on a constant sequence, divides
// by zero and yields NaN or an infinity, exactly as the arithmetic says.
// Callers that want validation up front should use Describe or the
// checked Paired* wrappers, which return sentinel errors instead.
package stats

import (
	"errors"
	"math"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrInsufficientSamples indicates fewer than two observations.
	ErrInsufficientSamples = errors.New("insufficient samples for statistical analysis")

	// ErrZeroVariance indicates a constant sample set.
	ErrZeroVariance = errors.New("sample set has zero variance")

	// ErrLengthMismatch indicates paired samples of unequal length.
	ErrLengthMismatch = errors.New("paired samples have different lengths")
)

// -----------------------------------------------------------------------------
// Kernels
// -----------------------------------------------------------------------------

// Mean returns the arithmetic mean of x.
//
// Returns NaN for an empty sample.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// DeMean returns a new slice where each element is x[i] minus the mean
// of x. Length and order are preserved.
func DeMean(x []float64) []float64 {
	m := Mean(x)
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v - m
	}
	return out
}

// Variance returns the bias-corrected sample variance of x.
//
// Precondition: len(x) >= 2. With fewer observations the n-1 divisor is
// zero or negative and the result is NaN or meaningless; this is not
// guarded here.
func Variance(x []float64) float64 {
	n := len(x)
	m := Mean(x)
	var sumSq float64
	for _, v := range x {
		d := v - m
		sumSq += d * d
	}
	return sumSq / float64(n-1)
}

// StdDev returns the bias-corrected sample standard deviation of x.
//
// Same precondition as Variance.
func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Covariance returns the bias-corrected sample covariance of the paired
// samples x and y: the dot product of their mean deviations divided by
// n-1.
//
// Description:
//
//	Covariance measures how two variables vary in tandem from their
//	means. Each sample is treated as a vector of deviations from its
//	mean, and the result is the dot product of the two vectors scaled
//	by n-1. Positive values mean the variables move together, negative
//	values mean they move in opposition.
//
// Inputs:
//   - x: First sample. Must have the same length as y.
//   - y: Second sample.
//
// Outputs:
//   - float64: The sample covariance. NaN when n < 2.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Covariance(x, y []float64) float64 {
	n := len(x)
	dx := DeMean(x)
	dy := DeMean(y)
	var dot float64
	for i := range dx {
		dot += dx[i] * dy[i]
	}
	return dot / float64(n-1)
}

// Correlation returns the Pearson correlation coefficient of the paired
// samples x and y.
//
// Description:
//
//	Correlation normalizes covariance by the product of the two sample
//	standard deviations, producing a unit-free value in [-1, 1]: -1 is
//	a perfect inverse relationship, 1 a perfect positive one, 0 no
//	linear relationship.
//
// Inputs:
//   - x: First sample. Must have the same length as y.
//   - y: Second sample.
//
// Outputs:
//   - float64: The correlation coefficient. NaN or infinite when either
//     sample is constant (zero standard deviation) or n < 2; this
//     precondition is intentionally not checked here.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Correlation(x, y []float64) float64 {
	return Covariance(x, y) / StdDev(x) / StdDev(y)
}

// -----------------------------------------------------------------------------
// Checked wrappers
// -----------------------------------------------------------------------------

// PairedCovariance validates its inputs before computing Covariance.
//
// Outputs:
//   - float64: The sample covariance.
//   - error: ErrLengthMismatch or ErrInsufficientSamples.
func PairedCovariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrInsufficientSamples
	}
	return Covariance(x, y), nil
}

// PairedCorrelation validates its inputs before computing Correlation.
//
// Outputs:
//   - float64: The correlation coefficient in [-1, 1].
//   - error: ErrLengthMismatch, ErrInsufficientSamples, or
//     ErrZeroVariance when either sample is constant.
func PairedCorrelation(x, y []float64) (float64, error) {
	cov, err := PairedCovariance(x, y)
	if err != nil {
		return 0, err
	}
	sx := StdDev(x)
	sy := StdDev(y)
	if sx == 0 || sy == 0 {
		return 0, ErrZeroVariance
	}
	return cov / sx / sy, nil
}

// Summary holds the descriptive statistics of a single sample.
type Summary struct {
	// N is the number of observations.
	N int

	// Mean is the arithmetic mean.
	Mean float64

	// Variance is the bias-corrected sample variance.
	Variance float64

	// StdDev is the bias-corrected sample standard deviation.
	StdDev float64

	// Min and Max are the sample extremes.
	Min float64
	Max float64
}

// Describe computes a Summary for x.
//
// Outputs:
//   - *Summary: The descriptive statistics.
//   - error: ErrInsufficientSamples when len(x) < 2.
func Describe(x []float64) (*Summary, error) {
	if len(x) < 2 {
		return nil, ErrInsufficientSamples
	}
	min, max := x[0], x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	variance := Variance(x)
	return &Summary{
		N:        len(x),
		Mean:     Mean(x),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      min,
		Max:      max,
	}, nil
}
