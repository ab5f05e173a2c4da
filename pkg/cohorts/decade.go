// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package cohorts simulates purchase behavior across age-decade cohorts
// and derives conditional, marginal, and joint purchase probabilities
// from the resulting tallies.
package cohorts

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrUnknownDecade indicates a label outside the fixed cohort set.
	ErrUnknownDecade = errors.New("unknown age decade")

	// ErrInvalidProbability indicates a purchase probability outside [0, 1].
	ErrInvalidProbability = errors.New("purchase probability out of [0, 1]")

	// ErrInvalidPopulation indicates a non-positive population size.
	ErrInvalidPopulation = errors.New("population size must be at least 1")
)

// -----------------------------------------------------------------------------
// Decade
// -----------------------------------------------------------------------------

// Decade is an age-decade cohort label. The set is closed: shoppers are
// in their 20s through their 70s. Tallies are stored in fixed-size
// arrays indexed by Decade, so an out-of-range value is impossible to
// tally rather than merely unlikely.
type Decade int

const (
	// Decade20 is the 20-29 cohort.
	Decade20 Decade = iota
	// Decade30 is the 30-39 cohort.
	Decade30
	// Decade40 is the 40-49 cohort.
	Decade40
	// Decade50 is the 50-59 cohort.
	Decade50
	// Decade60 is the 60-69 cohort.
	Decade60
	// Decade70 is the 70-79 cohort.
	Decade70

	// NumDecades is the size of the cohort set.
	NumDecades = 6
)

// Years returns the decade's lower age bound (20, 30, ... 70).
func (d Decade) Years() int {
	return 20 + int(d)*10
}

// String returns the cohort label, e.g. "30s".
func (d Decade) String() string {
	if d < 0 || d >= NumDecades {
		return "unknown"
	}
	return fmt.Sprintf("%ds", d.Years())
}

// Valid reports whether d is in the cohort set.
func (d Decade) Valid() bool {
	return d >= 0 && d < NumDecades
}

// AllDecades returns the cohort set in ascending age order.
func AllDecades() []Decade {
	return []Decade{Decade20, Decade30, Decade40, Decade50, Decade60, Decade70}
}

// ParseDecade converts a label such as "30", "30s", or "30-39" into a
// Decade.
//
// Outputs:
//   - Decade: The matching cohort.
//   - error: ErrUnknownDecade if the label is outside the fixed set.
func ParseDecade(s string) (Decade, error) {
	for _, d := range AllDecades() {
		switch s {
		case fmt.Sprintf("%d", d.Years()),
			d.String(),
			fmt.Sprintf("%d-%d", d.Years(), d.Years()+9):
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDecade, s)
}
