// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cohorts

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// DefaultPopulation is the population size used when none is given.
const DefaultPopulation = 100_000

// Tally accumulates the per-cohort counts of a single simulation pass.
// All cohorts are present from the start with zero counts; the key set
// never grows or shrinks.
//
// Invariants after a run:
//   - purchases[d] <= totals[d] for every cohort d
//   - sum of totals equals the population size
//   - sum of purchases equals the grand purchase total
type Tally struct {
	totals         [NumDecades]int
	purchases      [NumDecades]int
	totalPurchases int
	population     int
}

// Total returns the number of shoppers in cohort d.
func (t *Tally) Total(d Decade) int {
	return t.totals[d]
}

// Purchases returns the number of purchasing shoppers in cohort d.
func (t *Tally) Purchases(d Decade) int {
	return t.purchases[d]
}

// TotalPurchases returns the grand purchase count across all cohorts.
func (t *Tally) TotalPurchases() int {
	return t.totalPurchases
}

// Population returns the number of shoppers generated.
func (t *Tally) Population() int {
	return t.population
}

// Simulator generates a synthetic shopper population and tallies
// purchases per cohort.
//
// Description:
//
//	Each shopper is drawn independently: a cohort chosen uniformly from
//	the fixed decade set, then a Bernoulli purchase draw with the
//	model's probability for that cohort. The tally is mutated exactly
//	once per shopper.
//
//	Randomness comes from a PCG generator (math/rand/v2) seeded with
//	(seed, seed). The generator choice is part of the contract: a run
//	is exactly reproducible for a given seed, but counts are not
//	comparable with implementations built on a different generator.
//
// Thread Safety: A Simulator is immutable after construction and safe
// to share; each Run uses its own generator instance.
type Simulator struct {
	population int
	model      PurchaseModel
	seed       uint64
}

// NewSimulator creates a simulator for a population of n shoppers.
//
// Inputs:
//   - n: Population size. Must be at least 1.
//   - model: Per-cohort purchase probabilities.
//   - seed: PCG seed. The same seed always yields the same tally.
//
// Outputs:
//   - *Simulator: The configured simulator.
//   - error: ErrInvalidPopulation if n < 1.
func NewSimulator(n int, model PurchaseModel, seed uint64) (*Simulator, error) {
	if n < 1 {
		return nil, ErrInvalidPopulation
	}
	return &Simulator{population: n, model: model, seed: seed}, nil
}

// Run executes the generation pass and returns the derived report.
func (s *Simulator) Run() *Report {
	rng := rand.New(rand.NewPCG(s.seed, s.seed))
	decades := AllDecades()

	tally := Tally{population: s.population}
	for i := 0; i < s.population; i++ {
		d := decades[rng.IntN(NumDecades)]
		tally.totals[d]++
		if rng.Float64() < s.model.Probability(d) {
			tally.totalPurchases++
			tally.purchases[d]++
		}
	}

	return &Report{
		RunID: uuid.NewString(),
		Seed:  s.seed,
		Model: s.model.Name(),
		Tally: tally,
	}
}
