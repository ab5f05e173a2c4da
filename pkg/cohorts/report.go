// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cohorts

// Report holds one simulation run's tally together with the metadata
// needed to reproduce it. The probability accessors are pure functions
// of the tally.
//
// The conditional probability for an empty cohort divides by zero and
// yields NaN. With the uniform cohort draw an empty cohort is
// vanishingly unlikely at realistic population sizes, and the division
// is intentionally not guarded.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string

	// Seed is the PCG seed that produced the tally.
	Seed uint64

	// Model names the purchase model used ("age-linked", "uniform", "custom").
	Model string

	// Tally holds the per-cohort counts.
	Tally Tally
}

// PPurchaseGiven returns P(purchase | cohort d): the fraction of
// shoppers in d that purchased.
func (r *Report) PPurchaseGiven(d Decade) float64 {
	return float64(r.Tally.purchases[d]) / float64(r.Tally.totals[d])
}

// PDecade returns P(cohort d): the fraction of the whole population in d.
func (r *Report) PDecade(d Decade) float64 {
	return float64(r.Tally.totals[d]) / float64(r.Tally.population)
}

// PPurchase returns P(purchase): the overall purchase probability
// regardless of cohort.
func (r *Report) PPurchase() float64 {
	return float64(r.Tally.totalPurchases) / float64(r.Tally.population)
}

// PJoint returns P(cohort d, purchase): purchases in d over the whole
// population, not over the cohort.
func (r *Report) PJoint(d Decade) float64 {
	return float64(r.Tally.purchases[d]) / float64(r.Tally.population)
}

// IndependenceGap returns P(d, purchase) - P(d)*P(purchase). Under
// independence the joint probability factors and the gap converges to
// zero as the population grows; under an age-linked model it does not.
func (r *Report) IndependenceGap(d Decade) float64 {
	return r.PJoint(d) - r.PDecade(d)*r.PPurchase()
}

// Row is the per-cohort breakdown used for tables and JSON output.
type Row struct {
	Decade      string  `json:"decade"`
	Total       int     `json:"total"`
	Purchases   int     `json:"purchases"`
	Conditional float64 `json:"p_purchase_given_decade"`
	Marginal    float64 `json:"p_decade"`
	Joint       float64 `json:"p_joint"`
	Product     float64 `json:"p_decade_times_p_purchase"`
	Gap         float64 `json:"independence_gap"`
}

// Rows returns the per-cohort breakdown in ascending age order.
func (r *Report) Rows() []Row {
	rows := make([]Row, 0, NumDecades)
	for _, d := range AllDecades() {
		rows = append(rows, Row{
			Decade:      d.String(),
			Total:       r.Tally.Total(d),
			Purchases:   r.Tally.Purchases(d),
			Conditional: r.PPurchaseGiven(d),
			Marginal:    r.PDecade(d),
			Joint:       r.PJoint(d),
			Product:     r.PDecade(d) * r.PPurchase(),
			Gap:         r.IndependenceGap(d),
		})
	}
	return rows
}
