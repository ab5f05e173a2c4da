// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package cohorts

import "fmt"

// PurchaseModel maps each cohort to a purchase probability. The mapping
// is fixed at construction, so both the age-linked scenario and the
// age-independent scenario are expressible without code changes.
type PurchaseModel struct {
	name  string
	probs [NumDecades]float64
}

// AgeLinkedModel returns the model where older cohorts buy more:
// p(decade) = decade / 100, so the 20s cohort purchases with
// probability 0.20 and the 70s cohort with probability 0.70.
func AgeLinkedModel() PurchaseModel {
	m := PurchaseModel{name: "age-linked"}
	for _, d := range AllDecades() {
		m.probs[d] = float64(d.Years()) / 100.0
	}
	return m
}

// UniformModel returns the model where every cohort purchases with the
// same probability p, making purchase independent of age.
//
// Outputs:
//   - PurchaseModel: The constant-probability model.
//   - error: ErrInvalidProbability if p is outside [0, 1].
func UniformModel(p float64) (PurchaseModel, error) {
	if p < 0 || p > 1 {
		return PurchaseModel{}, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	m := PurchaseModel{name: "uniform"}
	for _, d := range AllDecades() {
		m.probs[d] = p
	}
	return m, nil
}

// CustomModel returns a model with an explicit probability per cohort.
// Every cohort must be present in the mapping.
//
// Outputs:
//   - PurchaseModel: The custom model.
//   - error: ErrUnknownDecade for a missing cohort, or
//     ErrInvalidProbability for a probability outside [0, 1].
func CustomModel(probs map[Decade]float64) (PurchaseModel, error) {
	m := PurchaseModel{name: "custom"}
	for _, d := range AllDecades() {
		p, ok := probs[d]
		if !ok {
			return PurchaseModel{}, fmt.Errorf("%w: no probability for %s", ErrUnknownDecade, d)
		}
		if p < 0 || p > 1 {
			return PurchaseModel{}, fmt.Errorf("%w: %s has %v", ErrInvalidProbability, d, p)
		}
		m.probs[d] = p
	}
	return m, nil
}

// Name returns the model's identifier ("age-linked", "uniform", "custom").
func (m PurchaseModel) Name() string {
	return m.name
}

// Probability returns the purchase probability for cohort d.
func (m PurchaseModel) Probability(d Decade) float64 {
	return m.probs[d]
}
