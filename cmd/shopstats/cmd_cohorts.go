// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/shopstats/pkg/cohorts"
	"github.com/AleutianAI/shopstats/pkg/config"
	"github.com/AleutianAI/shopstats/pkg/ux"
)

// cohortsResult is the JSON shape of one simulation run.
type cohortsResult struct {
	RunID          string        `json:"run_id"`
	Seed           uint64        `json:"seed"`
	Model          string        `json:"model"`
	Population     int           `json:"population"`
	TotalPurchases int           `json:"total_purchases"`
	PPurchase      float64       `json:"p_purchase"`
	Cohorts        []cohorts.Row `json:"cohorts"`
}

func runCohorts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flag overrides on top of the config file.
	n := cfg.Cohorts.Population
	if cmd.Flags().Changed("n") {
		n = cohortN
	}
	seed := cfg.Cohorts.Seed
	if cmd.Flags().Changed("seed") {
		seed = cohortSeed
	}
	modelName := cfg.Cohorts.Model
	if cmd.Flags().Changed("model") {
		modelName = cohortModel
	}
	rate := cfg.Cohorts.Rate
	if cmd.Flags().Changed("rate") {
		rate = cohortRate
	}

	model, err := buildModel(modelName, rate)
	if err != nil {
		return err
	}

	var focus *cohorts.Decade
	if focusDecade != "" {
		d, err := cohorts.ParseDecade(focusDecade)
		if err != nil {
			return err
		}
		focus = &d
	}

	sim, err := cohorts.NewSimulator(n, model, seed)
	if err != nil {
		return err
	}

	logger.Debug("starting cohort simulation",
		"population", n, "model", model.Name(), "seed", seed)
	report := sim.Run()
	logger.Info("simulation finished",
		"run_id", report.RunID,
		"population", n,
		"total_purchases", report.Tally.TotalPurchases())

	if jsonOut {
		return printJSON(cohortsResult{
			RunID:          report.RunID,
			Seed:           report.Seed,
			Model:          report.Model,
			Population:     report.Tally.Population(),
			TotalPurchases: report.Tally.TotalPurchases(),
			PPurchase:      report.PPurchase(),
			Cohorts:        report.Rows(),
		})
	}

	printCohortReport(report)
	if focus != nil {
		printFocusDecade(report, *focus)
	}
	return nil
}

// buildModel resolves the model name and rate into a PurchaseModel.
func buildModel(name string, rate float64) (cohorts.PurchaseModel, error) {
	switch name {
	case "age-linked":
		return cohorts.AgeLinkedModel(), nil
	case "uniform":
		return cohorts.UniformModel(rate)
	default:
		return cohorts.PurchaseModel{}, fmt.Errorf("unknown purchase model %q", name)
	}
}

func printCohortReport(report *cohorts.Report) {
	ux.Title("Cohort Purchase Simulation")
	ux.KeyValue("run", report.RunID)
	ux.KeyValue("model", report.Model)
	ux.KeyValue("seed", fmt.Sprintf("%d", report.Seed))
	ux.KeyValue("population", fmt.Sprintf("%d", report.Tally.Population()))
	ux.KeyValue("total purchases", fmt.Sprintf("%d", report.Tally.TotalPurchases()))
	ux.KeyValue("P(purchase)", formatProb(report.PPurchase()))
	fmt.Println()

	header := []string{"decade", "total", "purchases",
		"P(buy|d)", "P(d)", "P(d,buy)", "P(d)P(buy)", "gap"}
	rows := make([][]string, 0, cohorts.NumDecades)
	for _, row := range report.Rows() {
		rows = append(rows, []string{
			row.Decade,
			fmt.Sprintf("%d", row.Total),
			fmt.Sprintf("%d", row.Purchases),
			formatProb(row.Conditional),
			formatProb(row.Marginal),
			formatProb(row.Joint),
			formatProb(row.Product),
			fmt.Sprintf("%+.4f", row.Gap),
		})
	}
	fmt.Print(ux.Table(header, rows))
}

// printFocusDecade walks through the probability breakdown for one cohort:
// the conditional, the marginals, the joint, the product, and the
// identity P(buy|d) = P(d,buy)/P(d).
func printFocusDecade(report *cohorts.Report, d cohorts.Decade) {
	fmt.Println()
	ux.Title(fmt.Sprintf("Focus: the %s cohort", d))
	ux.KeyValue(fmt.Sprintf("P(purchase | %s)", d), formatProb(report.PPurchaseGiven(d)))
	ux.KeyValue(fmt.Sprintf("P(%s)", d), formatProb(report.PDecade(d)))
	ux.KeyValue("P(purchase)", formatProb(report.PPurchase()))
	ux.KeyValue(fmt.Sprintf("P(%s, purchase)", d), formatProb(report.PJoint(d)))
	ux.KeyValue(fmt.Sprintf("P(%s)P(purchase)", d),
		formatProb(report.PDecade(d)*report.PPurchase()))
	ux.KeyValue("P(d,buy)/P(d)", formatProb(report.PJoint(d)/report.PDecade(d)))
	ux.Muted("When purchase is independent of age, P(d,buy) factors into P(d)P(buy).")
}

func formatProb(p float64) string {
	return fmt.Sprintf("%.6f", p)
}

// loadConfig returns the --config file merged over defaults, or plain
// defaults when no file is given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", cfgPath)
	return cfg, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
