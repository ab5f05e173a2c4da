// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/AleutianAI/shopstats/pkg/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shopstats",
		Short: "Synthetic purchase-behavior experiments and their statistics",
		Long: `shopstats runs two synthetic e-commerce experiments: a cohort purchase
simulation that derives conditional, marginal, and joint purchase
probabilities per age decade, and a page-speed correlation study that
computes covariance and correlation under three dependence scenarios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cohortsCmd = &cobra.Command{
		Use:   "cohorts",
		Short: "Simulate purchases across age-decade cohorts",
		Long: `Generates a synthetic shopper population with a uniformly random age
decade per shopper and a purchase draw whose probability depends on the
selected model, then reports P(purchase|decade), P(decade), P(purchase),
the joint P(decade,purchase), and the independence gap per cohort.`,
		Args: cobra.NoArgs,
		RunE: runCohorts,
	}

	correlateCmd = &cobra.Command{
		Use:   "correlate",
		Short: "Generate page-speed / purchase-amount pairs and correlate them",
		Long: `Generates paired page-speed and purchase-amount samples under one or all
of three scenarios (independent, inverse, affine) and reports their
covariance and Pearson correlation, optionally rendering scatter plots.`,
		Args: cobra.NoArgs,
		RunE: runCorrelate,
	}

	// Global flags.
	verbose bool
	quiet   bool
	jsonOut bool
	cfgPath string

	// cohorts flags.
	cohortN     int
	cohortSeed  uint64
	cohortModel string
	cohortRate  float64
	focusDecade string

	// correlate flags.
	corrN        int
	corrSeed     uint64
	corrScenario string
	plotDir      string

	logger = logging.Default()
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress log output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print results as JSON on stdout")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a YAML experiment config")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.New(logging.Config{
			Level:   level,
			Service: "shopstats",
			Quiet:   quiet,
		})
	}

	rootCmd.AddCommand(cohortsCmd)
	cohortsCmd.Flags().IntVar(&cohortN, "n", 0,
		"Population size (default from config, 100000)")
	cohortsCmd.Flags().Uint64Var(&cohortSeed, "seed", 0,
		"PCG seed; the same seed reproduces the run exactly")
	cohortsCmd.Flags().StringVar(&cohortModel, "model", "",
		"Purchase model: age-linked (p = decade/100) or uniform")
	cohortsCmd.Flags().Float64Var(&cohortRate, "rate", -1,
		"Shared purchase probability for the uniform model")
	cohortsCmd.Flags().StringVar(&focusDecade, "decade", "30",
		"Cohort for the detailed conditional-probability walkthrough")

	rootCmd.AddCommand(correlateCmd)
	correlateCmd.Flags().IntVar(&corrN, "n", 0,
		"Number of sample pairs per scenario (default from config, 1000)")
	correlateCmd.Flags().Uint64Var(&corrSeed, "seed", 0,
		"PCG seed; omitted means a time-derived seed")
	correlateCmd.Flags().StringVar(&corrScenario, "scenario", "all",
		"Scenario to run: independent, inverse, affine, or all")
	correlateCmd.Flags().StringVar(&plotDir, "plot", "",
		"Directory for scatter plot HTML files (empty disables plotting)")
}
