// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/shopstats/pkg/pagespeed"
	"github.com/AleutianAI/shopstats/pkg/scatter"
	"github.com/AleutianAI/shopstats/pkg/ux"
)

func runCorrelate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	params := pagespeed.Params{
		N:            cfg.Correlate.Samples,
		SpeedMean:    cfg.Correlate.SpeedMean,
		SpeedStdDev:  cfg.Correlate.SpeedStdDev,
		AmountMean:   cfg.Correlate.AmountMean,
		AmountStdDev: cfg.Correlate.AmountStdDev,
	}
	if cmd.Flags().Changed("n") {
		params.N = corrN
	}

	// Unseeded by default; without an explicit seed each run draws
	// fresh samples.
	seed := corrSeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	outDir := cfg.Correlate.PlotDir
	if cmd.Flags().Changed("plot") {
		outDir = plotDir
	}

	scenarios, err := selectScenarios(corrScenario)
	if err != nil {
		return err
	}

	results := make([]*pagespeed.Result, 0, len(scenarios))
	for _, s := range scenarios {
		result, pair, err := s.Run(params, seed)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", s, err)
		}
		logger.Debug("scenario analyzed",
			"scenario", s.String(),
			"covariance", result.Covariance,
			"correlation", result.Correlation)
		results = append(results, result)

		if outDir != "" {
			path := filepath.Join(outDir, s.String()+".html")
			plot := scatter.Plot{
				Title:    "Page Speed vs Purchase Amount",
				Subtitle: fmt.Sprintf("scenario: %s, n=%d, seed=%d", s, params.N, seed),
				XLabel:   "page speed (s)",
				YLabel:   "purchase amount ($)",
				Series:   s.String(),
			}
			if err := plot.RenderFile(path, pair.PageSpeeds, pair.Amounts); err != nil {
				return fmt.Errorf("render %s: %w", path, err)
			}
			logger.Info("scatter plot written", "path", path)
		}
	}

	if jsonOut {
		return printJSON(results)
	}

	printCorrelateResults(results, seed)
	return nil
}

// selectScenarios resolves the --scenario flag into the run list.
func selectScenarios(name string) ([]pagespeed.Scenario, error) {
	if name == "all" {
		return pagespeed.AllScenarios(), nil
	}
	s, err := pagespeed.ParseScenario(name)
	if err != nil {
		return nil, err
	}
	return []pagespeed.Scenario{s}, nil
}

func printCorrelateResults(results []*pagespeed.Result, seed uint64) {
	ux.Title("Page-Speed / Purchase-Amount Correlation")
	ux.KeyValue("seed", fmt.Sprintf("%d", seed))
	fmt.Println()

	header := []string{"scenario", "n", "covariance", "correlation"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Scenario,
			fmt.Sprintf("%d", r.N),
			fmt.Sprintf("%+.4f", r.Covariance),
			fmt.Sprintf("%+.6f", r.Correlation),
		})
	}
	fmt.Print(ux.Table(header, rows))
	ux.Muted("Correlation is unit-free and bounded in [-1, 1]; covariance is not.")
}
