// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/shopstats/pkg/pagespeed"
)

func TestSelectScenarios(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		got, err := selectScenarios("all")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("single", func(t *testing.T) {
		got, err := selectScenarios("affine")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, pagespeed.Affine, got[0])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := selectScenarios("cubic")
		assert.Error(t, err)
	})
}

// TestCorrelateCommand_JSON runs all three scenarios seeded and checks
// the qualitative expectations: near-zero, negative, and near -1.
func TestCorrelateCommand_JSON(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"correlate", "--json", "--quiet",
			"--n", "1000", "--seed", "42", "--scenario", "all"})
		require.NoError(t, rootCmd.Execute())
	})

	var results []pagespeed.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	byName := map[string]pagespeed.Result{}
	for _, r := range results {
		byName[r.Scenario] = r
	}

	assert.InDelta(t, 0, byName["independent"].Correlation, 0.1)
	assert.Negative(t, byName["inverse"].Correlation)
	assert.InDelta(t, -1.0, byName["affine"].Correlation, 1e-9)
}

// TestCorrelateCommand_WritesPlots checks the scatter HTML files land
// in the requested directory.
func TestCorrelateCommand_WritesPlots(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()

	captureStdout(t, func() {
		rootCmd.SetArgs([]string{"correlate", "--quiet", "--json=false",
			"--n", "50", "--seed", "7", "--scenario", "inverse",
			"--plot", dir})
		require.NoError(t, rootCmd.Execute())
	})

	data, err := os.ReadFile(filepath.Join(dir, "inverse.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "scatter")
}
