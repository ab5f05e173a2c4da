// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestBuildModel(t *testing.T) {
	t.Run("age-linked", func(t *testing.T) {
		m, err := buildModel("age-linked", -1)
		require.NoError(t, err)
		assert.Equal(t, "age-linked", m.Name())
	})

	t.Run("uniform", func(t *testing.T) {
		m, err := buildModel("uniform", 0.4)
		require.NoError(t, err)
		assert.Equal(t, "uniform", m.Name())
	})

	t.Run("uniform with bad rate", func(t *testing.T) {
		_, err := buildModel("uniform", 1.7)
		assert.Error(t, err)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := buildModel("quadratic", 0.5)
		assert.Error(t, err)
	})
}

// TestCohortsCommand_JSON runs the cohorts command end to end with
// --json and checks the result shape and invariants.
func TestCohortsCommand_JSON(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"cohorts", "--json", "--quiet",
			"--n", "10000", "--seed", "0", "--model", "age-linked"})
		require.NoError(t, rootCmd.Execute())
	})

	var result cohortsResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, uint64(0), result.Seed)
	assert.Equal(t, "age-linked", result.Model)
	assert.Equal(t, 10000, result.Population)
	require.Len(t, result.Cohorts, 6)

	var totals, purchases int
	for _, row := range result.Cohorts {
		totals += row.Total
		purchases += row.Purchases
	}
	assert.Equal(t, 10000, totals)
	assert.Equal(t, result.TotalPurchases, purchases)
	assert.InDelta(t, float64(result.TotalPurchases)/10000.0, result.PPurchase, 1e-9)
}

// TestCohortsCommand_Table runs the human-readable path and checks the
// focus-decade walkthrough appears.
func TestCohortsCommand_Table(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"cohorts", "--quiet", "--json=false",
			"--n", "5000", "--seed", "1", "--model", "uniform", "--rate", "0.4",
			"--decade", "30"})
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, out, "Cohort Purchase Simulation")
	assert.Contains(t, out, "20s")
	assert.Contains(t, out, "70s")
	assert.Contains(t, out, "P(purchase | 30s)")
}

func TestCohortsCommand_RejectsBadDecade(t *testing.T) {
	rootCmd.SetArgs([]string{"cohorts", "--quiet", "--json=false",
		"--n", "1000", "--seed", "1", "--model", "age-linked", "--decade", "80"})
	assert.Error(t, rootCmd.Execute())
}
