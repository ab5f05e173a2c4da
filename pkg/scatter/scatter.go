// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package scatter renders scatter plots of paired samples as
// self-contained HTML documents, using go-echarts. The plot is a
// presentation collaborator only: nothing in the numeric pipeline
// consumes its output.
package scatter

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ErrLengthMismatch indicates x and y sequences of unequal length.
var ErrLengthMismatch = errors.New("scatter series have different lengths")

// Plot describes one scatter chart.
type Plot struct {
	// Title is the chart heading.
	Title string

	// Subtitle is rendered under the title. Optional.
	Subtitle string

	// XLabel and YLabel name the axes.
	XLabel string
	YLabel string

	// Series names the point series. Defaults to "observations".
	Series string
}

// Render writes the chart for the paired samples xs, ys to w as a
// standalone HTML page.
//
// Outputs:
//   - error: ErrLengthMismatch, or a rendering failure from go-echarts.
func (p Plot) Render(w io.Writer, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return ErrLengthMismatch
	}

	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: p.Title, Subtitle: p.Subtitle}),
		charts.WithXAxisOpts(opts.XAxis{Name: p.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.YLabel, Type: "value"}),
	)

	points := make([]opts.ScatterData, len(xs))
	for i := range xs {
		points[i] = opts.ScatterData{
			Value:      []float64{xs[i], ys[i]},
			SymbolSize: 6,
		}
	}

	name := p.Series
	if name == "" {
		name = "observations"
	}
	chart.AddSeries(name, points)

	return chart.Render(w)
}

// RenderFile renders the chart into an HTML file, creating parent
// directories as needed.
func (p Plot) RenderFile(path string, xs, ys []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Render(f, xs, ys)
}
