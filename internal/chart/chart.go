// SPDX-License-Identifier: MIT

// Package chart renders eigenvalue spectra of SCISSORS basis kernels.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData indicates an empty spectrum.
var ErrNoData = errors.New("chart: no eigenvalues to plot")

// Size of rendered charts.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Explained returns the cumulative fraction of Σ|λ| captured by the first
// k+1 eigenvalues, for every k. An all-zero spectrum yields zeros.
func Explained(eigenvalues []float64) []float64 {
	out := make([]float64, len(eigenvalues))
	var total float64
	for _, v := range eigenvalues {
		total += math.Abs(v)
	}
	if total == 0 {
		return out
	}
	for i, v := range eigenvalues {
		out[i] = math.Abs(v) / total
	}
	floats.CumSum(out, out)

	return out
}

// Scree writes a scree plot (eigenvalue against component index, 1-based)
// in the given format ("png", "svg", "pdf", ... as accepted by gonum/plot).
//
// Errors: ErrNoData, unsupported format, writer errors.
func Scree(w io.Writer, eigenvalues []float64, format string) error {
	if len(eigenvalues) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Eigenvalue spectrum"
	p.X.Label.Text = "component"
	p.Y.Label.Text = "eigenvalue"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(eigenvalues))
	for i, v := range eigenvalues {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	p.Add(line, points)
	p.Legend.Add(fmt.Sprintf("λ (%d retained)", len(eigenvalues)), line, points)

	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}
