// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/scissors/internal/config"
	"github.com/katalvlaran/scissors/projection"
)

// modelFlags are the projection settings shared by vectors and spectrum.
// A flag overrides the configuration only when given on the command line.
type modelFlags struct {
	overlap   bool
	imaginary bool
	center    bool
	solver    string
	tolerance float64
	channels  []string
}

func (m *modelFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&m.overlap, "overlap", false, "read <channel>_overlap inner products instead of Tanimotos")
	fs.BoolVar(&m.imaginary, "imaginary", false, "keep negative eigenvalues as imaginary dimensions")
	fs.BoolVar(&m.center, "center", false, "double-center the basis kernel")
	fs.StringVar(&m.solver, "solver", "gonum", "eigensolver: gonum or jacobi")
	fs.Float64Var(&m.tolerance, "tolerance", 0, "eigenvalue cutoff (default: automatic)")
	fs.StringSliceVar(&m.channels, "channel", nil, "channels to process (default: shape,color)")
}

func (m *modelFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("overlap") {
		cfg.Overlap = m.overlap
	}
	if fs.Changed("imaginary") {
		cfg.Mode = projection.ModePositive.String()
		if m.imaginary {
			cfg.Mode = projection.ModeImaginary.String()
		}
	}
	if fs.Changed("center") {
		cfg.Center = m.center
	}
	if fs.Changed("solver") {
		cfg.Solver = m.solver
	}
	if fs.Changed("tolerance") {
		tol := m.tolerance
		cfg.Tolerance = &tol
	}
	if fs.Changed("channel") {
		cfg.Channels = m.channels
	}
}
