// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scissors/internal/chart"
	"github.com/katalvlaran/scissors/internal/config"
	"github.com/katalvlaran/scissors/projection"
	"github.com/katalvlaran/scissors/store"
)

func newSpectrumCmd(a *app) *cobra.Command {
	var (
		bb, plotPath string
		model        modelFlags
	)
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Show the retained eigenvalue spectrum of a basis kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			model.apply(cmd.Flags(), &cfg)

			return runSpectrum(cmd.Context(), cmd.OutOrStdout(), cfg, bb, plotPath)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&bb, "bb", "", "store with basis-vs-basis similarities")
	fs.StringVar(&plotPath, "plot", "", "write a scree plot (format from extension: png, svg, pdf)")
	model.register(fs)
	_ = cmd.MarkFlagRequired("bb")

	return cmd
}

func runSpectrum(ctx context.Context, w io.Writer, cfg config.Config, bbPath, plotPath string) error {
	opts, err := cfg.ProjectionOptions()
	if err != nil {
		return err
	}
	if plotPath != "" && len(cfg.Channels) != 1 {
		return fmt.Errorf("--plot needs exactly one --channel")
	}

	return withStore(bbPath, func(db *store.DB) error {
		for _, ch := range cfg.Channels {
			k, err := projection.Pipeline{Channel: ch, UseOverlap: cfg.Overlap}.Load(ctx, db)
			if err != nil {
				return err
			}
			m, err := projection.New(k, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", ch, err)
			}
			ev, err := m.Eigenvalues()
			if err != nil {
				return fmt.Errorf("%s: %w", ch, err)
			}
			explained := chart.Explained(ev)
			kv := make([]string, 0, 2*len(ev))
			for i, v := range ev {
				kv = append(kv, fmt.Sprintf("λ%d", i+1), fmt.Sprintf("%12.6g  %6.2f%%", v, 100*explained[i]))
			}
			summary(w, fmt.Sprintf("spectrum %s (%d of %d retained)", ch, len(ev), m.BasisSize()), kv...)

			if plotPath != "" {
				if err = writePlot(plotPath, ev); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func writePlot(path string, ev []float64) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return chart.Scree(f, ev, format)
}
