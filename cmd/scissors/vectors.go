// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scissors/internal/config"
	"github.com/katalvlaran/scissors/projection"
	"github.com/katalvlaran/scissors/store"
)

func newVectorsCmd(a *app) *cobra.Command {
	var (
		bb, lb, out             string
		dim, shapeDim, colorDim int
		quiet                   bool
		model                   modelFlags
	)
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Project library molecules into SCISSORS vector space",
		Long: `Builds one projection per channel from the basis-vs-basis store and
embeds the library-vs-basis rows. For each channel the output store receives
<channel>_vectors, <channel>_projection_matrix and <channel>_eigenvalues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			fs := cmd.Flags()
			model.apply(fs, &cfg)
			if fs.Changed("dim") {
				cfg.ShapeDim, cfg.ColorDim = dim, dim
			}
			if fs.Changed("shape-dim") {
				cfg.ShapeDim = shapeDim
			}
			if fs.Changed("color-dim") {
				cfg.ColorDim = colorDim
			}

			return runVectors(cmd.Context(), cmd.OutOrStdout(), cfg, bb, lb, out, quiet)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&bb, "bb", "", "store with basis-vs-basis similarities")
	fs.StringVar(&lb, "lb", "", "store with library-vs-basis similarities")
	fs.StringVarP(&out, "output", "o", "", "output store")
	fs.IntVarP(&dim, "dim", "d", projection.AllDims, "maximum dimensionality for every channel (-1: all)")
	fs.IntVar(&shapeDim, "shape-dim", projection.AllDims, "maximum shape dimensionality")
	fs.IntVar(&colorDim, "color-dim", projection.AllDims, "maximum color dimensionality")
	fs.BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	model.register(fs)
	_ = cmd.MarkFlagRequired("bb")
	_ = cmd.MarkFlagRequired("lb")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runVectors(ctx context.Context, w io.Writer, cfg config.Config, bbPath, lbPath, outPath string, quiet bool) error {
	opts, err := cfg.ProjectionOptions()
	if err != nil {
		return err
	}

	return withStore(bbPath, func(bb *store.DB) error {
		return withStore(lbPath, func(lb *store.DB) error {
			return withStore(outPath, func(out *store.DB) error {
				for _, ch := range cfg.Channels {
					p := projection.Pipeline{
						Channel:    ch,
						MaxDim:     cfg.DimFor(ch),
						UseOverlap: cfg.Overlap,
						Options:    opts,
					}
					logf(quiet, "%s: building projection", ch)
					res, err := p.Run(ctx, bb, lb)
					if err != nil {
						return err
					}
					if err = res.Save(ctx, out); err != nil {
						return err
					}
					if !quiet {
						summary(w, fmt.Sprintf("channel %s", ch),
							"basis", strconv.Itoa(res.Projection.BasisSize()),
							"retained", strconv.Itoa(res.Projection.Dim()),
							"vectors", fmt.Sprintf("%d×%d", res.Vectors.Rows(), res.Vectors.Cols()),
						)
					}
				}

				return nil
			})
		})
	})
}
