// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scissors/basis"
	"github.com/katalvlaran/scissors/matrix"
	"github.com/katalvlaran/scissors/projection"
	"github.com/katalvlaran/scissors/store"
)

// BasisIndicesName is the dataset holding the sampled basis indices (1×k).
const BasisIndicesName = "basis_indices"

func newChooseBasisCmd(a *app) *cobra.Command {
	var (
		in, bbOut, lbOut string
		size             float64
		seed             uint64
		channels         []string
	)
	cmd := &cobra.Command{
		Use:   "choose-basis",
		Short: "Sample a basis subset from an all-vs-all library store",
		Long: `Reads every <channel>_overlap and <channel>_tanimoto N×N dataset of the
input store, samples a basis of the requested size, and writes the
basis-vs-basis and library-vs-basis slices under the same names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}
			if cmd.Flags().Changed("channel") {
				cfg.Channels = channels
			}
			var opts []basis.Option
			if cfg.Seed != nil {
				opts = append(opts, basis.WithSeed(*cfg.Seed))
			}

			return runChooseBasis(cmd.Context(), cmd.OutOrStdout(), cfg.Channels, in, bbOut, lbOut, size, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&in, "input", "i", "", "store with N×N library similarities")
	fs.Float64Var(&size, "size", 0, "basis size: proportion in (0,1] or count")
	fs.Uint64Var(&seed, "seed", 0, "seed for reproducible sampling")
	fs.StringVar(&bbOut, "bb-out", "", "output store for basis-vs-basis slices")
	fs.StringVar(&lbOut, "lb-out", "", "output store for library-vs-basis slices")
	fs.StringSliceVar(&channels, "channel", nil, "channels to slice (default: shape,color)")
	for _, name := range []string{"input", "size", "bb-out", "lb-out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runChooseBasis(ctx context.Context, w io.Writer, channels []string, in, bbOut, lbOut string,
	size float64, opts []basis.Option) error {
	return withStore(in, func(src *store.DB) error {
		names, err := src.Names(ctx)
		if err != nil {
			return err
		}
		var datasets []string
		for _, ch := range channels {
			for _, name := range []string{projection.OverlapName(ch), projection.TanimotoName(ch)} {
				if slices.Contains(names, name) {
					datasets = append(datasets, name)
				}
			}
		}
		if len(datasets) == 0 {
			return fmt.Errorf("%s: no similarity datasets for channels %v", in, channels)
		}

		first, err := src.Get(ctx, datasets[0])
		if err != nil {
			return err
		}
		idx, err := basis.Choose(first.Rows(), size, opts...)
		if err != nil {
			return err
		}

		return withStore(bbOut, func(bbDB *store.DB) error {
			return withStore(lbOut, func(lbDB *store.DB) error {
				for _, name := range datasets {
					all, err := src.Get(ctx, name)
					if err != nil {
						return err
					}
					bb, lb, err := basis.Split(all, idx)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					if err = bbDB.Put(ctx, name, bb); err != nil {
						return err
					}
					if err = lbDB.Put(ctx, name, lb); err != nil {
						return err
					}
				}
				row := make([]float64, len(idx))
				for i, v := range idx {
					row[i] = float64(v)
				}
				indices, err := matrix.NewFromSlice(1, len(idx), row)
				if err != nil {
					return err
				}
				if err = bbDB.Put(ctx, BasisIndicesName, indices); err != nil {
					return err
				}
				summary(w, "basis",
					"library", strconv.Itoa(first.Rows()),
					"basis", strconv.Itoa(len(idx)),
					"datasets", fmt.Sprint(datasets),
				)

				return nil
			})
		})
	})
}
