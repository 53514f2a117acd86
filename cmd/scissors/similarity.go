// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scissors/projection"
	"github.com/katalvlaran/scissors/store"
)

func newSimilarityCmd(a *app) *cobra.Command {
	var in, out, channel, truth string
	cmd := &cobra.Command{
		Use:   "similarity",
		Short: "Estimate all-vs-all Tanimotos from stored SCISSORS vectors",
		Long: `Reads <channel>_vectors, computes the Tanimoto estimate of every pair and
optionally writes <channel>_similarity. With --truth STORE:NAME the estimate
is compared against a reference matrix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimilarity(cmd.Context(), cmd.OutOrStdout(), in, out, channel, truth)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&in, "input", "i", "", "store with <channel>_vectors")
	fs.StringVarP(&out, "output", "o", "", "store receiving <channel>_similarity")
	fs.StringVar(&channel, "channel", projection.ChannelShape, "channel to compare")
	fs.StringVar(&truth, "truth", "", "reference Tanimotos as STORE:NAME")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runSimilarity(ctx context.Context, w io.Writer, in, out, channel, truth string) error {
	return withStore(in, func(src *store.DB) error {
		vecs, err := src.Get(ctx, projection.VectorsName(channel))
		if err != nil {
			return err
		}
		sim, err := projection.VectorTanimoto(vecs, vecs, nil, nil)
		if err != nil {
			return err
		}
		if out != "" {
			err = withStore(out, func(dst *store.DB) error {
				return dst.Put(ctx, projection.SimilarityName(channel), sim)
			})
			if err != nil {
				return err
			}
		}
		if truth == "" {
			summary(w, "similarity "+channel, "pairs", fmt.Sprintf("%d×%d", sim.Rows(), sim.Cols()))
			return nil
		}

		path, name, ok := splitRef(truth)
		if !ok {
			return fmt.Errorf("--truth %q: want STORE:NAME", truth)
		}
		return withStore(path, func(ref *store.DB) error {
			want, err := ref.Get(ctx, name)
			if err != nil {
				return err
			}
			q, err := projection.Evaluate(sim, want)
			if err != nil {
				return err
			}
			summary(w, "similarity "+channel+" vs "+name,
				"pairs", strconv.Itoa(q.N),
				"MAE", fmt.Sprintf("%.6f", q.MAE),
				"RMSE", fmt.Sprintf("%.6f", q.RMSE),
				"max abs", fmt.Sprintf("%.6f", q.MaxAbs),
				"pearson", fmt.Sprintf("%.6f", q.Pearson),
			)

			return nil
		})
	})
}

// splitRef splits STORE:NAME at the last colon.
func splitRef(ref string) (path, name string, ok bool) {
	i := strings.LastIndexByte(ref, ':')
	if i <= 0 || i == len(ref)-1 {
		return "", "", false
	}

	return ref[:i], ref[i+1:], true
}
