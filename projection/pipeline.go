// SPDX-License-Identifier: MIT

package projection

import (
	"context"
	"fmt"

	"github.com/katalvlaran/scissors/matrix"
)

// Conventional channel names of ROCS overlays.
const (
	ChannelShape = "shape"
	ChannelColor = "color"
)

// Dataset name suffixes used by Pipeline.
const (
	suffixOverlap     = "_overlap"
	suffixTanimoto    = "_tanimoto"
	suffixVectors     = "_vectors"
	suffixProjection  = "_projection_matrix"
	suffixEigenvalues = "_eigenvalues"
	suffixSimilarity  = "_similarity"
)

// OverlapName, TanimotoName, VectorsName, ProjectionName and EigenvaluesName
// return the dataset names a Pipeline reads and writes for a channel;
// SimilarityName names estimated all-vs-all Tanimotos.
func OverlapName(channel string) string     { return channel + suffixOverlap }
func TanimotoName(channel string) string    { return channel + suffixTanimoto }
func VectorsName(channel string) string     { return channel + suffixVectors }
func ProjectionName(channel string) string  { return channel + suffixProjection }
func EigenvaluesName(channel string) string { return channel + suffixEigenvalues }
func SimilarityName(channel string) string  { return channel + suffixSimilarity }

// Source yields named dense arrays.
type Source interface {
	Get(ctx context.Context, name string) (*matrix.Dense, error)
}

// Sink stores named dense arrays.
type Sink interface {
	Put(ctx context.Context, name string, m matrix.Matrix) error
}

// Pipeline turns one similarity channel of a basis file and a library file
// into SCISSORS vectors.
//
//   - UseOverlap reads "<channel>_overlap" as inner products; otherwise
//     "<channel>_tanimoto" is read and converted by InnerProductFromTanimoto.
//   - MaxDim follows Embed (AllDims keeps everything).
type Pipeline struct {
	Channel    string
	MaxDim     int
	UseOverlap bool
	Options    []Option
}

// Result is the output of one Pipeline run.
type Result struct {
	Channel    string
	Vectors    *matrix.Dense
	Projection *Projection
}

// Load reads the channel's inner products from src.
func (p Pipeline) Load(ctx context.Context, src Source) (*matrix.Dense, error) {
	name := TanimotoName(p.Channel)
	if p.UseOverlap {
		name = OverlapName(p.Channel)
	}
	m, err := src.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	if p.UseOverlap {
		return m, nil
	}
	ip, err := InnerProductFromTanimoto(m)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	return ip, nil
}

// Run loads the basis kernel and library rows, builds the model and embeds
// the library. ctx is checked between stages.
func (p Pipeline) Run(ctx context.Context, basis, library Source) (*Result, error) {
	kbb, err := p.Load(ctx, basis)
	if err != nil {
		return nil, fmt.Errorf("%s: basis: %w", p.Channel, err)
	}
	klb, err := p.Load(ctx, library)
	if err != nil {
		return nil, fmt.Errorf("%s: library: %w", p.Channel, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	model, err := New(kbb, p.Options...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Channel, err)
	}
	proj, err := model.Projection()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Channel, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	vecs, err := model.Embed(klb, p.MaxDim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Channel, err)
	}

	return &Result{Channel: p.Channel, Vectors: vecs, Projection: proj}, nil
}

// Save writes vectors, the forward projection matrix and the eigenvalues
// (as a 1×d row) under the channel's dataset names.
func (r *Result) Save(ctx context.Context, dst Sink) error {
	ev, err := matrix.NewFromSlice(1, len(r.Projection.Eigenvalues), r.Projection.Eigenvalues)
	if err != nil {
		return err
	}
	for _, item := range []struct {
		name string
		m    matrix.Matrix
	}{
		{VectorsName(r.Channel), r.Vectors},
		{ProjectionName(r.Channel), r.Projection.Forward},
		{EigenvaluesName(r.Channel), ev},
	} {
		if err = dst.Put(ctx, item.name, item.m); err != nil {
			return fmt.Errorf("save %s: %w", item.name, err)
		}
	}

	return nil
}
