// SPDX-License-Identifier: MIT
package chart_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scissors/internal/chart"
)

func TestExplained(t *testing.T) {
	t.Parallel()
	got := chart.Explained([]float64{6, -3, 1})
	require.InDeltaSlice(t, []float64{0.6, 0.9, 1}, got, 1e-12)
	require.Equal(t, []float64{0, 0}, chart.Explained([]float64{0, 0}))
	require.Empty(t, chart.Explained(nil))
}

func TestScree(t *testing.T) {
	t.Parallel()
	ev := []float64{8, 5, 2, 0.5}

	var png bytes.Buffer
	require.NoError(t, chart.Scree(&png, ev, "png"))
	require.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, chart.Scree(&svg, ev, "svg"))
	require.Contains(t, svg.String(), "<svg")

	require.ErrorIs(t, chart.Scree(&svg, nil, "png"), chart.ErrNoData)
	require.Error(t, chart.Scree(&svg, ev, "bmp"))
}
