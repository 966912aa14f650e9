// SPDX-License-Identifier: MIT

package abcsmc_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/abcsmc"
)

func TestQuantile(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	cases := []struct {
		p, want float64
	}{
		{0, 1}, {0.25, 2}, {0.5, 3}, {0.8, 4.2}, {0.9, 4.6}, {1, 5},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, abcsmc.Quantile(data, tc.p), 1e-12, "p=%g", tc.p)
	}
	require.Equal(t, 7.0, abcsmc.Quantile([]float64{7}, 0.8))
	require.True(t, math.IsNaN(abcsmc.Quantile(nil, 0.5)))
}

func TestWeightedChoice(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	w := []float64{0.1, 0, 0.9}
	counts := make([]int, len(w))
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[abcsmc.WeightedChoice(rng, w)]++
	}
	require.Zero(t, counts[1])
	require.InDelta(t, 0.9, float64(counts[2])/draws, 0.02)

	require.Equal(t, -1, abcsmc.WeightedChoice(rng, []float64{0, 0}))
	require.Equal(t, 0, abcsmc.WeightedChoice(rng, []float64{1}))
}
