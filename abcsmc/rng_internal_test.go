// SPDX-License-Identifier: MIT

package abcsmc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParticleRNG_Streams(t *testing.T) {
	a := particleRNG(42, 3, 7).Uint64()
	b := particleRNG(42, 3, 7).Uint64()
	require.Equal(t, a, b, "same (seed, round, particle) must replay")

	require.NotEqual(t, a, particleRNG(42, 3, 8).Uint64())
	require.NotEqual(t, a, particleRNG(42, 4, 7).Uint64())
	require.NotEqual(t, a, particleRNG(43, 3, 7).Uint64())

	// Seed 0 falls back to the default seed.
	require.Equal(t, particleRNG(0, 1, 1).Uint64(), particleRNG(defaultSeed, 1, 1).Uint64())
}

func TestDeriveSeed_Avalanche(t *testing.T) {
	seen := make(map[uint64]struct{}, 1000)
	for s := uint64(0); s < 1000; s++ {
		seen[deriveSeed(1, s)] = struct{}{}
	}
	require.Len(t, seen, 1000)
}

func TestNormalize(t *testing.T) {
	w := []float64{1, 3}
	require.NoError(t, normalize(w))
	require.Equal(t, []float64{0.25, 0.75}, w)

	require.ErrorIs(t, normalize([]float64{0, 0}), ErrDegenerateWeights)
	require.ErrorIs(t, normalize([]float64{1, -1}), ErrDegenerateWeights)
}
