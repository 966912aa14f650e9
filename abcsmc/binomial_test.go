// SPDX-License-Identifier: MIT

package abcsmc_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/nbkit/abcsmc"
)

func TestNewBinomialModel_Errors(t *testing.T) {
	cases := []struct {
		name        string
		data        []int
		trials      int
		alpha, beta float64
		kernelSD    float64
	}{
		{"no data", nil, 10, 1, 1, 0.1},
		{"trials", []int{1}, 0, 1, 1, 0.1},
		{"alpha", []int{1}, 10, 0, 1, 0.1},
		{"beta", []int{1}, 10, 1, -1, 0.1},
		{"kernel", []int{1}, 10, 1, 1, 0},
		{"too large", []int{11}, 10, 1, 1, 0.1},
		{"negative", []int{-1}, 10, 1, 1, 0.1},
	}
	for _, tc := range cases {
		_, err := abcsmc.NewBinomialModel(tc.data, tc.trials, tc.alpha, tc.beta, tc.kernelSD)
		require.ErrorIs(t, err, abcsmc.ErrInvalidModel, tc.name)
	}
}

func TestBinomialModel_Densities(t *testing.T) {
	m := binomModel(t)
	require.Equal(t, 1, m.Dim())
	require.Equal(t, 1, m.Distances())

	prior := distuv.Beta{Alpha: abcsmc.DefaultBinomialAlpha, Beta: abcsmc.DefaultBinomialBeta}
	for _, p := range []float64{0.1, 0.5, 0.93} {
		require.InDelta(t, prior.Prob(p), m.PriorPDF([]float64{p}), 1e-12)
	}
	require.Zero(t, m.PriorPDF([]float64{1.2}))
	require.False(t, m.InSupport([]float64{-0.01}))

	kernel := distuv.Normal{Mu: 0, Sigma: abcsmc.DefaultBinomialKernelSD}
	require.InDelta(t, kernel.Prob(0.02), m.KernelPDF([]float64{0.3}, []float64{0.32}), 1e-12)
}

func TestBinomialModel_Sampling(t *testing.T) {
	m := binomModel(t)
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		theta := m.SamplePrior(rng)
		require.True(t, m.InSupport(theta))

		d, err := m.Distance(rng, theta)
		require.NoError(t, err)
		require.Len(t, d, 1)
		require.True(t, d[0] >= 0 && d[0] <= abcsmc.DefaultBinomialTrials)
	}

	// Near the truth the simulated mean count is close to the observed 3.
	var mean float64
	const reps = 200
	for i := 0; i < reps; i++ {
		d, err := m.Distance(rng, []float64{0.3})
		require.NoError(t, err)
		mean += d[0] / reps
	}
	require.Less(t, mean, 0.5)

	_, err := m.Distance(rng, []float64{1.5})
	require.ErrorIs(t, err, abcsmc.ErrInvalidModel)
}
