// SPDX-License-Identifier: MIT

package abcsmc

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial notebook constants.
const (
	DefaultBinomialTrials   = 10
	DefaultBinomialAlpha    = 0.5
	DefaultBinomialBeta     = 0.5
	DefaultBinomialKernelSD = 0.05

	// DefaultBinomialThreshold is the round-0 acceptance distance.
	DefaultBinomialThreshold = 10.0
)

// BinomialModel infers the success probability p of counts drawn from
// Binomial(trials, p), with a Beta(alpha, beta) prior and a Gaussian
// perturbation kernel. The distance is |Σ data − Σ simulated| / len(data).
type BinomialModel struct {
	data     []int
	sumData  int
	trials   int
	prior    distuv.Beta
	kernelSD float64
}

var _ Model = (*BinomialModel)(nil)

// NewBinomialModel validates the observations and hyper-parameters.
// Errors: ErrInvalidModel.
func NewBinomialModel(data []int, trials int, alpha, beta, kernelSD float64) (*BinomialModel, error) {
	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("binomial: no data: %w", ErrInvalidModel)
	case trials <= 0:
		return nil, fmt.Errorf("binomial: trials = %d: %w", trials, ErrInvalidModel)
	case !(alpha > 0) || !(beta > 0):
		return nil, fmt.Errorf("binomial: prior Beta(%g, %g): %w", alpha, beta, ErrInvalidModel)
	case !(kernelSD > 0):
		return nil, fmt.Errorf("binomial: kernel sd = %g: %w", kernelSD, ErrInvalidModel)
	}
	sum := 0
	for i, c := range data {
		if c < 0 || c > trials {
			return nil, fmt.Errorf("binomial: data[%d] = %d outside [0, %d]: %w", i, c, trials, ErrInvalidModel)
		}
		sum += c
	}
	d := make([]int, len(data))
	copy(d, data)

	return &BinomialModel{
		data:     d,
		sumData:  sum,
		trials:   trials,
		prior:    distuv.Beta{Alpha: alpha, Beta: beta},
		kernelSD: kernelSD,
	}, nil
}

func (m *BinomialModel) Dim() int       { return 1 }
func (m *BinomialModel) Distances() int { return 1 }

func (m *BinomialModel) SamplePrior(rng *rand.Rand) []float64 {
	b := m.prior
	b.Src = rng

	return []float64{b.Rand()}
}

func (m *BinomialModel) PriorPDF(theta []float64) float64 {
	if !m.InSupport(theta) {
		return 0
	}

	return m.prior.Prob(theta[0])
}

func (m *BinomialModel) InSupport(theta []float64) bool {
	return len(theta) == 1 && theta[0] >= 0 && theta[0] <= 1
}

func (m *BinomialModel) Perturb(rng *rand.Rand, theta []float64) []float64 {
	return []float64{theta[0] + rng.NormFloat64()*m.kernelSD}
}

func (m *BinomialModel) KernelPDF(from, to []float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: m.kernelSD}.Prob(to[0] - from[0])
}

// Distance simulates len(data) counts under p = theta[0].
func (m *BinomialModel) Distance(rng *rand.Rand, theta []float64) ([]float64, error) {
	if !m.InSupport(theta) {
		return nil, fmt.Errorf("binomial: p = %v: %w", theta, ErrInvalidModel)
	}
	b := distuv.Binomial{N: float64(m.trials), P: theta[0], Src: rng}
	sim := 0.0
	for range m.data {
		sim += b.Rand()
	}

	return []float64{math.Abs(float64(m.sumData)-sim) / float64(len(m.data))}, nil
}
