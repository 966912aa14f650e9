// SPDX-License-Identifier: MIT

package abcsmc

import "math/rand/v2"

// Model is the problem-specific half of ABC-SMC. Implementations must be
// safe for concurrent use: Run calls them from several goroutines, each with
// its own rng.
type Model interface {
	// Dim is the number of parameters.
	Dim() int
	// Distances is the number of distance components Distance returns.
	Distances() int
	// SamplePrior draws a parameter vector from the prior.
	SamplePrior(rng *rand.Rand) []float64
	// PriorPDF is the prior density at theta.
	PriorPDF(theta []float64) float64
	// InSupport reports whether the prior density at theta is positive.
	InSupport(theta []float64) bool
	// Perturb draws from the perturbation kernel centred on theta.
	Perturb(rng *rand.Rand, theta []float64) []float64
	// KernelPDF is the kernel density of moving from one vector to the other.
	KernelPDF(from, to []float64) float64
	// Distance simulates a dataset under theta and measures it against the
	// observed data, one value per component.
	Distance(rng *rand.Rand, theta []float64) ([]float64, error)
}
