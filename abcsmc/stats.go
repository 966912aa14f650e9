// SPDX-License-Identifier: MIT

package abcsmc

import (
	"math"
	"math/rand/v2"
)

// WeightedChoice returns an index drawn with probability proportional to w.
// w is expected to be normalized; rounding slack at the top end resolves to
// the last index with positive weight. Returns -1 when no weight is positive.
//
// Complexity: O(len(w)).
func WeightedChoice(rng *rand.Rand, w []float64) int {
	u := rng.Float64()
	upTo := 0.0
	last := -1
	for i, wi := range w {
		if wi <= 0 {
			continue
		}
		last = i
		upTo += wi
		if upTo >= u {
			return i
		}
	}

	return last
}

// Quantile returns the p-quantile of ascending data by linear interpolation
// between order statistics: with δ = (n-1)p and i = ⌊δ⌋ the result is
// (1-(δ-i))·x[i] + (δ-i)·x[i+1]. Empty data yields NaN.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	delta := float64(n-1) * p
	i := int(math.Floor(delta))
	if i < 0 {
		return sorted[0]
	}
	if i >= n-1 {
		return sorted[n-1]
	}
	frac := delta - float64(i)

	return (1-frac)*sorted[i] + frac*sorted[i+1]
}
