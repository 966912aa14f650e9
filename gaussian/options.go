// SPDX-License-Identifier: MIT

package gaussian

import (
	"math"

	"github.com/katalvlaran/nbkit/matrix"
)

const panicEpsilonInvalid = "gaussian: WithEpsilon: eps must be finite, non-negative"

// Option configures New, Density and Fit.
type Option func(*options)

type options struct {
	eps     float64 // symmetry tolerance for Σ
	checkPD bool    // run Cholesky before accepting Σ
}

// WithEpsilon sets the tolerance of the symmetry check on Σ.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithoutDefinitenessCheck skips the Cholesky test. A symmetric, non-singular
// but indefinite Σ is then accepted and the density formula is applied as is,
// which may produce NaN.
func WithoutDefinitenessCheck() Option {
	return func(o *options) { o.checkPD = false }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: matrix.DefaultEpsilon, checkPD: true}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
