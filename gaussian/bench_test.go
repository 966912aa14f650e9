// SPDX-License-Identifier: MIT

package gaussian_test

import (
	"testing"

	"github.com/katalvlaran/nbkit/gaussian"
	"github.com/katalvlaran/nbkit/matrix"
	"github.com/katalvlaran/nbkit/ndgrid"
)

var sinkSum float64

func BenchmarkEvaluate(b *testing.B) {
	xs, _ := ndgrid.Linspace(-4, 4, 201)
	grid, _ := ndgrid.Meshgrid(xs, xs)
	sigma, _ := matrix.NewFromRows([][]float64{{1, 0.6}, {0.6, 2}})
	d, err := gaussian.New([]float64{0, 0}, sigma)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, _ := d.Evaluate(grid)
		sinkSum += f.Sum()
	}
}
