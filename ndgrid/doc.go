// SPDX-License-Identifier: MIT

// Package ndgrid builds evaluation grids for vectorized density evaluation.
//
// A Grid has shape (n0, n1, ..., k): every index into the leading axes
// selects one point, and the trailing axis packs that point's k coordinates.
// This is the layout a multivariate density expects: a grid of 2-D points
// has shape (nx, ny, 2).
//
// A Field is the scalar result of evaluating a function at every point of a
// Grid; its shape is the grid shape without the trailing axis.
//
// Usage:
//
//	xs, _ := ndgrid.Linspace(-3, 3, 61)
//	g, _ := ndgrid.Meshgrid(xs, xs) // shape (61, 61, 2)
//	for i := 0; i < g.Points(); i++ {
//		p := g.Point(i) // []float64{x, y}
//		_ = p
//	}
package ndgrid
