// SPDX-License-Identifier: MIT

package ndgrid

import (
	"fmt"
	"math"
)

// Linspace returns n evenly spaced samples over [start, stop], endpoints included.
// n == 1 yields []float64{start}.
//
// Errors: ErrBadCount when n <= 0 or an endpoint is NaN/±Inf.
// Complexity: O(n).
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n <= 0 || !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("Linspace(%g, %g, %d): %w", start, stop, n, ErrBadCount)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop // exact endpoint regardless of rounding

	return out, nil
}

// Grid is an n-dimensional array of points with shape (..., k).
// data is row-major; the trailing axis is contiguous.
type Grid struct {
	shape []int
	data  []float64
}

// NewGrid wraps data (not copied) as a grid of the given shape. The last
// entry of shape is the point dimension k.
//
// Errors: ErrBadShape when shape is empty, holds a non-positive entry, or
// its product differs from len(data).
func NewGrid(shape []int, data []float64) (*Grid, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if size != len(data) {
		return nil, fmt.Errorf("NewGrid: shape %v holds %d values, got %d: %w", shape, size, len(data), ErrBadShape)
	}
	sh := make([]int, len(shape))
	copy(sh, shape)

	return &Grid{shape: sh, data: data}, nil
}

// Meshgrid builds the Cartesian product of the given axes with "ij" indexing:
// point (i0, i1, ...) has coordinates (axes[0][i0], axes[1][i1], ...).
// The resulting grid has shape (len(axes[0]), ..., len(axes[k-1]), k).
//
// Errors: ErrEmptyAxis when no axes are given or any axis is empty.
// Complexity: O(k * Π len(axes[d])).
func Meshgrid(axes ...[]float64) (*Grid, error) {
	k := len(axes)
	if k == 0 {
		return nil, fmt.Errorf("Meshgrid: %w", ErrEmptyAxis)
	}
	shape := make([]int, k+1)
	points := 1
	for d, ax := range axes {
		if len(ax) == 0 {
			return nil, fmt.Errorf("Meshgrid: axis %d: %w", d, ErrEmptyAxis)
		}
		shape[d] = len(ax)
		points *= len(ax)
	}
	shape[k] = k

	data := make([]float64, points*k)
	idx := make([]int, k) // odometer over the leading axes, last axis fastest
	for p := 0; p < points; p++ {
		base := p * k
		for d := 0; d < k; d++ {
			data[base+d] = axes[d][idx[d]]
		}
		for d := k - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}

	return &Grid{shape: shape, data: data}, nil
}

// Shape returns a copy of the full shape, trailing point axis included.
func (g *Grid) Shape() []int {
	out := make([]int, len(g.shape))
	copy(out, g.shape)

	return out
}

// Dim returns k, the number of variables per point.
func (g *Grid) Dim() int { return g.shape[len(g.shape)-1] }

// Points returns the number of points (product of the leading axes).
func (g *Grid) Points() int { return len(g.data) / g.Dim() }

// Point returns a view of the i-th point's coordinates. Mutating the view
// mutates the grid. Panics if i is out of range, like slice indexing.
func (g *Grid) Point(i int) []float64 {
	k := g.Dim()
	return g.data[i*k : (i+1)*k : (i+1)*k]
}

// Data returns the backing row-major buffer.
func (g *Grid) Data() []float64 { return g.data }

// Field is a scalar array over the leading axes of a Grid.
type Field struct {
	shape []int
	data  []float64
}

// NewField allocates a zero field with the leading shape of g.
func NewField(g *Grid) *Field {
	lead := g.shape[:len(g.shape)-1]
	sh := make([]int, len(lead))
	copy(sh, lead)
	if len(sh) == 0 {
		// A single point of shape (k,) yields a scalar field of one value.
		return &Field{shape: sh, data: make([]float64, 1)}
	}

	return &Field{shape: sh, data: make([]float64, g.Points())}
}

// Shape returns a copy of the field shape.
func (f *Field) Shape() []int {
	out := make([]int, len(f.shape))
	copy(out, f.shape)

	return out
}

// Len returns the number of values.
func (f *Field) Len() int { return len(f.data) }

// Data returns the backing buffer in the grid's point order.
func (f *Field) Data() []float64 { return f.data }

// At returns the value at the multi-index idx.
//
// Errors: ErrBadShape when len(idx) differs from the rank or an index is
// out of range.
func (f *Field) At(idx ...int) (float64, error) {
	if len(idx) != len(f.shape) {
		return 0, fmt.Errorf("Field.At: rank %d, got %d indices: %w", len(f.shape), len(idx), ErrBadShape)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= f.shape[d] {
			return 0, fmt.Errorf("Field.At: index %d out of range on axis %d: %w", i, d, ErrBadShape)
		}
		off = off*f.shape[d] + i
	}

	return f.data[off], nil
}

// Sum returns the sum of all values (Kahan-compensated).
func (f *Field) Sum() float64 {
	var sum, c float64
	for _, v := range f.data {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// Max returns the largest value and its flat index.
func (f *Field) Max() (float64, int) {
	best, at := math.Inf(-1), -1
	for i, v := range f.data {
		if v > best {
			best, at = v, i
		}
	}

	return best, at
}

func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("empty shape: %w", ErrBadShape)
	}
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("shape %v: %w", shape, ErrBadShape)
		}
		size *= d
	}

	return size, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
