// SPDX-License-Identifier: MIT

package standardize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nbkit/matrix"
)

// Moments are the statistics a standardization used.
// Mean and Std have length 1 in Global mode and one entry per column in
// PerColumn mode.
type Moments struct {
	Mode Mode
	Mean []float64
	Std  []float64
}

// Standardize returns (X - mean) / std together with the moments used.
//
// Implementation:
//   - Stage 1: validate X and the sample count for the chosen mode.
//   - Stage 2: mean, then the ddof=1 std from the centered values (two passes).
//   - Stage 3: divide; the output policy admits NaN/±Inf.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrTooFewSamples.
//   - ErrZeroVariance, returned WITH the populated result and moments.
//
// Complexity: O(r*c).
func Standardize(X matrix.Matrix, opts ...Option) (matrix.Matrix, Moments, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, Moments{}, standardizeErrorf(opStandardize, err)
	}
	if o.mode == PerColumn {
		return perColumn(X)
	}

	return global(X)
}

func global(X matrix.Matrix) (matrix.Matrix, Moments, error) {
	r, c := X.Rows(), X.Cols()
	n := r * c
	if n < 2 {
		return nil, Moments{}, standardizeErrorf(opStandardize,
			fmt.Errorf("global mode, %d entries: %w", n, ErrTooFewSamples))
	}
	data, err := values(X)
	if err != nil {
		return nil, Moments{}, standardizeErrorf(opStandardize, err)
	}

	var mean float64
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)
	var ss float64
	for _, v := range data {
		ss += (v - mean) * (v - mean)
	}
	std := math.Sqrt(ss / float64(n-1))

	for i, v := range data {
		data[i] = (v - mean) / std
	}
	out, err := matrix.NewDenseFrom(r, c, data, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, Moments{}, standardizeErrorf(opStandardize, err)
	}
	mom := Moments{Mode: Global, Mean: []float64{mean}, Std: []float64{std}}
	if std == 0 {
		return out, mom, standardizeErrorf(opStandardize, ErrZeroVariance)
	}

	return out, mom, nil
}

func perColumn(X matrix.Matrix) (matrix.Matrix, Moments, error) {
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, Moments{}, standardizeErrorf(opStandardize,
			fmt.Errorf("per-column mode, %d rows: %w", r, ErrTooFewSamples))
	}
	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, Moments{}, standardizeErrorf(opStandardize, err)
	}
	centered, err := values(Xc)
	if err != nil {
		return nil, Moments{}, standardizeErrorf(opStandardize, err)
	}

	stds := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v := centered[i*c+j]
			stds[j] += v * v
		}
	}
	zero := false
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] / float64(r-1))
		if stds[j] == 0 {
			zero = true
		}
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			centered[i*c+j] /= stds[j]
		}
	}

	out, err := matrix.NewDenseFrom(r, c, centered, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, Moments{}, standardizeErrorf(opStandardize, err)
	}
	mom := Moments{Mode: PerColumn, Mean: means, Std: stds}
	if zero {
		return out, mom, standardizeErrorf(opStandardize, ErrZeroVariance)
	}

	return out, mom, nil
}

// Restore applies the inverse transform Z*std + mean with the given moments.
//
// Errors: matrix.ErrNilMatrix, ErrBadMoments (lengths do not fit the mode or
// the column count of Z).
func Restore(Z matrix.Matrix, m Moments) (matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(Z); err != nil {
		return nil, standardizeErrorf(opRestore, err)
	}
	r, c := Z.Rows(), Z.Cols()
	want := 1
	if m.Mode == PerColumn {
		want = c
	}
	if len(m.Mean) != want || len(m.Std) != want {
		return nil, standardizeErrorf(opRestore,
			fmt.Errorf("%s mode wants %d moments, got mean %d std %d: %w", m.Mode, want, len(m.Mean), len(m.Std), ErrBadMoments))
	}
	data, err := values(Z)
	if err != nil {
		return nil, standardizeErrorf(opRestore, err)
	}

	var i, j, s int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if want > 1 {
				s = j
			}
			data[i*c+j] = data[i*c+j]*m.Std[s] + m.Mean[s]
		}
	}
	out, err := matrix.NewDenseFrom(r, c, data, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, standardizeErrorf(opRestore, err)
	}

	return out, nil
}

// values returns a fresh row-major copy of X.
func values(X matrix.Matrix) ([]float64, error) {
	if d, ok := X.(*matrix.Dense); ok {
		return d.RawData(), nil
	}
	r, c := X.Rows(), X.Cols()
	out := make([]float64, r*c)
	var i, j int
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if out[i*c+j], err = X.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
