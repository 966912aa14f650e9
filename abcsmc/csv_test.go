// SPDX-License-Identifier: MIT

package abcsmc_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nbkit/abcsmc"
)

func TestReadColumn(t *testing.T) {
	got, err := abcsmc.ReadColumn(strings.NewReader("1.5\n\n2\n-3e2\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2, -300}, got)

	_, err = abcsmc.ReadColumn(strings.NewReader("1\nabc\n"))
	require.ErrorIs(t, err, abcsmc.ErrBadInput)
	_, err = abcsmc.ReadColumn(strings.NewReader(""))
	require.ErrorIs(t, err, abcsmc.ErrBadInput)
}

func TestReadCounts(t *testing.T) {
	got, err := abcsmc.ReadCounts(strings.NewReader("3\n4\n 5\n"))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, got)

	_, err = abcsmc.ReadCounts(strings.NewReader("3.5\n"))
	require.ErrorIs(t, err, abcsmc.ErrBadInput)
}

func fixedResult() *abcsmc.Result {
	return &abcsmc.Result{
		Particles:  [][][]float64{{{0.1}, {0.2}}, {{0.3}, {0.4}}},
		Weights:    [][]float64{{0.5, 0.5}, {0.5, 0.5}},
		Thresholds: [][]float64{{10}, {2.5}},
		Attempts:   []int{2, 3},
	}
}

func TestWriteParticlesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, abcsmc.WriteParticlesCSV(&buf, fixedResult(), 0))
	require.Equal(t, "0.10000000,0.30000000\n0.20000000,0.40000000\n", buf.String())

	require.ErrorIs(t, abcsmc.WriteParticlesCSV(&buf, fixedResult(), 1), abcsmc.ErrBadInput)
	require.ErrorIs(t, abcsmc.WriteParticlesCSV(&buf, &abcsmc.Result{}, 0), abcsmc.ErrBadInput)
}

func TestWriteThresholdsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, abcsmc.WriteThresholdsCSV(&buf, fixedResult()))
	require.Equal(t, "10.00000000,2.50000000\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterError(t *testing.T) {
	require.Error(t, abcsmc.WriteParticlesCSV(failWriter{}, fixedResult(), 0))
	require.Error(t, abcsmc.WriteThresholdsCSV(failWriter{}, fixedResult()))
}
