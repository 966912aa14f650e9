// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nbkit/matrix"
	"github.com/katalvlaran/nbkit/ndgrid"
)

var errUsage = errors.New("invalid argument")

// parseFloats splits a comma-separated list such as "0,0.5,-1".
func parseFloats(flag, s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("--%s: empty list: %w", flag, errUsage)
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: item %d %q: %w", flag, i, p, errUsage)
		}
		out[i] = v
	}

	return out, nil
}

// parseRange reads "start:stop:n" into an evenly spaced axis.
func parseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("--range %q: want start:stop:n: %w", s, errUsage)
	}
	start, err1 := strconv.ParseFloat(parts[0], 64)
	stop, err2 := strconv.ParseFloat(parts[1], 64)
	n, err3 := strconv.Atoi(parts[2])
	if err := errors.Join(err1, err2, err3); err != nil {
		return nil, fmt.Errorf("--range %q: %w: %w", s, errUsage, err)
	}
	axis, err := ndgrid.Linspace(start, stop, n)
	if err != nil {
		return nil, fmt.Errorf("--range %q: %w", s, err)
	}

	return axis, nil
}

// axes resolves one range per dimension; a single range is shared by all.
func axes(ranges []string, k int) ([][]float64, error) {
	if len(ranges) != 1 && len(ranges) != k {
		return nil, fmt.Errorf("--range: %d ranges for %d dimensions: %w", len(ranges), k, errUsage)
	}
	out := make([][]float64, k)
	for i := range out {
		r := ranges[0]
		if len(ranges) == k {
			r = ranges[i]
		}
		axis, err := parseRange(r)
		if err != nil {
			return nil, err
		}
		out[i] = axis
	}

	return out, nil
}

// meanAndCov parses --mean (k values) and --cov (k*k values, row-major).
func meanAndCov(mean, cov string) ([]float64, matrix.Matrix, error) {
	mu, err := parseFloats("mean", mean)
	if err != nil {
		return nil, nil, err
	}
	flat, err := parseFloats("cov", cov)
	if err != nil {
		return nil, nil, err
	}
	k := len(mu)
	if len(flat) != k*k {
		return nil, nil, fmt.Errorf("--cov: %d values for a %d×%d matrix: %w", len(flat), k, k, errUsage)
	}
	sigma, err := matrix.NewDenseFrom(k, k, flat)
	if err != nil {
		return nil, nil, fmt.Errorf("--cov: %w", err)
	}

	return mu, sigma, nil
}

// openInput returns stdin for "" or "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// openOutput returns stdout for "" or "-".
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// readMatrix parses a headerless numeric CSV into a dense matrix.
func readMatrix(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("row %d column %d %q: %w", i+1, j+1, field, errUsage)
			}
		}
		rows = append(rows, row)
	}

	return matrix.NewFromRows(rows)
}

// writeMatrix writes m as CSV, one record per row.
func writeMatrix(w io.Writer, m matrix.Matrix) error {
	cw := csv.NewWriter(w)
	record := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range record {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			record[j] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
