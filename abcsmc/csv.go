// SPDX-License-Identifier: MIT

package abcsmc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadColumn reads one float per line (the first field of each CSV record).
// Blank lines are skipped.
//
// Errors: ErrBadInput for unparsable values or an empty input.
func ReadColumn(r io.Reader) ([]float64, error) {
	var out []float64
	err := eachFirstField(r, func(line int, field string) error {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", line, field, ErrBadInput)
		}
		out = append(out, v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadCounts reads one integer per line, as binom_data.csv holds them.
//
// Errors: ErrBadInput.
func ReadCounts(r io.Reader) ([]int, error) {
	var out []int
	err := eachFirstField(r, func(line int, field string) error {
		v, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("line %d: %q: %w", line, field, ErrBadInput)
		}
		out = append(out, v)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func eachFirstField(r io.Reader, fn func(line int, field string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	n := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return smcErrorf(opRead, fmt.Errorf("%v: %w", err, ErrBadInput))
		}
		field := strings.TrimSpace(rec[0])
		if field == "" {
			continue
		}
		line, _ := cr.FieldPos(0)
		if err = fn(line, field); err != nil {
			return smcErrorf(opRead, err)
		}
		n++
	}
	if n == 0 {
		return smcErrorf(opRead, fmt.Errorf("no values: %w", ErrBadInput))
	}

	return nil
}

func formatValue(v float64) string { return strconv.FormatFloat(v, 'f', 8, 64) }

// WriteParticlesCSV writes parameter param of every particle: one row per
// particle, one column per round, eight decimals.
//
// Errors: ErrBadInput for an empty result or a parameter out of range,
// and write errors.
func WriteParticlesCSV(w io.Writer, res *Result, param int) error {
	if res == nil || res.Rounds() == 0 {
		return smcErrorf(opWrite, fmt.Errorf("empty result: %w", ErrBadInput))
	}
	cols := make([][]float64, res.Rounds())
	for round := range cols {
		if cols[round] = res.Param(param, round); cols[round] == nil {
			return smcErrorf(opWrite, fmt.Errorf("parameter %d: %w", param, ErrBadInput))
		}
	}

	cw := csv.NewWriter(w)
	row := make([]string, len(cols))
	for i := range cols[0] {
		for round := range cols {
			row[round] = formatValue(cols[round][i])
		}
		if err := cw.Write(row); err != nil {
			return smcErrorf(opWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return smcErrorf(opWrite, err)
	}

	return nil
}

// WriteThresholdsCSV writes the acceptance thresholds: one row per distance
// component, one column per round.
func WriteThresholdsCSV(w io.Writer, res *Result) error {
	if res == nil || res.Rounds() == 0 {
		return smcErrorf(opWrite, fmt.Errorf("empty result: %w", ErrBadInput))
	}
	cw := csv.NewWriter(w)
	nd := len(res.Thresholds[0])
	row := make([]string, res.Rounds())
	for k := 0; k < nd; k++ {
		for round, th := range res.Thresholds {
			row[round] = formatValue(th[k])
		}
		if err := cw.Write(row); err != nil {
			return smcErrorf(opWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return smcErrorf(opWrite, err)
	}

	return nil
}
