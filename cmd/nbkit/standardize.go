// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nbkit/standardize"
)

type standardizeOptions struct {
	in, out   string
	perColumn bool
}

func newStandardizeCmd() *cobra.Command {
	var o standardizeOptions
	cmd := &cobra.Command{
		Use:   "standardize",
		Short: "Z-score a numeric CSV matrix",
		Long: `Reads a headerless numeric CSV, subtracts the mean and divides by the
sample standard deviation (ddof=1). By default one mean and deviation are
taken over the whole matrix; --per-column standardizes each column.

A constant input has zero deviation: the output is written as NaN and a
warning is logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStandardize(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.in, "in", "i", "", "input CSV (default stdin)")
	f.StringVarP(&o.out, "out", "o", "", "output CSV (default stdout)")
	f.BoolVar(&o.perColumn, "per-column", false, "standardize every column separately")

	return cmd
}

func runStandardize(cmd *cobra.Command, o standardizeOptions) error {
	in, err := openInput(cmd, o.in)
	if err != nil {
		return err
	}
	X, err := readMatrix(in)
	_ = in.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", inputName(o.in), err)
	}

	var opts []standardize.Option
	if o.perColumn {
		opts = append(opts, standardize.WithPerColumn())
	}
	Z, moments, err := standardize.Standardize(X, opts...)
	switch {
	case errors.Is(err, standardize.ErrZeroVariance):
		logger.Warn("zero variance, output holds NaN", zap.Stringer("mode", moments.Mode))
	case err != nil:
		return err
	}

	out, err := openOutput(cmd, o.out)
	if err != nil {
		return err
	}
	if err = writeMatrix(out, Z); err != nil {
		_ = out.Close()
		return fmt.Errorf("write standardized matrix: %w", err)
	}
	if err = out.Close(); err != nil {
		return err
	}
	logger.Info("standardized",
		zap.Int("rows", X.Rows()),
		zap.Int("cols", X.Cols()),
		zap.Stringer("mode", moments.Mode),
		zap.Float64s("mean", moments.Mean),
		zap.Float64s("std", moments.Std))

	return nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}

	return path
}
