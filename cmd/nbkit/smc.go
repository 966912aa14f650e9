// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/nbkit/abcsmc"
	"github.com/katalvlaran/nbkit/internal/render"
)

const distancesFile = "distances.txt"

type smcOptions struct {
	outDir      string
	particles   int
	rounds      int
	quantile    float64
	seed        uint64
	workers     int
	maxAttempts int
	plot        bool
	bins        int
}

func newSMCCmd() *cobra.Command {
	o := &smcOptions{}
	cmd := &cobra.Command{
		Use:   "smc",
		Short: "Approximate Bayesian computation by sequential Monte Carlo",
		Long: `Runs ABC-SMC on one of the built-in models. Every round's particles are
written as CSV (one row per particle, one column per round) together with
the acceptance thresholds in distances.txt.

Sampler settings come from the smc section of the configuration file;
the flags below override it.`,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&o.outDir, "out-dir", ".", "directory for particle and threshold files")
	pf.IntVar(&o.particles, "particles", 0, "particles per round")
	pf.IntVar(&o.rounds, "rounds", 0, "rounds of SMC")
	pf.Float64Var(&o.quantile, "quantile", 0, "distance quantile kept as the next threshold")
	pf.Uint64Var(&o.seed, "seed", 0, "random seed")
	pf.IntVar(&o.workers, "workers", 0, "concurrent particle samplers (0 = GOMAXPROCS)")
	pf.IntVar(&o.maxAttempts, "max-attempts", 0, "proposals per particle before giving up (0 = unlimited)")
	pf.BoolVar(&o.plot, "plot", false, "also draw the final posterior of every parameter")
	pf.IntVar(&o.bins, "bins", 50, "histogram bins of the posterior plots")

	cmd.AddCommand(newBinomialCmd(o), newLinRegCmd(o))

	return cmd
}

// sampler merges the configuration file with the flags the user set.
func (o *smcOptions) sampler(cmd *cobra.Command) abcsmc.Config {
	c := cfg.SMC.Sampler()
	fl := cmd.Flags()
	if fl.Changed("particles") {
		c.Particles = o.particles
	}
	if fl.Changed("rounds") {
		c.Rounds = o.rounds
	}
	if fl.Changed("quantile") {
		c.Quantile = o.quantile
	}
	if fl.Changed("seed") {
		c.Seed = o.seed
	}
	if fl.Changed("workers") {
		c.Workers = o.workers
	}
	if fl.Changed("max-attempts") {
		c.MaxAttempts = o.maxAttempts
	}
	c.Logger = logger

	return c
}

func newBinomialCmd(o *smcOptions) *cobra.Command {
	var (
		data             string
		trials           int
		alpha, beta, ksd float64
		threshold        float64
	)
	cmd := &cobra.Command{
		Use:   "binomial",
		Short: "Infer the success probability of binomial counts",
		Long: `Reads one count per line from --data and infers p of Binomial(trials, p)
under a Beta(alpha, beta) prior. Writes particles.csv and distances.txt.

Example:
  nbkit smc binomial --data binom_data.csv --trials 10 --out-dir out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := readFile(data, abcsmc.ReadCounts)
			if err != nil {
				return err
			}
			model, err := abcsmc.NewBinomialModel(counts, trials, alpha, beta, ksd)
			if err != nil {
				return err
			}
			c := o.sampler(cmd)
			c.InitialThresholds = []float64{threshold}

			return o.run(cmd, model, c, []string{"p"}, func(int) string { return "particles.csv" })
		},
	}
	f := cmd.Flags()
	f.StringVar(&data, "data", "binom_data.csv", "observed counts, one per line")
	f.IntVar(&trials, "trials", abcsmc.DefaultBinomialTrials, "trials per observation")
	f.Float64Var(&alpha, "alpha", abcsmc.DefaultBinomialAlpha, "Beta prior alpha")
	f.Float64Var(&beta, "beta", abcsmc.DefaultBinomialBeta, "Beta prior beta")
	f.Float64Var(&ksd, "kernel-sd", abcsmc.DefaultBinomialKernelSD, "standard deviation of the perturbation kernel")
	f.Float64Var(&threshold, "threshold", abcsmc.DefaultBinomialThreshold, "round-0 acceptance distance")

	return cmd
}

func newLinRegCmd(o *smcOptions) *cobra.Command {
	var xPath, yPath string
	cmd := &cobra.Command{
		Use:   "linreg",
		Short: "Infer gradient, intercept and noise of a straight line",
		Long: `Reads x and y (one value per line), fits them by least squares and runs
ABC-SMC on (gradient, intercept, sigma) with uniform priors. Writes
particle_0.csv, particle_1.csv, particle_2.csv and distances.txt.

Example:
  nbkit smc linreg --x x.csv --y y.csv --particles 2000 --rounds 25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := readFile(xPath, abcsmc.ReadColumn)
			if err != nil {
				return err
			}
			y, err := readFile(yPath, abcsmc.ReadColumn)
			if err != nil {
				return err
			}
			model, err := abcsmc.NewLinearRegressionModel(x, y,
				abcsmc.DefaultLinearRegressionBounds(), abcsmc.DefaultLinearRegressionKernel())
			if err != nil {
				return err
			}
			g, b, s := model.ObservedFit()
			logger.Info("observed fit",
				zap.Float64("gradient", g),
				zap.Float64("intercept", b),
				zap.Float64("sigma", s))

			c := o.sampler(cmd)
			c.InitialThresholds = abcsmc.DefaultLinearRegressionThresholds()

			return o.run(cmd, model, c, []string{"gradient", "intercept", "sigma"},
				func(k int) string { return "particle_" + strconv.Itoa(k) + ".csv" })
		},
	}
	f := cmd.Flags()
	f.StringVar(&xPath, "x", "x.csv", "explanatory variable, one value per line")
	f.StringVar(&yPath, "y", "y.csv", "response variable, one value per line")

	return cmd
}

// run samples the model and writes every output file.
func (o *smcOptions) run(cmd *cobra.Command, model abcsmc.Model, c abcsmc.Config, names []string, file func(k int) string) error {
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return err
	}
	start := time.Now()
	res, err := abcsmc.Run(cmd.Context(), model, c)
	if err != nil {
		return err
	}
	logger.Info("smc finished",
		zap.Int("rounds", res.Rounds()),
		zap.Float64s("posterior_mean", res.PosteriorMean()),
		zap.Duration("elapsed", time.Since(start)))

	for k := range names {
		path := filepath.Join(o.outDir, file(k))
		if err = writeFile(path, func(w io.Writer) error { return abcsmc.WriteParticlesCSV(w, res, k) }); err != nil {
			return err
		}
	}
	if err = writeFile(filepath.Join(o.outDir, distancesFile), func(w io.Writer) error {
		return abcsmc.WriteThresholdsCSV(w, res)
	}); err != nil {
		return err
	}
	if !o.plot {
		return nil
	}

	last := res.Rounds() - 1
	for k, name := range names {
		p, err := render.PosteriorPlot(cfg.Style, res.Param(k, last), res.Weights[last], o.bins,
			render.Labels{Title: "posterior of " + name, X: name, Y: "density"})
		if err != nil {
			return err
		}
		path := filepath.Join(o.outDir, "posterior_"+name+".png")
		if err = render.Save(p, path, 8, 6); err != nil {
			return err
		}
		logger.Debug("posterior plot written", zap.String("path", path))
	}

	return nil
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
