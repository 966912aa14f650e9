// SPDX-License-Identifier: MIT

package abcsmc

import (
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
)

// Config controls a Run.
type Config struct {
	// Particles per round.
	Particles int
	// Rounds of SMC, round 0 included.
	Rounds int
	// Quantile in (0, 1] of the accepted distances that becomes the next
	// round's threshold.
	Quantile float64
	// InitialThresholds for round 0, one per distance component. Nil means
	// +Inf (accept every prior draw).
	InitialThresholds []float64
	// Seed of the random streams; 0 is replaced by a fixed default.
	Seed uint64
	// Workers bounds concurrent particle sampling; 0 means GOMAXPROCS.
	Workers int
	// MaxAttempts bounds the proposals per particle; 0 means unlimited.
	MaxAttempts int
	// Logger receives one entry per round; nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the settings of the binomial notebook run.
func DefaultConfig() Config {
	return Config{
		Particles: 5000,
		Rounds:    50,
		Quantile:  0.8,
		Seed:      1,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Validate checks the ranges of every field.
// Errors: ErrInvalidConfig naming the offending field.
func (c Config) Validate() error {
	switch {
	case c.Particles <= 0:
		return smcErrorf(opValidate, fmt.Errorf("particles = %d: %w", c.Particles, ErrInvalidConfig))
	case c.Rounds <= 0:
		return smcErrorf(opValidate, fmt.Errorf("rounds = %d: %w", c.Rounds, ErrInvalidConfig))
	case !(c.Quantile > 0 && c.Quantile <= 1):
		return smcErrorf(opValidate, fmt.Errorf("quantile = %g: %w", c.Quantile, ErrInvalidConfig))
	case c.Workers < 0:
		return smcErrorf(opValidate, fmt.Errorf("workers = %d: %w", c.Workers, ErrInvalidConfig))
	case c.MaxAttempts < 0:
		return smcErrorf(opValidate, fmt.Errorf("max attempts = %d: %w", c.MaxAttempts, ErrInvalidConfig))
	}
	for i, th := range c.InitialThresholds {
		if math.IsNaN(th) || th < 0 {
			return smcErrorf(opValidate, fmt.Errorf("initial threshold %d = %g: %w", i, th, ErrInvalidConfig))
		}
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}

	return c.Workers
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}

	return c.Logger
}
