// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the nbkit command: the plot
// style, sampler settings and logging. Every section is optional; missing
// keys keep their Default() values and unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nbkit/abcsmc"
	"github.com/katalvlaran/nbkit/plotstyle"
)

// ErrInvalid is returned for a configuration that decodes but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the whole file.
type Config struct {
	Style plotstyle.Style `yaml:"style"`
	SMC   SMCConfig       `yaml:"smc"`
	Log   LogConfig       `yaml:"log"`
}

// SMCConfig mirrors the tunable part of abcsmc.Config.
type SMCConfig struct {
	Particles   int     `yaml:"particles"`
	Rounds      int     `yaml:"rounds"`
	Quantile    float64 `yaml:"quantile"`
	Seed        uint64  `yaml:"seed"`
	Workers     int     `yaml:"workers"`      // 0 = GOMAXPROCS
	MaxAttempts int     `yaml:"max_attempts"` // 0 = unlimited
}

// LogConfig selects the zap logger built by the command.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// Default returns the built-in configuration.
func Default() Config {
	smc := abcsmc.DefaultConfig()

	return Config{
		Style: plotstyle.Default(),
		SMC: SMCConfig{
			Particles: smc.Particles,
			Rounds:    smc.Rounds,
			Quantile:  smc.Quantile,
			Seed:      smc.Seed,
		},
		Log: LogConfig{Level: "info", Encoding: "json"},
	}
}

// Load decodes a YAML document on top of Default(). An empty document is
// the default configuration.
//
// Errors: decoding errors (unknown keys included), ErrInvalid,
// plotstyle.ErrInvalidStyle.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile reads path with Load. An empty path returns Default().
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Load(bytes.NewReader(raw))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("config: style: %w", err)
	}
	if err := c.SMC.Sampler().Validate(); err != nil {
		return fmt.Errorf("config: smc: %w", err)
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("config: log encoding %q: %w", c.Log.Encoding, ErrInvalid)
	}

	return nil
}

// Sampler converts the section into an abcsmc.Config without thresholds
// or logger; the caller adds those per model.
func (s SMCConfig) Sampler() abcsmc.Config {
	return abcsmc.Config{
		Particles:   s.Particles,
		Rounds:      s.Rounds,
		Quantile:    s.Quantile,
		Seed:        s.Seed,
		Workers:     s.Workers,
		MaxAttempts: s.MaxAttempts,
	}
}

// Logger builds a production zap logger with the configured level and
// encoding. verbose forces the debug level.
func (l LogConfig) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", l.Level, ErrInvalid)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if l.Encoding != "" {
		zc.Encoding = l.Encoding
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return logger, nil
}
