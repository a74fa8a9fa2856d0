// SPDX-License-Identifier: MIT
// Package config loads solver settings from defaults, an optional YAML file,
// FVS_* environment variables and explicit overrides, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/fvs/graphio"
	"github.com/katalvlaran/fvs/iterative"
)

// Algorithms.
const (
	AlgorithmIterative  = "iterative"
	AlgorithmRandomized = "randomized"
)

// Defaults.
const (
	DefaultAlgorithm       = AlgorithmIterative
	DefaultWorkers         = 0 // one per CPU
	DefaultTimeout         = time.Duration(0)
	DefaultOrder           = "natural"
	DefaultForcedVertices  = true
	DefaultMaxForcedProbes = 32
	DefaultWarnSize        = iterative.DefaultWarnSize
	DefaultSeed            = int64(1)
	DefaultRepeats         = 28
	DefaultLogLevel        = "info"
	DefaultOutputFormat    = graphio.FormatText
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the solver configuration. Field tags use mapstructure for viper
// unmarshalling.
type Config struct {
	Algorithm   string            `mapstructure:"algorithm"`
	Workers     int               `mapstructure:"workers"`
	Timeout     time.Duration     `mapstructure:"timeout"`
	Order       string            `mapstructure:"order"`
	Kernel      KernelConfig      `mapstructure:"kernel"`
	Compression CompressionConfig `mapstructure:"compression"`
	Randomized  RandomizedConfig  `mapstructure:"randomized"`
	Log         LogConfig         `mapstructure:"log"`
	Output      OutputConfig      `mapstructure:"output"`
}

// KernelConfig selects kernelization rules.
type KernelConfig struct {
	ForcedVertices  bool `mapstructure:"forced_vertices"`
	MaxForcedProbes int  `mapstructure:"max_forced_probes"`
}

// CompressionConfig tunes the compression step.
type CompressionConfig struct {
	WarnSize int `mapstructure:"warn_size"`
}

// RandomizedConfig tunes the Monte-Carlo algorithm.
type RandomizedConfig struct {
	Seed    int64 `mapstructure:"seed"`
	Repeats int   `mapstructure:"repeats"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Validate checks c and returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.Algorithm != AlgorithmIterative && c.Algorithm != AlgorithmRandomized:
		return fmt.Errorf("%w: algorithm %q, want %s or %s", ErrInvalidConfig, c.Algorithm, AlgorithmIterative, AlgorithmRandomized)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be non-negative", ErrInvalidConfig)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must be non-negative", ErrInvalidConfig)
	case c.Kernel.MaxForcedProbes < 0:
		return fmt.Errorf("%w: kernel.max_forced_probes must be non-negative", ErrInvalidConfig)
	case c.Compression.WarnSize < 1 || c.Compression.WarnSize > iterative.MaxCompressionSize:
		return fmt.Errorf("%w: compression.warn_size must be in [1, %d]", ErrInvalidConfig, iterative.MaxCompressionSize)
	case c.Randomized.Repeats < 1:
		return fmt.Errorf("%w: randomized.repeats must be positive", ErrInvalidConfig)
	case !slices.Contains(graphio.Formats(), c.Output.Format):
		return fmt.Errorf("%w: output.format %q, want one of %v", ErrInvalidConfig, c.Output.Format, graphio.Formats())
	}
	if _, err := iterative.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: order: %w", ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// ReinsertionOrder returns the parsed Order. Call after Validate.
func (c *Config) ReinsertionOrder() iterative.Order {
	o, _ := iterative.ParseOrder(c.Order)

	return o
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}

	return lvl, nil
}
