// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/config"
	"github.com/katalvlaran/fvs/iterative"
)

// isolate keeps the loader away from real config files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	return dir
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmIterative, cfg.Algorithm)
	assert.Zero(t, cfg.Workers)
	assert.True(t, cfg.Kernel.ForcedVertices)
	assert.Equal(t, config.DefaultWarnSize, cfg.Compression.WarnSize)
	assert.Equal(t, iterative.OrderNatural, cfg.ReinsertionOrder())
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_FileEnvAndOverrides(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".fvs.yaml", `
algorithm: randomized
workers: 2
timeout: 30s
order: approx
kernel:
  max_forced_probes: 8
randomized:
  seed: 99
log:
  level: debug
`)
	t.Setenv("FVS_WORKERS", "6")
	t.Setenv("FVS_KERNEL_FORCED_VERTICES", "false")

	cfg, err := config.Load("", map[string]any{"output.format": "yaml"})
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmRandomized, cfg.Algorithm)
	assert.Equal(t, 6, cfg.Workers, "env beats file")
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, iterative.OrderApprox, cfg.ReinsertionOrder())
	assert.False(t, cfg.Kernel.ForcedVertices)
	assert.Equal(t, 8, cfg.Kernel.MaxForcedProbes)
	assert.Equal(t, int64(99), cfg.Randomized.Seed)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", "workers: 3\n")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err, "an explicit file must exist")
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)

	_, err := config.Load("", map[string]any{"workers": -1})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Algorithm:   config.AlgorithmIterative,
			Order:       "degree-desc",
			Compression: config.CompressionConfig{WarnSize: 32},
			Randomized:  config.RandomizedConfig{Repeats: 1},
			Log:         config.LogConfig{Level: "warn"},
			Output:      config.OutputConfig{Format: "json"},
		}
	}
	base := valid()
	require.NoError(t, base.Validate())

	cases := map[string]func(c *config.Config){
		"algorithm": func(c *config.Config) { c.Algorithm = "exact" },
		"workers":   func(c *config.Config) { c.Workers = -2 },
		"timeout":   func(c *config.Config) { c.Timeout = -time.Second },
		"probes":    func(c *config.Config) { c.Kernel.MaxForcedProbes = -1 },
		"warn size": func(c *config.Config) { c.Compression.WarnSize = 65 },
		"repeats":   func(c *config.Config) { c.Randomized.Repeats = 0 },
		"format":    func(c *config.Config) { c.Output.Format = "xml" },
		"order":     func(c *config.Config) { c.Order = "random" },
		"log level": func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}
