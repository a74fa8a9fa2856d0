// SPDX-License-Identifier: MIT
// File: loader.go
// Role: viper wiring.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName      = ".fvs"
	configType      = "yaml"
	envPrefix       = "FVS"
	envKeySeparator = "_"
)

// Load reads the configuration. A non-empty path names the config file
// explicitly; otherwise .fvs.yaml is looked up in the working directory and
// $HOME, and a missing file is not an error. overrides take precedence over
// every other source; keys use the dotted form, e.g. "kernel.forced_vertices".
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	for key, val := range overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("algorithm", DefaultAlgorithm)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("order", DefaultOrder)

	v.SetDefault("kernel.forced_vertices", DefaultForcedVertices)
	v.SetDefault("kernel.max_forced_probes", DefaultMaxForcedProbes)

	v.SetDefault("compression.warn_size", DefaultWarnSize)

	v.SetDefault("randomized.seed", DefaultSeed)
	v.SetDefault("randomized.repeats", DefaultRepeats)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("output.format", DefaultOutputFormat)
}
