// Package config loads the taxicab command configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML file,
// TAXICAB_* environment variables, then flags set on the command line
// (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/taxicab/search"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvBound    = "TAXICAB_BOUND"
	EnvWorkers  = "TAXICAB_WORKERS"
	EnvLogLevel = "TAXICAB_LOG_LEVEL"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective command configuration.
type Config struct {
	Bound    uint64 `yaml:"bound"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig reproduces the reference run: bound 1000, one worker,
// warnings only.
func DefaultConfig() *Config {
	return &Config{
		Bound:    search.DefaultBound,
		Workers:  search.DefaultWorkers,
		LogLevel: "warn",
	}
}

// Load reads path on top of the defaults and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
			}
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides replaces fields whose TAXICAB_* variable is set.
func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvBound); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvBound, v, err)
		}
		c.Bound = n
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		c.Workers = w
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}

	return nil
}

// Validate rejects bounds that would overflow and negative worker counts.
func (c *Config) Validate() error {
	if err := search.CheckBound(c.Bound); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// SearchOptions converts c into search options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithBound(c.Bound),
		search.WithWorkers(c.Workers),
	}
}
