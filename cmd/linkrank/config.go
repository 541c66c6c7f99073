package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkrank/pagerank"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Config holds the ranking parameters a YAML configuration file may set.
// Zero values mean "not set"; flags explicitly passed on the command line
// always win over file values.
//
// Example file:
//
//	damping: 0.85
//	samples: 10000
//	seed: 42
//	threshold: 0.001
//	max_sweeps: 1000
type Config struct {
	Damping   float64 `yaml:"damping"`
	Samples   int     `yaml:"samples"`
	Seed      int64   `yaml:"seed"`
	Threshold float64 `yaml:"threshold"`
	MaxSweeps int     `yaml:"max_sweeps"`
}

// DefaultConfig returns a Config populated with the pagerank package
// defaults.
func DefaultConfig() Config {
	return Config{
		Damping:   pagerank.DefaultDamping,
		Samples:   pagerank.DefaultSamples,
		Seed:      0,
		Threshold: pagerank.DefaultThreshold,
		MaxSweeps: pagerank.DefaultMaxSweeps,
	}
}

// LoadConfigFile loads ranking parameters from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that is fatal based on whether the path was user-supplied.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
