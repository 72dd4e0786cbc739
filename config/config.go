// Package config loads the node and simulation settings.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/igra9/sot-tools/powerlaw"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Node     NodeConfig          `yaml:"node"`
	PowerLaw powerlaw.Parameters `yaml:"power_law"`
	Sim      SimConfig           `yaml:"sim"`
}

type NodeConfig struct {
	Name   string  `yaml:"name"`   // Empty for a generated name
	Period float64 `yaml:"period"` // Seconds per tick
}

// SimConfig holds settings for the fake biped driven by the CLI.
type SimConfig struct {
	Ticks        int     `yaml:"ticks"`
	LogEvery     int     `yaml:"log_every"`     // Log the pose every N ticks
	StanceWidth  float64 `yaml:"stance_width"`  // Distance between the feet
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	StartHeading float64 `yaml:"start_heading"` // Radians
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Only overwrites fields present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Node.Period <= 0 {
		return fmt.Errorf("node.period must be positive, got %v", c.Node.Period)
	}

	if c.Sim.Ticks < 0 {
		return fmt.Errorf("sim.ticks must not be negative, got %d", c.Sim.Ticks)
	}

	return nil
}

// WriteYAML writes the configuration to the given path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
