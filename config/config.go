// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Background ColorConfig      `yaml:"background"`
	Population PopulationConfig `yaml:"population"`
	Entity     EntityConfig     `yaml:"entity"`
	Walk       WalkConfig       `yaml:"walk"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// ColorConfig holds an RGBA color with float channels in [0, 1].
type ColorConfig struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

// PopulationConfig holds spawn parameters.
type PopulationConfig struct {
	// Size is the requested initial population.
	Size int `yaml:"size"`
	// HonorCount makes the spawner produce exactly Size entities.
	// When false the spawner keeps the historical behavior of always
	// producing 300, no matter what was requested.
	HonorCount bool `yaml:"honor_count"`
}

// EntityConfig holds entity creation parameters.
type EntityConfig struct {
	Size float64 `yaml:"size"`
}

// WalkConfig holds random-walk step parameters.
type WalkConfig struct {
	SpeedMean  float64 `yaml:"speed_mean"`
	SpeedSigma float64 `yaml:"speed_sigma"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW float64
	ScreenH float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Derived.ScreenW = float64(cfg.Screen.Width)
	cfg.Derived.ScreenH = float64(cfg.Screen.Height)

	return cfg, nil
}

// validate rejects parameter combinations the simulation cannot run with.
// Distribution parameters fail here rather than being silently replaced.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("config: screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Walk.SpeedSigma <= 0 {
		return fmt.Errorf("config: walk.speed_sigma must be positive, got %v", c.Walk.SpeedSigma)
	}
	if c.Entity.Size <= 0 {
		return fmt.Errorf("config: entity.size must be positive, got %v", c.Entity.Size)
	}
	if c.Population.Size < 0 {
		return fmt.Errorf("config: population.size must not be negative, got %d", c.Population.Size)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
