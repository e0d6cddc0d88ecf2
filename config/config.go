// Package config loads frogger settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/frogger/constants"
)

// Console backends
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Config holds startup settings. TargetFPS and Sound are also applied on hot reload
type Config struct {
	TargetFPS int         `yaml:"target_fps"`
	Spawn     SpawnConfig `yaml:"spawn"`
	Backend   string      `yaml:"backend"`
	Sound     bool        `yaml:"sound"`
	Log       LogConfig   `yaml:"log"`
}

type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TargetFPS: constants.TargetFPS,
		Spawn: SpawnConfig{
			X: constants.SpawnX,
			Y: constants.SpawnY,
		},
		Backend: BackendTcell,
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the loop cannot run with
func (c *Config) Validate() error {
	if c.TargetFPS < 1 || c.TargetFPS > constants.MaxTargetFPS {
		return fmt.Errorf("config: target_fps %d out of range [1, %d]", c.TargetFPS, constants.MaxTargetFPS)
	}
	switch c.Backend {
	case BackendTcell, BackendANSI:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", c.Backend, BackendTcell, BackendANSI)
	}
	return nil
}

// TargetFrameDuration is the per-frame budget for TargetFPS
func (c *Config) TargetFrameDuration() time.Duration {
	if c.TargetFPS <= 0 {
		return constants.TargetFrameDuration
	}
	return time.Second / time.Duration(c.TargetFPS)
}
