// File: config/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool configuration with YAML loading and validation.

package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "500us" or "2ms" as well as plain nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("parse duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config describes how to build a worker pool.
type Config struct {
	// Workers is the number of worker threads. 0 means detected hardware
	// concurrency.
	Workers int `yaml:"workers"`

	// LaneCapacity is the fast-path ring size of each queue lane.
	LaneCapacity int `yaml:"lane_capacity"`

	// IdleSpins is how many escalating backoff naps a worker takes on an
	// empty queue before parking.
	IdleSpins int `yaml:"idle_spins"`

	// MaxIdleNap bounds a single backoff nap.
	MaxIdleNap Duration `yaml:"max_idle_nap"`

	// PinWorkers pins each worker's OS thread to a CPU.
	PinWorkers bool `yaml:"pin_workers"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		LaneCapacity: 1024,
		IdleSpins:    4,
		MaxIdleNap:   Duration(time.Millisecond),
		PinWorkers:   false,
	}
}

// Load reads a YAML config file. Unset fields fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for contract violations.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.LaneCapacity < 0 {
		return fmt.Errorf("lane_capacity must be >= 0, got %d", c.LaneCapacity)
	}
	if c.IdleSpins < 0 {
		return fmt.Errorf("idle_spins must be >= 0, got %d", c.IdleSpins)
	}
	if c.MaxIdleNap < 0 {
		return fmt.Errorf("max_idle_nap must be >= 0, got %v", c.MaxIdleNap)
	}
	return nil
}
