// File: config/config_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Workers < 1 {
		t.Errorf("default workers = %d, want >= 1", cfg.Workers)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	data := []byte("workers: 8\nlane_capacity: 256\nidle_spins: 2\nmax_idle_nap: 500us\npin_workers: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Workers)
	}
	if cfg.LaneCapacity != 256 {
		t.Errorf("lane_capacity = %d, want 256", cfg.LaneCapacity)
	}
	if cfg.IdleSpins != 2 {
		t.Errorf("idle_spins = %d, want 2", cfg.IdleSpins)
	}
	if cfg.MaxIdleNap != Duration(500*time.Microsecond) {
		t.Errorf("max_idle_nap = %v, want 500us", cfg.MaxIdleNap)
	}
	if !cfg.PinWorkers {
		t.Error("pin_workers should be true")
	}
}

func TestLoad_PartialFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Workers != 2 || cfg.LaneCapacity != def.LaneCapacity || cfg.IdleSpins != def.IdleSpins {
		t.Errorf("partial config = %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Workers: -1},
		{LaneCapacity: -1},
		{IdleSpins: -1},
		{MaxIdleNap: Duration(-time.Second)},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d should be invalid: %+v", i, cfg)
		}
	}
}
