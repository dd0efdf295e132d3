package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Hub.Listen != Default().Hub.Listen {
		t.Errorf("expected default listen address, got %q", cfg.Hub.Listen)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
log_level: debug
hub:
  listen: 0.0.0.0:9000
  refresh:
    initial: 1s
    multiplier: 2
    max: 10s
  seeds:
    - address: net:192.168.1.4:8008~shs:abc
      type: lan
      name: laptop
client:
  animation_duration: 400ms
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.Hub.Listen != "0.0.0.0:9000" {
		t.Errorf("unexpected listen %q", cfg.Hub.Listen)
	}
	if cfg.Hub.Refresh.Initial != time.Second || cfg.Hub.Refresh.Max != 10*time.Second {
		t.Errorf("unexpected refresh %+v", cfg.Hub.Refresh)
	}
	if cfg.Client.AnimationDuration != 400*time.Millisecond {
		t.Errorf("unexpected animation duration %s", cfg.Client.AnimationDuration)
	}
	if cfg.Client.Hub != Default().Client.Hub {
		t.Errorf("expected untouched client.hub default, got %q", cfg.Client.Hub)
	}
	if len(cfg.Hub.Seeds) != 1 || cfg.Hub.Seeds[0].Type != "lan" || cfg.Hub.Seeds[0].Name != "laptop" {
		t.Errorf("unexpected seeds %+v", cfg.Hub.Seeds)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("client:\n  animation_duration: 0s\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.LogLevel = "warn"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LogLevel != "warn" {
		t.Errorf("expected warn, got %q", loaded.LogLevel)
	}
}
