// Package config loads the YAML configuration shared by the hub and the
// client commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rudransh-shrivastava/peer-conn/internal/peer"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Hub      HubConfig    `yaml:"hub"`
	Client   ClientConfig `yaml:"client"`
}

type HubConfig struct {
	Listen       string             `yaml:"listen"`
	Database     string             `yaml:"database"`
	Refresh      BackoffConfig      `yaml:"refresh"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
	// Seeds are staged at startup, standing in for discovery.
	Seeds []peer.StagedPeer `yaml:"seeds"`
}

// BackoffConfig describes an exponential schedule.
type BackoffConfig struct {
	Initial    time.Duration `yaml:"initial"`
	Multiplier float64       `yaml:"multiplier"`
	Max        time.Duration `yaml:"max"`
}

type ConnectivityConfig struct {
	Bluetooth bool `yaml:"bluetooth"`
	LAN       bool `yaml:"lan"`
	Internet  bool `yaml:"internet"`
}

type ClientConfig struct {
	Hub               string        `yaml:"hub"`
	Listen            string        `yaml:"listen"`
	AnimationDuration time.Duration `yaml:"animation_duration"`
	Notes             string        `yaml:"notes"`
	Resubscribe       BackoffConfig `yaml:"resubscribe"`
}

func Default() *Config {
	dataDir := DefaultDir()

	return &Config{
		LogLevel: "info",
		Hub: HubConfig{
			Listen:   "127.0.0.1:7420",
			Database: filepath.Join(dataDir, "hub.sqlite3"),
			Refresh: BackoffConfig{
				Initial:    2 * time.Second,
				Multiplier: 3.2,
				Max:        60 * time.Second,
			},
			Connectivity: ConnectivityConfig{
				Bluetooth: false,
				LAN:       true,
				Internet:  true,
			},
		},
		Client: ClientConfig{
			Hub:               "127.0.0.1:7420",
			Listen:            "127.0.0.1:0",
			AnimationDuration: 250 * time.Millisecond,
			Notes:             filepath.Join(dataDir, "notes.sqlite3"),
			Resubscribe: BackoffConfig{
				Initial:    500 * time.Millisecond,
				Multiplier: 2,
				Max:        30 * time.Second,
			},
		},
	}
}

func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".peerconn")
}

func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Hub.Listen == "" {
		return fmt.Errorf("%w: hub.listen is empty", ErrInvalidConfig)
	}
	if c.Client.Hub == "" {
		return fmt.Errorf("%w: client.hub is empty", ErrInvalidConfig)
	}
	if c.Client.AnimationDuration <= 0 {
		return fmt.Errorf("%w: client.animation_duration must be positive", ErrInvalidConfig)
	}
	for _, b := range []BackoffConfig{c.Hub.Refresh, c.Client.Resubscribe} {
		if err := b.validate(); err != nil {
			return err
		}
	}
	for i, s := range c.Hub.Seeds {
		if s.Address == "" {
			return fmt.Errorf("%w: hub.seeds[%d] has no address", ErrInvalidConfig, i)
		}
	}
	return nil
}

func (b BackoffConfig) validate() error {
	if b.Initial <= 0 || b.Max < b.Initial {
		return fmt.Errorf("%w: backoff needs 0 < initial <= max, got %s and %s", ErrInvalidConfig, b.Initial, b.Max)
	}
	if b.Multiplier < 1 {
		return fmt.Errorf("%w: backoff multiplier %.2f is below 1", ErrInvalidConfig, b.Multiplier)
	}
	return nil
}
