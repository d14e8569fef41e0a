// Package config loads the optional loom.yaml server configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the optional loom.yaml configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Address is the listen address (default ":8080").
	Address string `yaml:"address,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default "loom").
	Namespace string `yaml:"namespace,omitempty"`
}

// SessionConfig contains per-session limits.
type SessionConfig struct {
	// ReadTimeout is the maximum time to wait for a client message.
	ReadTimeout Duration `yaml:"read_timeout,omitempty"`

	// WriteTimeout is the maximum time to wait when sending a message.
	WriteTimeout Duration `yaml:"write_timeout,omitempty"`

	// MaxMessageSize is the maximum incoming message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size,omitempty"`
}

// Duration is a time.Duration that unmarshals from strings like "60s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when no loom.yaml is present.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Address: ":8080"},
		Metrics: MetricsConfig{Namespace: "loom"},
		Session: SessionConfig{
			ReadTimeout:    Duration(60 * time.Second),
			WriteTimeout:   Duration(10 * time.Second),
			MaxMessageSize: 64 * 1024,
		},
	}
}

// Load reads and validates a loom.yaml file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Address == "" {
		return errors.New("server.address must not be empty")
	}
	if c.Session.ReadTimeout <= 0 {
		return errors.New("session.read_timeout must be positive")
	}
	if c.Session.WriteTimeout <= 0 {
		return errors.New("session.write_timeout must be positive")
	}
	if c.Session.MaxMessageSize <= 0 {
		return errors.New("session.max_message_size must be positive")
	}
	return nil
}
