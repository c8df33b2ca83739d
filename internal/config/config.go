package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDBPath         = "./data/db.json"
	DefaultServiceManager = "systemctl"
	DefaultActionTimeout  = 10 * time.Second
	DefaultTickRate       = 200 * time.Millisecond
	DefaultLogPath        = "/tmp/arkmgr.log"
)

// Config holds CLI configuration stored at ~/.arkmgr/config.
type Config struct {
	DBPath         string        `yaml:"db_path"`
	ServiceManager string        `yaml:"service_manager"`
	ActionTimeout  time.Duration `yaml:"action_timeout"`
	TickRate       time.Duration `yaml:"tick_rate"`
	LogPath        string        `yaml:"log_path"`
	Debug          bool          `yaml:"debug,omitempty"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = DefaultDBPath
	}
	if strings.TrimSpace(c.ServiceManager) == "" {
		c.ServiceManager = DefaultServiceManager
	}
	if c.ActionTimeout <= 0 {
		c.ActionTimeout = DefaultActionTimeout
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if strings.TrimSpace(c.LogPath) == "" {
		c.LogPath = DefaultLogPath
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".arkmgr", "config")
}

// Load reads ~/.arkmgr/config. A missing file yields an error wrapping os.ErrNotExist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses the config at path, filling blank fields with defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to ~/.arkmgr/config.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
