package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDatabasePath = "notes.db"
	DefaultConfigFile   = "notepad.toml"
	DefaultWindowWidth  = 450
	DefaultWindowHeight = 620
)

type Config struct {
	DatabasePath string `toml:"database"`
	LogLevel     string `toml:"log_level"`
	JSONLogs     bool   `toml:"json_logs"`
	WindowWidth  int    `toml:"window_width"`
	WindowHeight int    `toml:"window_height"`
}

func Default() *Config {
	return &Config{
		DatabasePath: DefaultDatabasePath,
		LogLevel:     "info",
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load resolves defaults, then the TOML file named by NOTEPAD_CONFIG (or
// ./notepad.toml when present), then environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("NOTEPAD_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.DatabasePath = os.ExpandEnv(c.DatabasePath)
	return nil
}

func (c *Config) applyEnv() {
	if db := os.Getenv("NOTEPAD_DB"); db != "" {
		c.DatabasePath = db
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	} else if os.Getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}

	if jsonLogs := os.Getenv("NOTEPAD_JSON_LOGS"); jsonLogs != "" {
		c.JSONLogs = jsonLogs == "true" || jsonLogs == "1"
	}
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = DefaultWindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = DefaultWindowHeight
	}
}
