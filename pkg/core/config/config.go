// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     config
// Description: Application configuration of the ztk command line tool
// Author:      Mike Stoffels
// Created:     2025-12-06
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	toolkit "github.com/msto63/ztk/foundation/core/config"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "ZTK_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig        `toml:"general"`
	Toolkit   toolkit.GlobalConfig `toml:"toolkit"`
	Countdown CountdownConfig      `toml:"countdown"`

	// Path is the file the configuration was read from
	Path string `toml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// ToolkitFile is a TOML or YAML file merged over the [toolkit] section;
	// relative paths are resolved against the directory of this file.
	ToolkitFile string `toml:"toolkit_file"`

	// Watch reloads ToolkitFile while long-running commands execute
	Watch bool `toml:"watch"`
}

// CountdownConfig holds settings of the live countdown view
type CountdownConfig struct {
	Refresh Duration `toml:"refresh"`
	Format  string   `toml:"format"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}

	cfg.Path = path
	if cfg.General.ToolkitFile != "" {
		cfg.General.ToolkitFile = os.ExpandEnv(cfg.General.ToolkitFile)
		if !filepath.IsAbs(cfg.General.ToolkitFile) {
			cfg.General.ToolkitFile = filepath.Join(filepath.Dir(path), cfg.General.ToolkitFile)
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// DefaultPaths lists the locations searched when ZTK_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{
		"./configs/ztk-cli.toml",
		"./ztk-cli.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ztk", "cli.toml"))
	}
	return paths
}

// LoadFromEnv loads configuration from the ZTK_CONFIG environment variable
// or the first existing default path. Without any file the defaults are
// returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "ztk"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	if c.Countdown.Refresh.Duration <= 0 {
		c.Countdown.Refresh.Duration = time.Second
	}
	if c.Countdown.Format == "" {
		c.Countdown.Format = "long"
	}
}
