// File: load.go
// Title: Configuration File Loading
// Description: Loads a GlobalConfig from TOML or YAML documents and applies
//              environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Decodes into the typed GlobalConfig instead of a generic map

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format Format

	// EnvPrefix enables environment overrides such as ZTK_CURRENCY_SYMBOL
	EnvPrefix string
}

// LoadFile loads a GlobalConfig from filePath
func LoadFile(filePath string, options LoadOptions) (GlobalConfig, error) {
	if strings.TrimSpace(filePath) == "" {
		return GlobalConfig{}, errors.InvalidInput(errors.ModuleConfig, "LoadFile", filePath, "non-empty file path")
	}

	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return GlobalConfig{}, errors.NotFound(errors.ModuleConfig, "LoadFile", filePath)
	}
	if err != nil {
		return GlobalConfig{}, errors.ConfigError("LoadFile", filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := parseContent(content, format)
	if err != nil {
		return GlobalConfig{}, errors.ConfigError("LoadFile", filePath, err)
	}

	if options.EnvPrefix != "" {
		if err := applyEnv(&cfg, options.EnvPrefix); err != nil {
			return GlobalConfig{}, err
		}
	}
	return cfg, nil
}

// LoadFromString parses a GlobalConfig from content
func LoadFromString(content string, format Format) (GlobalConfig, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	cfg, err := parseContent([]byte(content), format)
	if err != nil {
		return GlobalConfig{}, errors.ConfigError("LoadFromString", "<string>", err)
	}
	return cfg, nil
}

// ConfigureFromFile loads filePath and merges it into the default store
func ConfigureFromFile(filePath string, options LoadOptions) error {
	cfg, err := LoadFile(filePath, options)
	if err != nil {
		return err
	}
	Configure(cfg)
	return nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (GlobalConfig, error) {
	var cfg GlobalConfig

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&cfg)
		if err != nil {
			return GlobalConfig{}, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			log.Named("config").Warn("ignoring unknown configuration keys", log.Fields{"keys": keys})
		}
	case FormatYAML:
		if len(bytes.TrimSpace(content)) == 0 {
			return cfg, nil
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return GlobalConfig{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return GlobalConfig{}, fmt.Errorf("unsupported format: %s", format)
	}

	return cfg, nil
}

// applyEnv overrides cfg from <PREFIX>_* environment variables. Only the
// addressed leaf is replaced; the rest of its slice is kept.
func applyEnv(cfg *GlobalConfig, prefix string) error {
	prefix = strings.TrimSuffix(strings.ToUpper(prefix), "_") + "_"
	lookup := func(name string) (string, bool) {
		v, ok := os.LookupEnv(prefix + name)
		return v, ok && v != ""
	}

	if v, ok := lookup("CRYPTO_SECRET"); ok {
		cfg.CryptoSecret = &v
	}

	currency := func() *CurrencyConfig {
		if cfg.Currency == nil {
			cfg.Currency = &CurrencyConfig{}
		}
		return cfg.Currency
	}
	if v, ok := lookup("CURRENCY_SYMBOL"); ok {
		currency().Symbol = &v
	}
	if v, ok := lookup("CURRENCY_DECIMALS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.ConfigError("applyEnv", prefix+"CURRENCY_DECIMALS", err)
		}
		currency().Decimals = &n
	}
	if v, ok := lookup("CURRENCY_LOCALE"); ok {
		currency().Locale = &v
	}

	dateTime := func() *DateTimeConfig {
		if cfg.DateTime == nil {
			cfg.DateTime = &DateTimeConfig{}
		}
		return cfg.DateTime
	}
	if v, ok := lookup("DATETIME_FORMAT"); ok {
		dateTime().Format = &v
	}
	if v, ok := lookup("DATETIME_TIMEZONE"); ok {
		dateTime().Timezone = &v
	}
	if v, ok := lookup("DATETIME_LOCALE"); ok {
		dateTime().Locale = &v
	}

	if v, ok := lookup("FILEUPLOAD_MAX_SIZE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.ConfigError("applyEnv", prefix+"FILEUPLOAD_MAX_SIZE", err)
		}
		if cfg.FileUpload == nil {
			cfg.FileUpload = &FileUploadConfig{}
		}
		cfg.FileUpload.MaxSize = &f
	}

	return nil
}
