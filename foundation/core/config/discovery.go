// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds a configuration file across a list of directories,
//              base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-17 v0.2.0: Reduced to path discovery, loading moved to LoadFile

package config

import (
	"os"
	"path/filepath"

	"github.com/msto63/ztk/foundation/core/errors"
)

// DiscoveryOptions defines where to look for configuration files
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
}

// DefaultDiscoveryOptions searches the working directory, the user config
// directory and /etc for ztk.toml, ztk.yaml and ztk.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "ztk"))
	}
	paths = append(paths, "/etc/ztk")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"ztk", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var files []string
	for _, path := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				files = append(files, filepath.Join(path, name+ext))
			}
		}
	}
	return files
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", errors.NotFound(errors.ModuleConfig, "FindConfigFile", "configuration file")
}
