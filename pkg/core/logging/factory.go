// ============================================================================
// ZTK - Utility Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured foundation loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// Modified:    2026-10-17
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	ztklog "github.com/msto63/ztk/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the command
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// RunID correlates all entries of one invocation; empty generates one
	RunID string

	// Output defaults to stderr
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewLogger creates a foundation logger. Unknown levels or formats are
// reported instead of silently falling back.
func NewLogger(cfg LoggerConfig) (*ztklog.Logger, error) {
	level := ztklog.LevelWarn
	if cfg.Level != "" {
		parsed, err := ztklog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	format := ztklog.FormatConsole
	if cfg.Format != "" {
		parsed, err := ztklog.ParseFormat(cfg.Format)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		format = parsed
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	logger := ztklog.NewWithConfig(ztklog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}).WithRunID(runID)

	return logger, nil
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *ztklog.Logger {
	logger, err := NewLogger(DefaultLoggerConfig(name))
	if err != nil {
		// the defaults always parse
		panic(err)
	}
	return logger
}

// NewRunID returns a fresh run identifier
func NewRunID() string {
	return uuid.NewString()
}

// Install creates a logger and makes it the process default, so library
// packages logging through log.Named pick it up.
func Install(cfg LoggerConfig) (*ztklog.Logger, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	ztklog.SetDefault(logger)
	return logger, nil
}
