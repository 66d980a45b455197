// Package log provides structured logging for the ztk toolkit.
//
// Package: log
// Title: ZTK Structured Logging
// Description: Leveled, structured logging with persistent fields, named child
//              loggers and JSON, text, console and logfmt output. Library
//              packages log only at debug and warn level; the CLI configures
//              the default logger through pkg/core/logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Removed async buffering and request/user tracking, added run ids
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithName("filex")
//
//	logger.Warn("image decoding degraded", log.Fields{"timeout_ms": 5000})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("config_reload")
//	// ... reload
//	timer.Stop()
package log
