// Package config holds the process-wide toolkit configuration.
//
// Package: config
// Title: Global Configuration Store
// Description: GlobalConfig carries optional overrides for every toolkit
//              operation. A Store publishes immutable snapshots; operations
//              read exactly one snapshot per call. Configurations can be
//              loaded from TOML or YAML files, overridden from the
//              environment and reloaded when their file changes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Generic map based configuration with TOML/YAML support
// - 2026-10-17 v0.2.0: Typed GlobalConfig, snapshot store, fsnotify watching
//
// Merge rule:
//
// Configure replaces every top-level field that is non-nil in the partial
// configuration. Nested values are replaced wholesale, never merged:
//
//	config.Configure(config.GlobalConfig{
//		Currency: &config.CurrencyConfig{Symbol: options.Of("€")},
//	})
//	// a later Configure with Currency{Decimals: 3} drops the symbol again
//
// Writers are expected to be serialized by the caller, typically by
// configuring once at startup.
//
// Files:
//
//	# ztk.toml
//	[currency]
//	symbol = "€"
//	decimals = 2
//	locale = "de-DE"
//
//	[file_upload]
//	max_size = 10.0
//	allowed_types = ["image/*", "application/pdf"]
//
//	[error_messages]
//	fileSize = "{{.Name}} is larger than {{.MaxSize}} MB"
//
//	err := config.ConfigureFromFile("ztk.toml", config.LoadOptions{EnvPrefix: "ZTK"})
package config
