// File: check.go
// Title: Configuration Checks
// Description: Reports configured values that operations would reject when
//              they consume them. The store itself never validates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Rule based validation of generic configuration maps
// - 2026-10-17 v0.2.0: Fixed checks for the typed GlobalConfig

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/validation"
)

// Check inspects cfg and collects every problem found
func Check(cfg GlobalConfig) validation.ValidationResult {
	result := validation.NewValidationResult()

	if fu := cfg.FileUpload; fu != nil {
		if fu.MaxSize != nil && *fu.MaxSize <= 0 {
			result.AddFieldError(validation.CodeFormat, "file_upload.max_size", "must be greater than 0", *fu.MaxSize)
		}
		for _, t := range fu.AllowedTypes {
			if !strings.Contains(t, "/") {
				result.AddFieldError(validation.CodeFormat, "file_upload.allowed_types", fmt.Sprintf("%q is not a MIME type", t), t)
			}
		}
	}

	if dt := cfg.DateTime; dt != nil {
		if dt.Timezone != nil && *dt.Timezone != "" && !strings.EqualFold(*dt.Timezone, "local") {
			if _, err := time.LoadLocation(*dt.Timezone); err != nil {
				result.AddFieldError(validation.CodeFormat, "date_time.timezone", err.Error(), *dt.Timezone)
			}
		}
		checkLocale(&result, "date_time.locale", dt.Locale)
	}

	if c := cfg.Currency; c != nil {
		if c.Decimals != nil && *c.Decimals < 0 {
			result.AddFieldError(validation.CodeFormat, "currency.decimals", "must not be negative", *c.Decimals)
		}
		checkLocale(&result, "currency.locale", c.Locale)
	}

	for key, tmpl := range cfg.ErrorMessages {
		if err := i18n.CheckMessage(tmpl); err != nil {
			result.AddFieldError(validation.CodeFormat, "error_messages."+key, err.Error(), tmpl)
		}
	}

	return result
}

func checkLocale(result *validation.ValidationResult, field string, locale *string) {
	if locale == nil || *locale == "" {
		return
	}
	if _, ok := i18n.ParseLocale(*locale); !ok {
		result.AddFieldError(validation.CodeFormat, field, "unknown locale", *locale)
	}
}
