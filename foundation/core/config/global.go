// File: global.go
// Title: Global Configuration Model
// Description: Process-wide defaults consulted by every toolkit operation.
//              All fields are optional; nil means "not configured".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package config

import (
	"github.com/msto63/ztk/foundation/utils/mapx"
	"github.com/msto63/ztk/foundation/utils/slicex"
)

// GlobalConfig holds the process-wide option overrides. Each top-level field
// is a slice of configuration for one concern.
type GlobalConfig struct {
	CryptoSecret  *string           `toml:"crypto_secret,omitempty" yaml:"crypto_secret,omitempty" json:"cryptoSecret,omitempty"`
	FileUpload    *FileUploadConfig `toml:"file_upload,omitempty" yaml:"file_upload,omitempty" json:"fileUpload,omitempty"`
	DateTime      *DateTimeConfig   `toml:"date_time,omitempty" yaml:"date_time,omitempty" json:"dateTime,omitempty"`
	Currency      *CurrencyConfig   `toml:"currency,omitempty" yaml:"currency,omitempty" json:"currency,omitempty"`
	ErrorMessages map[string]string `toml:"error_messages,omitempty" yaml:"error_messages,omitempty" json:"errorMessages,omitempty"`
	Validation    *ValidationConfig `toml:"validation,omitempty" yaml:"validation,omitempty" json:"validation,omitempty"`
}

// FileUploadConfig configures file upload validation
type FileUploadConfig struct {
	// MaxSize is in megabytes
	MaxSize      *float64 `toml:"max_size,omitempty" yaml:"max_size,omitempty" json:"maxSize,omitempty"`
	AllowedTypes []string `toml:"allowed_types,omitempty" yaml:"allowed_types,omitempty" json:"allowedTypes,omitempty"`
}

// DateTimeConfig configures date and countdown formatting
type DateTimeConfig struct {
	Format   *string `toml:"format,omitempty" yaml:"format,omitempty" json:"format,omitempty"`
	Timezone *string `toml:"timezone,omitempty" yaml:"timezone,omitempty" json:"timezone,omitempty"`
	Locale   *string `toml:"locale,omitempty" yaml:"locale,omitempty" json:"locale,omitempty"`
}

// CurrencyConfig configures currency formatting
type CurrencyConfig struct {
	Symbol   *string `toml:"symbol,omitempty" yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Decimals *int    `toml:"decimals,omitempty" yaml:"decimals,omitempty" json:"decimals,omitempty"`
	Locale   *string `toml:"locale,omitempty" yaml:"locale,omitempty" json:"locale,omitempty"`
}

// ValidationConfig configures email and phone validation
type ValidationConfig struct {
	EmailDomains     []string `toml:"email_domains,omitempty" yaml:"email_domains,omitempty" json:"emailDomains,omitempty"`
	PhoneCountryCode *string  `toml:"phone_country_code,omitempty" yaml:"phone_country_code,omitempty" json:"phoneCountryCode,omitempty"`
}

// Error message keys looked up in GlobalConfig.ErrorMessages
const (
	MessageKeyFileSize = "fileSize"
	MessageKeyFileType = "fileType"
	MessageKeyCustom   = "custom"
	MessageKeyEmail    = "email"
	MessageKeyPhone    = "phone"
)

// Clone returns a deep copy of c
func (c GlobalConfig) Clone() GlobalConfig {
	out := GlobalConfig{
		CryptoSecret:  clonePtr(c.CryptoSecret),
		ErrorMessages: mapx.Clone(c.ErrorMessages),
	}
	if c.FileUpload != nil {
		out.FileUpload = &FileUploadConfig{
			MaxSize:      clonePtr(c.FileUpload.MaxSize),
			AllowedTypes: slicex.Clone(c.FileUpload.AllowedTypes),
		}
	}
	if c.DateTime != nil {
		out.DateTime = &DateTimeConfig{
			Format:   clonePtr(c.DateTime.Format),
			Timezone: clonePtr(c.DateTime.Timezone),
			Locale:   clonePtr(c.DateTime.Locale),
		}
	}
	if c.Currency != nil {
		out.Currency = &CurrencyConfig{
			Symbol:   clonePtr(c.Currency.Symbol),
			Decimals: clonePtr(c.Currency.Decimals),
			Locale:   clonePtr(c.Currency.Locale),
		}
	}
	if c.Validation != nil {
		out.Validation = &ValidationConfig{
			EmailDomains:     slicex.Clone(c.Validation.EmailDomains),
			PhoneCountryCode: clonePtr(c.Validation.PhoneCountryCode),
		}
	}
	return out
}

// merge applies the shallow merge rule: every non-nil top-level field of
// partial replaces the corresponding field of c wholesale.
func (c GlobalConfig) merge(partial GlobalConfig) GlobalConfig {
	out := c
	if partial.CryptoSecret != nil {
		out.CryptoSecret = partial.CryptoSecret
	}
	if partial.FileUpload != nil {
		out.FileUpload = partial.FileUpload
	}
	if partial.DateTime != nil {
		out.DateTime = partial.DateTime
	}
	if partial.Currency != nil {
		out.Currency = partial.Currency
	}
	if partial.ErrorMessages != nil {
		out.ErrorMessages = partial.ErrorMessages
	}
	if partial.Validation != nil {
		out.Validation = partial.Validation
	}
	return out
}

// ErrorMessage returns the configured message template for key
func (c GlobalConfig) ErrorMessage(key string) (string, bool) {
	msg, ok := c.ErrorMessages[key]
	return msg, ok
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
