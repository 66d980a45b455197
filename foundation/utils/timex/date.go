// File: date.go
// Title: Date Formatting
// Description: Formats timestamps with named or Go layouts in a configured
//              time zone and locale.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package timex

import (
	"strings"
	"time"

	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/options"
)

// Named layouts accepted by FormatDate. "short" depends on the locale.
var namedLayouts = map[string]string{
	"iso":      ISO8601,
	"date":     ISO8601Date,
	"time":     ISO8601Time,
	"datetime": BusinessDateTime,
	"rfc3339":  time.RFC3339,
	"rfc1123":  time.RFC1123,
	"kitchen":  time.Kitchen,
	"compact":  CompactDateTime,
	"log":      LogTimestamp,
	"display":  DisplayDate,
}

var shortLocales = []string{"en-US", "en-GB", "de", "fr", "ja", "zh"}

var shortLayouts = map[string]string{
	"en-US": ShortDateUS,
	"en-GB": ShortDateGB,
	"de":    ShortDateDE,
	"fr":    ShortDateGB,
	"ja":    ShortDateISO,
	"zh":    ShortDateISO,
}

// DateFormatOptions are call-site overrides; nil fields keep the default.
type DateFormatOptions struct {
	Format   *string
	Timezone *string
	Locale   *string
}

// DateFormatSpec is the effective date formatting configuration
type DateFormatSpec struct {
	Format   string
	Timezone string
	Locale   string
}

// DefaultDateFormatSpec returns the built-in date defaults
func DefaultDateFormatSpec() DateFormatSpec {
	return DateFormatSpec{
		Format: "date",
		Locale: i18n.DefaultLocale,
	}
}

// FormatDate renders t in the configured zone. Format is a named layout
// (iso, date, time, datetime, rfc3339, rfc1123, kitchen, compact, log,
// display, short) or any Go reference layout.
func FormatDate(t time.Time, opts ...DateFormatOptions) (string, error) {
	global := config.Current()
	spec := options.Resolve(DefaultDateFormatSpec(), global.DateTime)
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	if strings.TrimSpace(spec.Format) == "" {
		return "", errors.InvalidSpec(errors.ModuleTimex, "FormatDate", "format", spec.Format, "must not be empty")
	}
	loc, err := LoadLocation(spec.Timezone)
	if err != nil {
		return "", errors.InvalidSpecCause(errors.ModuleTimex, "FormatDate", "timezone", spec.Timezone, err)
	}

	return t.In(loc).Format(LayoutFor(spec.Format, spec.Locale)), nil
}

// LayoutFor maps a named format to a Go layout. Unknown names are returned
// unchanged and used as layouts.
func LayoutFor(format, locale string) string {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "short" {
		if match := i18n.MatchLocale(locale, shortLocales); match != "" {
			return shortLayouts[match]
		}
		return ShortDateUS
	}
	if layout, ok := namedLayouts[name]; ok {
		return layout
	}
	return format
}
