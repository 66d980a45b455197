// File: timex.go
// Title: Core Time Utilities
// Description: Layout constants, cached time zone lookup and tolerant
//              parsing of timestamps and durations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic,
//                       enhanced European date parsing support (DD.MM.YYYY format),
//                       improved negative duration validation
// - 2026-10-17 v0.2.0: Reduced to parsing and zone lookup for date and countdown
//                       formatting, toolkit error codes

package timex

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/msto63/ztk/foundation/core/errors"
)

// Common time layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDateTime = "2006-01-02 15:04:05"

	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"

	ShortDateUS   = "01/02/2006"
	ShortDateGB   = "02/01/2006"
	ShortDateDE   = "02.01.2006"
	ShortDateISO  = "2006/01/02"
	ShortDateTime = "01/02/2006 15:04"

	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"

	LogTimestamp = "2006-01-02 15:04:05.000"
)

// locations caches *time.Location by zone name
var locations sync.Map

// LoadLocation resolves a zone name through a cache. "" and "local" select
// the process's local zone; "utc" is accepted in any case.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}

	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	locations.Store(name, loc)
	return loc, nil
}

// parseLayouts are tried in order by Parse
var parseLayouts = []string{
	time.RFC3339Nano,
	ISO8601,
	ISO8601DateTime,
	BusinessDateTime,
	LogTimestamp,
	ISO8601Date,
	ShortDateTime,
	ShortDateUS,
	ShortDateDE,
	DisplayDateTime,
	DisplayDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
}

// Parse parses value with the common layouts above. An all-digit value that
// is not a compact date or date-time is read as Unix seconds. Times without
// a zone are read in loc; a nil loc means UTC.
func Parse(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.InvalidInput(errors.ModuleTimex, "Parse", value, "a timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}

	if len(value) != len(CompactDate) && len(value) != len(CompactDateTime) {
		if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
			return time.Unix(secs, 0).In(loc), nil
		}
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.InvalidInput(errors.ModuleTimex, "Parse", value, "a supported timestamp layout")
}

// ParseDuration accepts Go durations ("1h30m") and "<n> <unit>" phrases
// such as "2 days" or "1.5 weeks". Negative durations are rejected.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0, errors.InvalidInput(errors.ModuleTimex, "ParseDuration", value, "a duration")
	}
	if strings.HasPrefix(value, "-") {
		return 0, errors.InvalidInput(errors.ModuleTimex, "ParseDuration", value, "a non-negative duration")
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	parts := strings.Fields(value)
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil && num >= 0 {
			unit := strings.TrimSuffix(parts[1], "s")
			switch unit {
			case "second", "sec":
				return time.Duration(num * float64(time.Second)), nil
			case "minute", "min":
				return time.Duration(num * float64(time.Minute)), nil
			case "hour", "hr":
				return time.Duration(num * float64(time.Hour)), nil
			case "day":
				return time.Duration(num * float64(24*time.Hour)), nil
			case "week":
				return time.Duration(num * float64(7*24*time.Hour)), nil
			}
		}
	}

	return 0, errors.InvalidInput(errors.ModuleTimex, "ParseDuration", value, "a duration like 1h30m or 2 days")
}
