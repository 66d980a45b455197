// File: countdown.go
// Title: Countdown Formatting
// Description: Renders the time left until a target as days, hours, minutes
//              and seconds with short, long or custom labels.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package timex

import (
	"math"
	"strings"
	"time"

	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/options"
)

// CountdownFormat selects the unit label style
type CountdownFormat string

const (
	CountdownShort  CountdownFormat = "short"
	CountdownLong   CountdownFormat = "long"
	CountdownCustom CountdownFormat = "custom"
)

// DefaultExpiredLabel is rendered when the target has been reached
const DefaultExpiredLabel = "expired"

const maxCountdownUnits = 4

// CountdownLabels holds singular and plural unit names for the custom
// format. Empty fields fall back to the long English labels.
type CountdownLabels struct {
	Days          string `json:"days,omitempty" yaml:"days,omitempty"`
	Hours         string `json:"hours,omitempty" yaml:"hours,omitempty"`
	Minutes       string `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds       string `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	DaysPlural    string `json:"daysPlural,omitempty" yaml:"days_plural,omitempty"`
	HoursPlural   string `json:"hoursPlural,omitempty" yaml:"hours_plural,omitempty"`
	MinutesPlural string `json:"minutesPlural,omitempty" yaml:"minutes_plural,omitempty"`
	SecondsPlural string `json:"secondsPlural,omitempty" yaml:"seconds_plural,omitempty"`
}

// LongLabels are the labels of the long format
var LongLabels = CountdownLabels{
	Days: "day", Hours: "hour", Minutes: "minute", Seconds: "second",
	DaysPlural: "days", HoursPlural: "hours", MinutesPlural: "minutes", SecondsPlural: "seconds",
}

var shortSuffixes = [maxCountdownUnits]string{"d", "h", "m", "s"}

// CountdownOptions are call-site overrides; nil fields keep the default.
type CountdownOptions struct {
	Format       *CountdownFormat
	Labels       *CountdownLabels
	ShowZeros    *bool
	MaxUnits     *int
	Separator    *string
	Locale       *string
	ExpiredLabel *string
}

// CountdownSpec is the effective countdown configuration
type CountdownSpec struct {
	Format       CountdownFormat
	Labels       CountdownLabels
	ShowZeros    bool
	MaxUnits     int
	Separator    string
	Locale       string
	ExpiredLabel string
}

// DefaultCountdownSpec returns the built-in countdown defaults
func DefaultCountdownSpec() CountdownSpec {
	return CountdownSpec{
		Format:       CountdownShort,
		MaxUnits:     maxCountdownUnits,
		Separator:    " ",
		Locale:       i18n.DefaultLocale,
		ExpiredLabel: DefaultExpiredLabel,
	}
}

// countdownGlobals is the slice of the global configuration countdowns read
type countdownGlobals struct {
	Locale *string
}

// RemainingTimeForCountdown renders the whole seconds between now and target
// (both Unix seconds). Leading zero units are dropped unless ShowZeros is
// set, then at most MaxUnits units are kept, most significant first. A
// target at or before now renders ExpiredLabel, or zero seconds with
// ShowZeros.
func RemainingTimeForCountdown(target, now int64, opts ...CountdownOptions) (string, error) {
	global := config.Current()
	var slice countdownGlobals
	if global.DateTime != nil {
		slice.Locale = global.DateTime.Locale
	}

	spec := options.Resolve(DefaultCountdownSpec(), slice)
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	if spec.MaxUnits < 1 {
		return "", errors.InvalidSpec(errors.ModuleTimex, "RemainingTimeForCountdown", "maxUnits", spec.MaxUnits, "must be at least 1")
	}
	if spec.MaxUnits > maxCountdownUnits {
		spec.MaxUnits = maxCountdownUnits
	}
	switch spec.Format {
	case CountdownShort, CountdownLong, CountdownCustom:
	default:
		return "", errors.InvalidSpec(errors.ModuleTimex, "RemainingTimeForCountdown", "format", spec.Format, "must be short, long or custom")
	}

	labels := spec.Labels.withFallback(LongLabels)
	if target <= now {
		if !spec.ShowZeros {
			return spec.ExpiredLabel, nil
		}
		return renderUnit(spec.Format, labels, maxCountdownUnits-1, 0, spec.Locale), nil
	}
	delta := target - now
	if delta < 0 {
		// the difference overflowed int64
		delta = math.MaxInt64
	}

	values := [maxCountdownUnits]int64{
		delta / 86400,
		delta % 86400 / 3600,
		delta % 3600 / 60,
		delta % 60,
	}

	first := 0
	if !spec.ShowZeros {
		for first < maxCountdownUnits-1 && values[first] == 0 {
			first++
		}
	}
	last := first + spec.MaxUnits
	if last > maxCountdownUnits {
		last = maxCountdownUnits
	}

	parts := make([]string, 0, last-first)
	for unit := first; unit < last; unit++ {
		parts = append(parts, renderUnit(spec.Format, labels, unit, values[unit], spec.Locale))
	}
	return strings.Join(parts, spec.Separator), nil
}

// RemainingTime is RemainingTimeForCountdown for time.Time values
func RemainingTime(target, now time.Time, opts ...CountdownOptions) (string, error) {
	return RemainingTimeForCountdown(target.Unix(), now.Unix(), opts...)
}

func renderUnit(format CountdownFormat, labels CountdownLabels, unit int, n int64, locale string) string {
	number := i18n.FormatInteger(locale, n)
	if format == CountdownShort {
		return number + shortSuffixes[unit]
	}
	if format == CountdownLong {
		labels = LongLabels
	}
	return number + " " + labels.label(unit, n)
}

func (l CountdownLabels) label(unit int, n int64) string {
	singular := [maxCountdownUnits]string{l.Days, l.Hours, l.Minutes, l.Seconds}
	plural := [maxCountdownUnits]string{l.DaysPlural, l.HoursPlural, l.MinutesPlural, l.SecondsPlural}
	if n == 1 {
		return singular[unit]
	}
	return plural[unit]
}

// withFallback fills empty labels from fallback
func (l CountdownLabels) withFallback(fallback CountdownLabels) CountdownLabels {
	pick := func(v, fb string) string {
		if v == "" {
			return fb
		}
		return v
	}
	return CountdownLabels{
		Days:          pick(l.Days, fallback.Days),
		Hours:         pick(l.Hours, fallback.Hours),
		Minutes:       pick(l.Minutes, fallback.Minutes),
		Seconds:       pick(l.Seconds, fallback.Seconds),
		DaysPlural:    pick(l.DaysPlural, fallback.DaysPlural),
		HoursPlural:   pick(l.HoursPlural, fallback.HoursPlural),
		MinutesPlural: pick(l.MinutesPlural, fallback.MinutesPlural),
		SecondsPlural: pick(l.SecondsPlural, fallback.SecondsPlural),
	}
}
