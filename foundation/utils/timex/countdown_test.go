package timex

import (
	"math"
	"testing"
	"time"

	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/options"
)

func TestRemainingTimeForCountdown(t *testing.T) {
	isolate(t)

	const now = 1_700_000_000
	long := options.Of(CountdownLong)

	tests := []struct {
		name  string
		delta int64
		opts  CountdownOptions
		want  string
	}{
		{"short all units", 90061, CountdownOptions{}, "1d 1h 1m 1s"},
		{"long singular", 90061, CountdownOptions{Format: long}, "1 day 1 hour 1 minute 1 second"},
		{"long max two units", 90061, CountdownOptions{Format: long, MaxUnits: options.Of(2)}, "1 day 1 hour"},
		{"long plural", 2*86400 + 3*3600, CountdownOptions{Format: long}, "2 days 3 hours 0 minutes 0 seconds"},
		{"leading zeros dropped", 65, CountdownOptions{}, "1m 5s"},
		{"leading zeros kept", 65, CountdownOptions{ShowZeros: options.Of(true)}, "0d 0h 1m 5s"},
		{"show zeros respects max units", 65, CountdownOptions{ShowZeros: options.Of(true), MaxUnits: options.Of(2)}, "0d 0h"},
		{"max units above four clamps", 90061, CountdownOptions{MaxUnits: options.Of(10)}, "1d 1h 1m 1s"},
		{"separator", 3661, CountdownOptions{Separator: options.Of(", ")}, "1h, 1m, 1s"},
		{"only seconds", 1, CountdownOptions{Format: long}, "1 second"},
		{"zero delta", 0, CountdownOptions{}, "expired"},
		{"past target", -30, CountdownOptions{}, "expired"},
		{"custom expired label", 0, CountdownOptions{ExpiredLabel: options.Of("done")}, "done"},
		{"zero renders seconds", 0, CountdownOptions{ShowZeros: options.Of(true)}, "0s"},
		{"zero ignores max units", 0, CountdownOptions{ShowZeros: options.Of(true), MaxUnits: options.Of(1)}, "0s"},
		{"zero long label", 0, CountdownOptions{ShowZeros: options.Of(true), Format: long}, "0 seconds"},
		{"past target with zeros", -30, CountdownOptions{ShowZeros: options.Of(true)}, "0s"},
		{"grouped day count", 1234 * 86400, CountdownOptions{MaxUnits: options.Of(1)}, "1,234d"},
		{"locale grouping", 1234 * 86400, CountdownOptions{MaxUnits: options.Of(1), Locale: options.Of("de-DE")}, "1.234d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemainingTimeForCountdown(now+tt.delta, now, tt.opts)
			if err != nil {
				t.Fatalf("RemainingTimeForCountdown() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RemainingTimeForCountdown(+%d) = %q, want %q", tt.delta, got, tt.want)
			}
		})
	}
}

func TestRemainingTimeForCountdownCustomLabels(t *testing.T) {
	isolate(t)

	opts := CountdownOptions{
		Format:    options.Of(CountdownCustom),
		Separator: options.Of(", "),
		Labels:    &CountdownLabels{Days: "Tag", DaysPlural: "Tage", Hours: "Stunde"},
	}

	got, err := RemainingTimeForCountdown(2*86400+3600+120, 0, opts)
	if err != nil {
		t.Fatal(err)
	}
	if want := "2 Tage, 1 Stunde, 2 minutes, 0 seconds"; got != want {
		t.Errorf("custom labels = %q, want %q", got, want)
	}

	got, err = RemainingTimeForCountdown(86400, 0, opts, CountdownOptions{MaxUnits: options.Of(1)})
	if err != nil {
		t.Fatal(err)
	}
	if got != "1 Tag" {
		t.Errorf("singular custom label = %q", got)
	}
}

func TestRemainingTimeForCountdownGlobalLocale(t *testing.T) {
	store := isolate(t)
	store.Configure(config.GlobalConfig{DateTime: &config.DateTimeConfig{
		Locale: options.Of("de-DE"),
		Format: options.Of("iso"),
	}})

	got, err := RemainingTimeForCountdown(1234*86400, 0, CountdownOptions{MaxUnits: options.Of(1)})
	if err != nil {
		t.Fatal(err)
	}
	if got != "1.234d" {
		t.Errorf("global locale: %q", got)
	}

	got, err = RemainingTimeForCountdown(1234*86400, 0, CountdownOptions{MaxUnits: options.Of(1), Locale: options.Of("en-US")})
	if err != nil {
		t.Fatal(err)
	}
	if got != "1,234d" {
		t.Errorf("call-site locale: %q", got)
	}
}

func TestRemainingTimeForCountdownInvalidSpec(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		opts CountdownOptions
	}{
		{"zero max units", CountdownOptions{MaxUnits: options.Of(0)}},
		{"negative max units", CountdownOptions{MaxUnits: options.Of(-1)}},
		{"unknown format", CountdownOptions{Format: options.Of(CountdownFormat("verbose"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RemainingTimeForCountdown(100, 0, tt.opts)
			if !errors.IsInvalidSpec(err) {
				t.Errorf("error = %v, want INVALID_SPEC", err)
			}
			if got != "" {
				t.Errorf("got %q alongside an error", got)
			}
		})
	}
}

func TestRemainingTime(t *testing.T) {
	isolate(t)

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	got, err := RemainingTime(now.Add(26*time.Hour+500*time.Millisecond), now, CountdownOptions{Format: options.Of(CountdownLong)})
	if err != nil {
		t.Fatal(err)
	}
	if got != "1 day 2 hours 0 minutes 0 seconds" {
		t.Errorf("RemainingTime() = %q", got)
	}
}

func TestRemainingTimeForCountdownExtremeEpochs(t *testing.T) {
	got, err := RemainingTimeForCountdown(math.MaxInt64, -10, CountdownOptions{MaxUnits: options.Of(1)})
	if err != nil {
		t.Fatal(err)
	}
	if got == "expired" || got == "" {
		t.Errorf("RemainingTimeForCountdown(MaxInt64, -10) = %q; want a day count", got)
	}

	got, err = RemainingTimeForCountdown(math.MinInt64, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != "expired" {
		t.Errorf("RemainingTimeForCountdown(MinInt64, 10) = %q; want expired", got)
	}
}
