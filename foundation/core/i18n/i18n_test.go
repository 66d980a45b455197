// File: i18n_test.go
// Title: Locale Primitive Tests
// Description: Tests for locale parsing, matching, separators and templates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Translation manager tests
// - 2026-10-17 v0.2.0: Rewritten for the locale primitives

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en-US", "en-US"},
		{"de_DE.UTF-8", "de-DE"},
		{"EN_gb", "en-GB"},
		{"fr", "fr"},
		{"sr@latin", "sr"},
		{"C", ""},
		{"", ""},
		{"english", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLocale(tt.input); got != tt.want {
				t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tag, ok := ParseLocale("tr-TR")
	if !ok || tag != language.MustParse("tr-TR") {
		t.Errorf("ParseLocale(tr-TR) = %v, %v", tag, ok)
	}
	if tag, ok := ParseLocale("not a locale"); ok || tag != language.Und {
		t.Errorf("ParseLocale(invalid) = %v, %v", tag, ok)
	}
}

func TestSplitLocale(t *testing.T) {
	if lang, region := SplitLocale("de_AT"); lang != "de" || region != "AT" {
		t.Errorf("SplitLocale() = %q, %q", lang, region)
	}
}

func TestMatchLocale(t *testing.T) {
	supported := []string{"en-US", "en-GB", "de-DE"}
	tests := []struct {
		input string
		want  string
	}{
		{"en-GB", "en-GB"},
		{"de-AT", "de-DE"},
		{"en", "en-US"},
		{"ja-JP", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchLocale(tt.input, supported); got != tt.want {
				t.Errorf("MatchLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := DetectLocale(); got != "de-DE" {
		t.Errorf("DetectLocale() = %q", got)
	}

	t.Setenv("LANG", "C")
	if got := DetectLocale(); got != DefaultLocale {
		t.Errorf("DetectLocale() = %q, want default", got)
	}
}

func TestNumberSeparators(t *testing.T) {
	tests := []struct {
		locale string
		want   Separators
	}{
		{"en-US", Separators{Decimal: ".", Grouping: ","}},
		{"de-DE", Separators{Decimal: ",", Grouping: "."}},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := NumberSeparators(tt.locale)
			if !ok || got != tt.want {
				t.Errorf("NumberSeparators(%q) = %+v, %v", tt.locale, got, ok)
			}
		})
	}

	if _, ok := NumberSeparators("??"); ok {
		t.Error("NumberSeparators() should fail for an unparsable locale")
	}
}

func TestProbeSeparators(t *testing.T) {
	if s, ok := probeSeparators("1 234 567,5"); !ok || s.Grouping != " " || s.Decimal != "," {
		t.Errorf("probeSeparators() = %+v, %v", s, ok)
	}
	if _, ok := probeSeparators("1234567"); ok {
		t.Error("probeSeparators() accepted a rendering without decimals")
	}
}

func TestFormatInteger(t *testing.T) {
	if got := FormatInteger("en-US", 1234); got != "1,234" {
		t.Errorf("FormatInteger(en-US) = %q", got)
	}
	if got := FormatInteger("de-DE", 1234); got != "1.234" {
		t.Errorf("FormatInteger(de-DE) = %q", got)
	}
}

func TestRenderMessage(t *testing.T) {
	data := struct {
		Name    string
		MaxSize float64
	}{"a.png", 5}

	got, err := RenderMessage("{{.Name}} exceeds {{.MaxSize}} MB", data)
	if err != nil || got != "a.png exceeds 5 MB" {
		t.Errorf("RenderMessage() = %q, %v", got, err)
	}

	if got, err := RenderMessage("plain text", nil); err != nil || got != "plain text" {
		t.Errorf("RenderMessage(plain) = %q, %v", got, err)
	}

	if got, err := RenderMessage("{{.Name", data); err == nil || got != "{{.Name" {
		t.Errorf("RenderMessage(broken) = %q, %v", got, err)
	}
}
