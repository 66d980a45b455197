// File: number.go
// Title: Locale Number Formatting
// Description: Locale-aware number printers and the separator characters a
//              locale uses for grouping and decimals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printers   sync.Map // language.Tag -> *message.Printer
	separators sync.Map // language.Tag -> Separators
)

// Separators holds the decimal and grouping characters of a locale
type Separators struct {
	Decimal  string
	Grouping string
}

// Printer returns a cached message printer for locale. Unparsable locales
// get a printer for language.Und, which formats like English.
func Printer(locale string) *message.Printer {
	tag, _ := ParseLocale(locale)
	return printerFor(tag)
}

func printerFor(tag language.Tag) *message.Printer {
	if p, ok := printers.Load(tag); ok {
		return p.(*message.Printer)
	}
	p, _ := printers.LoadOrStore(tag, message.NewPrinter(tag))
	return p.(*message.Printer)
}

// FormatInteger renders n with the grouping rules of locale
func FormatInteger(locale string, n int64) string {
	return Printer(locale).Sprintf("%d", n)
}

// NumberSeparators reports the separators locale uses. The boolean is false
// when the locale does not parse; callers then keep their own defaults.
func NumberSeparators(locale string) (Separators, bool) {
	tag, ok := ParseLocale(locale)
	if !ok {
		return Separators{}, false
	}
	if s, ok := separators.Load(tag); ok {
		return s.(Separators), true
	}

	s, ok := probeSeparators(printerFor(tag).Sprintf("%.1f", 1234567.5))
	if !ok {
		return Separators{}, false
	}
	separators.Store(tag, s)
	return s, true
}

// probeSeparators extracts separators from a rendering of 1234567.5
func probeSeparators(rendered string) (Separators, bool) {
	i1 := strings.Index(rendered, "1")
	i234 := strings.Index(rendered, "234")
	i567 := strings.Index(rendered, "567")
	if i1 < 0 || i234 < 0 || i567 < 0 || !strings.HasSuffix(rendered, "5") {
		return Separators{}, false
	}

	s := Separators{
		Grouping: rendered[i1+1 : i234],
		Decimal:  rendered[i567+3 : len(rendered)-1],
	}
	if s.Decimal == "" {
		return Separators{}, false
	}
	return s, true
}
