// File: currency.go
// Title: Currency Formatting
// Description: Formats amounts as currency strings with configurable symbol,
//              separators, precision and negative style. Separators follow
//              the locale unless set explicitly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with currency formatting and operations
// - 2026-10-17 v0.2.0: Option based formatting with global and locale defaults,
//                       money arithmetic removed

package mathx

import (
	"math"
	"strings"

	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/options"
)

// Currency describes a known currency
type Currency struct {
	Code          string // ISO 4217 code (e.g., "USD", "EUR")
	Symbol        string // Currency symbol (e.g., "$", "€")
	DecimalPlaces int    // Number of decimal places
	Name          string // Full name (e.g., "US Dollar")
	Position      SymbolPosition
}

// Common currencies
var (
	USD = Currency{Code: "USD", Symbol: "$", DecimalPlaces: 2, Name: "US Dollar", Position: SymbolBefore}
	EUR = Currency{Code: "EUR", Symbol: "€", DecimalPlaces: 2, Name: "Euro", Position: SymbolAfter}
	GBP = Currency{Code: "GBP", Symbol: "£", DecimalPlaces: 2, Name: "British Pound", Position: SymbolBefore}
	JPY = Currency{Code: "JPY", Symbol: "¥", DecimalPlaces: 0, Name: "Japanese Yen", Position: SymbolBefore}
	CHF = Currency{Code: "CHF", Symbol: "CHF", DecimalPlaces: 2, Name: "Swiss Franc", Position: SymbolBefore}
	INR = Currency{Code: "INR", Symbol: "₹", DecimalPlaces: 2, Name: "Indian Rupee", Position: SymbolBefore}
	BTC = Currency{Code: "BTC", Symbol: "₿", DecimalPlaces: 8, Name: "Bitcoin", Position: SymbolBefore}
)

var currencyRegistry = map[string]Currency{
	"USD": USD,
	"EUR": EUR,
	"GBP": GBP,
	"JPY": JPY,
	"CHF": CHF,
	"INR": INR,
	"BTC": BTC,
}

// GetCurrency retrieves a currency by ISO code
func GetCurrency(code string) (Currency, bool) {
	currency, exists := currencyRegistry[strings.ToUpper(strings.TrimSpace(code))]
	return currency, exists
}

// Options returns call-site options carrying the currency's symbol,
// precision and symbol position.
func (c Currency) Options() CurrencyOptions {
	return CurrencyOptions{
		Symbol:         options.Of(c.Symbol),
		Decimals:       options.Of(c.DecimalPlaces),
		SymbolPosition: options.Of(c.Position),
		IncludeSpace:   options.Of(c.Position == SymbolAfter),
	}
}

// SymbolPosition places the currency symbol
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// CurrencyOptions are call-site overrides; nil fields keep the default.
type CurrencyOptions struct {
	Symbol                *string
	SymbolPosition        *SymbolPosition
	Decimals              *int
	DecimalSeparator      *string
	ThousandsSeparator    *string
	IncludeSpace          *bool
	Locale                *string
	NegativeInParentheses *bool
}

// CurrencySpec is the effective currency configuration
type CurrencySpec struct {
	Symbol                string
	SymbolPosition        SymbolPosition
	Decimals              int
	DecimalSeparator      string
	ThousandsSeparator    string
	IncludeSpace          bool
	Locale                string
	NegativeInParentheses bool
}

// DefaultCurrencySpec returns the built-in currency defaults
func DefaultCurrencySpec() CurrencySpec {
	return CurrencySpec{
		Symbol:             "$",
		SymbolPosition:     SymbolBefore,
		Decimals:           2,
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		Locale:             i18n.DefaultLocale,
	}
}

// FormatCurrency formats amount, e.g. 1234.5 → "$1,234.50". The amount is
// taken at its shortest decimal representation before rounding, so 1.005
// rounds to 1.01.
func FormatCurrency(amount float64, opts ...CurrencyOptions) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", errors.InvalidSpec(errors.ModuleMathx, "FormatCurrency", "amount", amount, "must be a finite number")
	}
	d, err := NewDecimalFromFloat(amount)
	if err != nil {
		return "", err
	}
	return formatDecimal("FormatCurrency", d, opts)
}

// FormatDecimal formats an exact decimal amount
func FormatDecimal(amount Decimal, opts ...CurrencyOptions) (string, error) {
	return formatDecimal("FormatDecimal", amount, opts)
}

// FormatUSD formats amount in US dollars with "." and "," separators
// regardless of the configured currency.
func FormatUSD(amount float64) (string, error) {
	return FormatCurrency(amount, USD.Options(), CurrencyOptions{
		DecimalSeparator:   options.Of("."),
		ThousandsSeparator: options.Of(","),
	})
}

// ResolveCurrencySpec merges defaults, the global currency slice and opts
// and fills separators from the locale where no call-site value was given.
func ResolveCurrencySpec(opts ...CurrencyOptions) (CurrencySpec, error) {
	return resolveCurrencySpec("ResolveCurrencySpec", opts)
}

func resolveCurrencySpec(operation string, opts []CurrencyOptions) (CurrencySpec, error) {
	global := config.Current()
	spec := options.Resolve(DefaultCurrencySpec(), global.Currency)

	explicitDecimal, explicitGrouping := false, false
	for _, o := range opts {
		spec = options.Resolve(spec, o)
		explicitDecimal = explicitDecimal || o.DecimalSeparator != nil
		explicitGrouping = explicitGrouping || o.ThousandsSeparator != nil
	}

	if seps, ok := i18n.NumberSeparators(spec.Locale); ok {
		if !explicitDecimal {
			spec.DecimalSeparator = seps.Decimal
		}
		if !explicitGrouping {
			spec.ThousandsSeparator = seps.Grouping
		}
	}

	if spec.Decimals < 0 {
		return spec, errors.InvalidSpec(errors.ModuleMathx, operation, "decimals", spec.Decimals, "must not be negative")
	}
	switch spec.SymbolPosition {
	case SymbolBefore, SymbolAfter:
	default:
		return spec, errors.InvalidSpec(errors.ModuleMathx, operation, "symbolPosition", spec.SymbolPosition, "must be before or after")
	}
	return spec, nil
}

func formatDecimal(operation string, amount Decimal, opts []CurrencyOptions) (string, error) {
	spec, err := resolveCurrencySpec(operation, opts)
	if err != nil {
		return "", err
	}

	negative, integer, fraction := amount.FixedParts(spec.Decimals)

	var number strings.Builder
	number.WriteString(groupDigits(integer, spec.ThousandsSeparator))
	if fraction != "" {
		number.WriteString(spec.DecimalSeparator)
		number.WriteString(fraction)
	}

	space := ""
	if spec.IncludeSpace {
		space = " "
	}
	body := spec.Symbol + space + number.String()
	if spec.SymbolPosition == SymbolAfter {
		body = number.String() + space + spec.Symbol
	}
	if spec.Symbol == "" {
		body = number.String()
	}

	if !negative {
		return body, nil
	}
	if spec.NegativeInParentheses {
		return "(" + body + ")", nil
	}
	return "-" + body, nil
}

// groupDigits inserts sep every three digits from the right
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
