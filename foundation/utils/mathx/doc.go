// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal values and currency
//              formatting for the ztk toolkit.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Narrowed to decimals and currency formatting

// Package mathx provides exact decimal values and currency formatting.
//
// Decimal wraps math/big.Rat. Float inputs are converted through their
// shortest decimal representation, so FormatCurrency(1.005) sees 1.005 and
// rounds it to 1.01 the way a person reading the number would expect.
//
// Currency formatting
//
// FormatCurrency resolves its options in three layers: built-in defaults,
// the currency slice of the global configuration (symbol, decimals, locale)
// and the call-site options. Separators not set at the call site come from
// the locale:
//
//	s, _ := mathx.FormatCurrency(1234.5, mathx.CurrencyOptions{
//	    Locale: options.Of("de-DE"),
//	})
//	// "$1.234,50"
//
// Well-known currencies are available through GetCurrency and carry
// ready-made options:
//
//	eur, _ := mathx.GetCurrency("EUR")
//	s, _ := mathx.FormatCurrency(9.5, eur.Options())
//	// "9.50 €"
//
// Negative decimals, an unknown symbol position and non-finite amounts are
// reported as INVALID_SPEC errors.
package mathx
