// File: example_test.go
// Title: Example Tests for mathx
// Description: Executable examples for decimal and currency
//              formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial examples
// - 2026-10-17 v0.2.0: Examples for option based currency formatting

package mathx_test

import (
	"fmt"

	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/utils/mathx"
)

func ExampleFormatCurrency() {
	plain, _ := mathx.FormatCurrency(1234.5)
	german, _ := mathx.FormatCurrency(1234.5, mathx.CurrencyOptions{
		Symbol:         options.Of("€"),
		SymbolPosition: options.Of(mathx.SymbolAfter),
		IncludeSpace:   options.Of(true),
		Locale:         options.Of("de-DE"),
	})
	loss, _ := mathx.FormatCurrency(-42, mathx.CurrencyOptions{
		NegativeInParentheses: options.Of(true),
	})
	fmt.Println(plain)
	fmt.Println(german)
	fmt.Println(loss)
	// Output:
	// $1,234.50
	// 1.234,50 €
	// ($42.00)
}

func ExampleFormatDecimal() {
	d, _ := mathx.NewDecimal("-2.345")
	s, _ := mathx.FormatDecimal(d)
	fmt.Println(s)
	// Output:
	// -$2.35
}

func ExampleFormatUSD() {
	s, _ := mathx.FormatUSD(0.1 + 0.2)
	fmt.Println(s)
	// Output:
	// $0.30
}
