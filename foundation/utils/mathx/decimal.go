// File: decimal.go
// Title: Decimal Values for Money Formatting
// Description: Exact decimal values on top of math/big with half away from
//              zero rounding for display.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values,
//                       improved decimal formatting for display purposes
// - 2026-10-17 v0.2.0: Integer based rounding (negatives round away from zero
//                       correctly), exact StringFixed, float conversion through
//                       the shortest representation
// - 2026-10-17 v0.3.0: Reduced to parsing and fixed-point rendering

package mathx

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/msto63/ztk/foundation/core/errors"
)

// maxTerminatingPlaces bounds the search for an exact decimal rendering
const maxTerminatingPlaces = 64

var bigTen = big.NewInt(10)

// Decimal represents a decimal number with arbitrary precision. The zero
// value is 0.
type Decimal struct {
	value *big.Rat
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// NewDecimal parses a decimal string such as "123.45", "-6e3" or "1/2".
func NewDecimal(s string) (Decimal, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Decimal{}, errors.InvalidInput(errors.ModuleMathx, "NewDecimal", s, "decimal number")
	}
	return Decimal{value: rat}, nil
}

// NewDecimalFromFloat converts f through its shortest decimal representation,
// so 0.1 becomes exactly 1/10 rather than the nearest binary fraction.
func NewDecimalFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, errors.InvalidInput(errors.ModuleMathx, "NewDecimalFromFloat", f, "finite number")
	}
	return NewDecimal(strconv.FormatFloat(f, 'g', -1, 64))
}

// scaledInt returns d * 10^places rounded half away from zero
func (d Decimal) scaledInt(places int) *big.Int {
	if places < 0 {
		places = 0
	}
	r := d.rat()
	num := new(big.Int).Mul(r.Num(), pow10(places))
	den := r.Denom()

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() == 0 {
		return q
	}

	twice := new(big.Int).Abs(rem)
	twice.Lsh(twice, 1)
	if twice.Cmp(den) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// FixedParts rounds half away from zero to places digits and returns the
// sign, integer digits and fraction digits. A value that rounds to zero is
// never negative.
func (d Decimal) FixedParts(places int) (negative bool, integer, fraction string) {
	if places < 0 {
		places = 0
	}
	scaled := d.scaledInt(places)
	negative = scaled.Sign() < 0

	digits := new(big.Int).Abs(scaled).String()
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}
	split := len(digits) - places
	return negative, digits[:split], digits[split:]
}

// StringFixed renders d with exactly places fractional digits
func (d Decimal) StringFixed(places int) string {
	negative, integer, fraction := d.FixedParts(places)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(integer)
	if fraction != "" {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}

// String renders d as an exact decimal when it terminates, otherwise as a
// fraction such as "1/3".
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	for places := 1; places <= maxTerminatingPlaces; places++ {
		if new(big.Int).Rem(new(big.Int).Mul(r.Num(), pow10(places)), r.Denom()).Sign() == 0 {
			return d.StringFixed(places)
		}
	}
	return r.RatString()
}

func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
