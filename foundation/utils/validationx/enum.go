// File: enum.go
// Title: Numeric Enum Validation
// Description: Validators that accept a number only when it is a member of
//              a closed set of allowed values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package validationx

import (
	"math"
	"reflect"

	"github.com/msto63/ztk/foundation/core/validation"
)

// Number is the set of types NumericEnum accepts as members
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// numeric is a number widened for comparison across Go types
type numeric struct {
	kind byte // 'i', 'u' or 'f'
	i    int64
	u    uint64
	f    float64
}

func widen(value interface{}) (numeric, bool) {
	if value == nil {
		return numeric{}, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numeric{kind: 'i', i: v.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numeric{kind: 'u', u: v.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return numeric{kind: 'f', f: v.Float()}, true
	}
	return numeric{}, false
}

// equal compares numerically; NaN equals nothing
func (n numeric) equal(o numeric) bool {
	switch {
	case n.kind == 'f' || o.kind == 'f':
		a, b := n.float(), o.float()
		return !math.IsNaN(a) && a == b
	case n.kind == o.kind:
		return n.i == o.i && n.u == o.u
	case n.kind == 'i':
		return n.i >= 0 && uint64(n.i) == o.u
	default:
		return o.i >= 0 && uint64(o.i) == n.u
	}
}

func (n numeric) float() float64 {
	switch n.kind {
	case 'i':
		return float64(n.i)
	case 'u':
		return float64(n.u)
	}
	return n.f
}

// IsNumber accepts any Go integer or floating point value, including named
// types such as `type Status int`.
var IsNumber validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if _, ok := widen(value); !ok {
		return validation.NewValidationErrorWithField(validation.CodeType, "", "value must be a number", value)
	}
	return validation.NewValidationResult()
}

// NumericEnum returns a validator accepting only the given values. Inputs
// are compared by numeric value, so int64(2) is a member of NumericEnum(2).
// Non-numeric input fails with VALIDATION_TYPE; a number outside the set
// fails with VALIDATION_INVALID_VALUE carrying the allowed values and the
// input. An empty set accepts no value.
func NumericEnum[T Number](values ...T) validation.ValidatorFunc {
	return NumericEnumField("", values...)
}

// NumericEnumField is NumericEnum with a field name on reported issues
func NumericEnumField[T Number](field string, values ...T) validation.ValidatorFunc {
	allowed := append([]T(nil), values...)
	members := make([]numeric, 0, len(allowed))
	for _, v := range allowed {
		n, _ := widen(v)
		members = append(members, n)
	}

	return validation.RefineField(field, IsNumber, func(value interface{}, ctx *validation.RefinementContext) {
		input, _ := widen(value)
		for _, member := range members {
			if member.equal(input) {
				return
			}
		}
		ctx.AddIssue(validation.Issue{
			Code:   validation.CodeInvalidValue,
			Values: append([]T(nil), allowed...),
			Input:  value,
		})
	})
}

// IsEnumMember reports whether value is one of values
func IsEnumMember[T Number](value interface{}, values ...T) bool {
	return NumericEnum(values...).Validate(value).Valid
}
