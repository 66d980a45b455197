// File: validation_test.go
// Title: Core Validation Framework Tests
// Description: Tests for results, chains and the refinement hook.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-17 v0.2.0: Refinement and reason code coverage

package validation

import (
	"context"
	"reflect"
	"strings"
	"testing"

	ztkerror "github.com/msto63/ztk/foundation/core/error"
)

func alwaysValid() ValidatorFunc {
	return func(interface{}) ValidationResult { return NewValidationResult() }
}

func alwaysInvalid(code string) ValidatorFunc {
	return func(interface{}) ValidationResult { return NewValidationError(code, code+" failed") }
}

func TestValidationResult(t *testing.T) {
	valid := NewValidationResult()
	if !valid.Valid || valid.ReasonCode() != "" || valid.Message() != "" || valid.FirstError() != nil {
		t.Errorf("valid result = %v", valid)
	}

	result := NewValidationResult()
	result.AddError(CodeFileSize, "too big").AddFieldError(CodeFileType, "type", "wrong type", "text/plain")

	if result.Valid {
		t.Fatal("result should be invalid after AddError")
	}
	if result.ReasonCode() != CodeFileSize || result.Message() != "too big" {
		t.Errorf("ReasonCode()/Message() = %q/%q", result.ReasonCode(), result.Message())
	}
	if !result.HasError(CodeFileType) || result.HasError(CodeEmail) {
		t.Error("HasError() mismatch")
	}
	if got := result.ErrorMessages(); !reflect.DeepEqual(got, []string{"too big", "wrong type"}) {
		t.Errorf("ErrorMessages() = %v", got)
	}
	if !strings.Contains(result.String(), "errors: 2") {
		t.Errorf("String() = %q", result.String())
	}
}

func TestToError(t *testing.T) {
	if err := NewValidationResult().ToError(); err != nil {
		t.Errorf("ToError() on valid result = %v", err)
	}

	err := NewValidationErrorWithField(CodeEmail, "email", "bad email", "x@").ToError()
	if !ztkerror.HasCode(err, ztkerror.CodeValidationFailed) {
		t.Fatalf("ToError() code = %v", ztkerror.GetCode(err))
	}
	if reason := err.(*ztkerror.Error).Details()["reason"]; reason != CodeEmail {
		t.Errorf("reason detail = %v", reason)
	}
}

func TestCombine(t *testing.T) {
	a := NewValidationResult()
	a.WithContext("k", 1)
	combined := Combine(a, NewValidationError(CodeFormat, "x"), NewValidationError(CodeType, "y"))

	if combined.Valid || len(combined.Errors) != 2 || combined.Context["k"] != 1 {
		t.Errorf("Combine() = %+v", combined)
	}
}

func TestValidatorChain(t *testing.T) {
	tests := []struct {
		name      string
		stopFirst bool
		wantCodes int
		executed  int
	}{
		{"collect all", false, 2, 3},
		{"stop on first", true, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewValidatorChain("upload").
				AddFunc(alwaysValid()).
				AddFunc(alwaysInvalid(CodeFileSize)).
				Add(alwaysInvalid(CodeFileType)).
				StopOnFirstError(tt.stopFirst)

			result := chain.Validate("x")
			if len(result.Errors) != tt.wantCodes {
				t.Errorf("errors = %d, want %d", len(result.Errors), tt.wantCodes)
			}
			if result.Context["executedValidators"] != tt.executed {
				t.Errorf("executed = %v, want %d", result.Context["executedValidators"], tt.executed)
			}
			if result.ReasonCode() != CodeFileSize {
				t.Errorf("ReasonCode() = %q", result.ReasonCode())
			}
		})
	}
}

func TestValidatorFuncHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	fn := ValidatorFunc(func(interface{}) ValidationResult {
		called = true
		return NewValidationResult()
	})
	if result := fn.ValidateWithContext(ctx, 1); result.Valid || called {
		t.Errorf("cancelled validation ran: valid=%v called=%v", result.Valid, called)
	}
}

func TestRefine(t *testing.T) {
	allowed := []int{1, 2, 3}
	enum := RefineField("status", alwaysValid(), func(value interface{}, ctx *RefinementContext) {
		if v, ok := value.(int); ok && v >= 1 && v <= 3 {
			return
		}
		ctx.AddIssue(Issue{Code: CodeInvalidValue, Values: allowed, Input: value})
	})

	if result := enum.Validate(2); !result.Valid {
		t.Errorf("Validate(2) = %v", result)
	}

	result := enum.Validate(7)
	if result.Valid {
		t.Fatal("Validate(7) should fail")
	}
	first := result.FirstError()
	if first.Code != CodeInvalidValue || first.Field != "status" {
		t.Errorf("first error = %+v", first)
	}
	if !reflect.DeepEqual(first.Expected, allowed) || first.Value != 7 {
		t.Errorf("Expected/Value = %v/%v", first.Expected, first.Value)
	}
	if !reflect.DeepEqual(first.Context["values"], allowed) || first.Context["input"] != 7 {
		t.Errorf("Context = %v", first.Context)
	}
	if !strings.Contains(first.Message, "expected one of [1 2 3]") {
		t.Errorf("Message = %q", first.Message)
	}
}

func TestRefineShortCircuitsOnBaseFailure(t *testing.T) {
	called := false
	v := Refine(alwaysInvalid(CodeType), func(interface{}, *RefinementContext) { called = true })

	if result := v.Validate("x"); result.ReasonCode() != CodeType || called {
		t.Errorf("ReasonCode() = %q, check called = %v", result.ReasonCode(), called)
	}
}

func TestRefineWithNilBase(t *testing.T) {
	v := Refine(nil, func(value interface{}, ctx *RefinementContext) {
		ctx.AddIssue(Issue{Code: CodeCustom, Message: "nope", Input: value})
	})
	result := v.Validate(1)
	if result.Message() != "nope" || len(result.Errors) != 1 {
		t.Errorf("result = %+v", result)
	}
	if _, ok := result.Errors[0].Context["values"]; ok {
		t.Error("values context should be absent when the issue has no values")
	}
}
