// File: refine.go
// Title: Refinement Hook
// Description: Lets a validator attach structured issues to a value after a
//              base validator accepted it. Issues carry the offending input and
//              the accepted values so callers can render precise messages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package validation

import (
	"fmt"
)

// Issue is a structured problem reported during refinement
type Issue struct {
	Code    string
	Message string
	Field   string

	// Values lists the accepted values, if the check has a closed set
	Values interface{}

	// Input is the offending value
	Input interface{}
}

// RefinementContext collects issues for one value
type RefinementContext struct {
	field  string
	issues []Issue
}

// AddIssue registers an issue. Missing messages are derived from the code.
func (c *RefinementContext) AddIssue(issue Issue) {
	if issue.Field == "" {
		issue.Field = c.field
	}
	if issue.Message == "" {
		issue.Message = defaultIssueMessage(issue)
	}
	c.issues = append(c.issues, issue)
}

// Issues returns the issues registered so far
func (c *RefinementContext) Issues() []Issue {
	return c.issues
}

// Field returns the field name the refinement runs for
func (c *RefinementContext) Field() string {
	return c.field
}

// RefineFunc inspects value and reports problems through ctx
type RefineFunc func(value interface{}, ctx *RefinementContext)

// Refine returns a validator that runs base first and, if it passes, calls
// check. Each issue becomes a ValidationError with Expected set to the issue
// values and Value set to the input. A nil base accepts everything.
func Refine(base Validator, check RefineFunc) ValidatorFunc {
	return RefineField("", base, check)
}

// RefineField is Refine with a field name recorded on every issue
func RefineField(field string, base Validator, check RefineFunc) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if base != nil {
			if result := base.Validate(value); !result.Valid {
				return result
			}
		}

		ctx := &RefinementContext{field: field}
		check(value, ctx)
		if len(ctx.issues) == 0 {
			return NewValidationResult()
		}

		result := ValidationResult{}
		for _, issue := range ctx.issues {
			result.Errors = append(result.Errors, issue.toValidationError())
		}
		return result
	}
}

func (i Issue) toValidationError() ValidationError {
	ve := ValidationError{
		Code:     i.Code,
		Field:    i.Field,
		Message:  i.Message,
		Value:    i.Input,
		Expected: i.Values,
		Context:  map[string]interface{}{"input": i.Input},
	}
	if i.Values != nil {
		ve.Context["values"] = i.Values
	}
	return ve
}

func defaultIssueMessage(i Issue) string {
	switch i.Code {
	case CodeInvalidValue:
		if i.Values != nil {
			return fmt.Sprintf("invalid value %v, expected one of %v", i.Input, i.Values)
		}
		return fmt.Sprintf("invalid value %v", i.Input)
	case CodeType:
		return fmt.Sprintf("unexpected type %T", i.Input)
	default:
		return "validation failed"
	}
}
