// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Validator interface, structured results, reason codes, chains
//              and the refinement hook used by concrete validators in
//              utils/validationx and utils/filex.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-17 v0.2.0: Refinement hook, reason code helpers

/*
Package validation provides the validation framework of the toolkit. It holds
no concrete validators.

Validators return a ValidationResult. An input that merely fails a check is
reported as an invalid result with one or more ValidationError values; Go
errors are reserved for malformed options and failing collaborators.

# Refinement

Refine runs a base validator and then a check function that may register
structured issues:

	isNumber := validation.ValidatorFunc(func(v interface{}) validation.ValidationResult { ... })
	enum := validation.Refine(isNumber, func(v interface{}, ctx *validation.RefinementContext) {
		if !allowed(v) {
			ctx.AddIssue(validation.Issue{
				Code:   validation.CodeInvalidValue,
				Values: []int{1, 2, 3},
				Input:  v,
			})
		}
	})

	result := enum.Validate(7)
	result.ReasonCode()          // VALIDATION_INVALID_VALUE
	result.FirstError().Expected // []int{1, 2, 3}

# Chains

ValidatorChain runs validators in order. With StopOnFirstError(true) it
reports only the first failure, which is how file upload validation applies
its size, type and custom checks.
*/
package validation
