// File: chain.go
// Title: Validator Chain Implementation
// Description: Composable validator chains that run validators in order and
//              combine their results, optionally stopping at the first failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-17 v0.2.0: Dropped conditional and parallel validators

package validation

import (
	"context"
	"fmt"
)

// ValidatorChain runs validators sequentially
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	c := &ValidatorChain{}
	if len(name) > 0 {
		c.name = name[0]
	}
	return c
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first failure.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	return c.ValidateWithContext(context.Background(), value)
}

// ValidateWithContext executes all validators with context support
func (c *ValidatorChain) ValidateWithContext(ctx context.Context, value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, validator := range c.validators {
		result := validator.ValidateWithContext(ctx, value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}

	combined := Combine(results...)
	if c.name != "" {
		combined.WithContext("validatorChain", c.name)
	}
	combined.WithContext("executedValidators", len(results))
	return combined
}

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int {
	return len(c.validators)
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}
