// File: validationx.go
// Title: Contact Validation
// Description: Email and phone validation with option layering over the
//              validation slice of the global configuration.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-17 v0.2.0: Reduced to email and phone checks with layered options,
//                       configurable messages and domain allow-lists
// - 2026-10-17 v0.2.1: Email syntax via the validator email tag

package validationx

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/msto63/ztk/foundation/core/cache"
	"github.com/msto63/ztk/foundation/core/config"
	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/i18n"
	"github.com/msto63/ztk/foundation/core/options"
	"github.com/msto63/ztk/foundation/core/validation"
	"github.com/msto63/ztk/foundation/utils/slicex"
)

// syntax checks address syntax with the validator "email" tag
var syntax = validator.New()

// Default message templates; templates see .Value
const (
	DefaultEmailMessage       = "{{.Value}} is not a valid email address"
	DefaultEmailDomainMessage = "{{.Value}} uses a domain that is not allowed"
	DefaultPhoneMessage       = "{{.Value}} is not a valid phone number"
)

// ValidationOptions are call-site overrides; nil fields keep the default.
type ValidationOptions struct {
	// Pattern replaces the built-in syntax check
	Pattern         *regexp.Regexp
	ErrorMessage    *string
	CaseSensitive   *bool
	CustomValidator func(value string) bool
	AllowedDomains  []string
	CountryCode     *string
}

// ValidationSpec is the effective contact validation configuration
type ValidationSpec struct {
	Pattern         *regexp.Regexp
	ErrorMessage    string
	CaseSensitive   bool
	CustomValidator func(value string) bool
	AllowedDomains  []string
	CountryCode     string
}

// DefaultValidationSpec returns the built-in defaults
func DefaultValidationSpec() ValidationSpec {
	return ValidationSpec{CaseSensitive: true}
}

// validationGlobals is the slice of the global configuration contact checks read
type validationGlobals struct {
	AllowedDomains []string
	CountryCode    *string
}

func resolveValidationSpec(opts []ValidationOptions) (ValidationSpec, config.GlobalConfig) {
	global := config.Current()
	var slice validationGlobals
	if global.Validation != nil {
		slice.AllowedDomains = global.Validation.EmailDomains
		slice.CountryCode = global.Validation.PhoneCountryCode
	}

	spec := options.Resolve(DefaultValidationSpec(), slice)
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}
	return spec, global
}

// patterns caches case-insensitive variants of caller patterns
var patterns = cache.New[string, *regexp.Regexp](cache.DefaultConfig())

func effectivePattern(spec ValidationSpec) *regexp.Regexp {
	if spec.Pattern == nil || spec.CaseSensitive {
		return spec.Pattern
	}
	re, err := patterns.GetOrSet("(?i)"+spec.Pattern.String(), func() (*regexp.Regexp, error) {
		return regexp.Compile("(?i)" + spec.Pattern.String())
	})
	if err != nil {
		return spec.Pattern
	}
	return re
}

type messageData struct {
	Value string
}

// failure renders the first configured message for a failed check
func failure(operation, code, key, value string, spec ValidationSpec, global config.GlobalConfig, fallback string) (validation.ValidationResult, error) {
	tmpl := fallback
	if configured, ok := global.ErrorMessage(key); ok && configured != "" {
		tmpl = configured
	}
	if spec.ErrorMessage != "" {
		tmpl = spec.ErrorMessage
	}

	message, err := i18n.RenderMessage(tmpl, messageData{Value: value})
	if err != nil {
		return validation.ValidationResult{}, errors.InvalidSpecCause(errors.ModuleValidationx, operation, "errorMessage", tmpl, err)
	}
	return validation.NewValidationErrorWithField(code, key, message, value), nil
}

// ValidateEmail checks the syntax of an email address, the optional domain
// allow-list and the custom validator, in that order. Without a Pattern the
// address must be bare with a dotted domain ("user@example.com", no display
// name). Domains compare case-insensitively; an allowed domain also admits
// its subdomains.
func ValidateEmail(email string, opts ...ValidationOptions) (validation.ValidationResult, error) {
	spec, global := resolveValidationSpec(opts)
	email = strings.TrimSpace(email)

	if email == "" {
		return validation.NewValidationErrorWithField(validation.CodeRequired, config.MessageKeyEmail, "email is required", email), nil
	}

	if !emailSyntaxValid(email, effectivePattern(spec)) {
		return failure("ValidateEmail", validation.CodeEmail, config.MessageKeyEmail, email, spec, global, DefaultEmailMessage)
	}

	if len(spec.AllowedDomains) > 0 && !domainAllowed(email, spec.AllowedDomains) {
		return failure("ValidateEmail", validation.CodeEmailDomain, config.MessageKeyEmail, email, spec, global, DefaultEmailDomainMessage)
	}

	if spec.CustomValidator != nil && !spec.CustomValidator(email) {
		return failure("ValidateEmail", validation.CodeCustom, config.MessageKeyEmail, email, spec, global, DefaultEmailMessage)
	}
	return validation.NewValidationResult(), nil
}

func emailSyntaxValid(email string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(email)
	}
	return syntax.Var(email, "email") == nil
}

func domainAllowed(email string, allowed []string) bool {
	domain := strings.ToLower(email[strings.LastIndexByte(email, '@')+1:])
	return slicex.ContainsBy(allowed, func(entry string) bool {
		entry = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(entry), "@"))
		return entry != "" && (domain == entry || strings.HasSuffix(domain, "."+entry))
	})
}

// ValidatePhone checks a phone number. Spaces, dashes, dots and parentheses
// are ignored; an international prefix is "+" or "00". The remaining digits
// must number 7 to 15. With a CountryCode, international numbers must carry
// that code while national numbers are accepted as is.
func ValidatePhone(phone string, opts ...ValidationOptions) (validation.ValidationResult, error) {
	spec, global := resolveValidationSpec(opts)
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return validation.NewValidationErrorWithField(validation.CodeRequired, config.MessageKeyPhone, "phone number is required", phone), nil
	}

	fail := func(code string) (validation.ValidationResult, error) {
		return failure("ValidatePhone", code, config.MessageKeyPhone, phone, spec, global, DefaultPhoneMessage)
	}

	if pattern := effectivePattern(spec); pattern != nil {
		if !pattern.MatchString(phone) {
			return fail(validation.CodePhoneNumber)
		}
	} else {
		digits, international, ok := phoneDigits(phone)
		if !ok || len(digits) < 7 || len(digits) > 15 {
			return fail(validation.CodePhoneNumber)
		}
		if code := strings.TrimLeft(strings.TrimPrefix(spec.CountryCode, "+"), "0"); code != "" && international && !strings.HasPrefix(digits, code) {
			return fail(validation.CodePhoneNumber)
		}
	}

	if spec.CustomValidator != nil && !spec.CustomValidator(phone) {
		return fail(validation.CodeCustom)
	}
	return validation.NewValidationResult(), nil
}

// phoneDigits strips formatting and the international prefix
func phoneDigits(phone string) (digits string, international bool, ok bool) {
	var sb strings.Builder
	for i, r := range phone {
		switch {
		case r == '+' && i == 0:
			international = true
		case unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", false, false
		}
	}
	digits = sb.String()
	if !international && strings.HasPrefix(digits, "00") {
		digits = digits[2:]
		international = true
	}
	return digits, international, true
}

// IsValidEmail reports whether email passes ValidateEmail
func IsValidEmail(email string, opts ...ValidationOptions) bool {
	result, err := ValidateEmail(email, opts...)
	return err == nil && result.Valid
}

// IsValidPhone reports whether phone passes ValidatePhone
func IsValidPhone(phone string, opts ...ValidationOptions) bool {
	result, err := ValidatePhone(phone, opts...)
	return err == nil && result.Valid
}

// Email adapts ValidateEmail to a validation chain
func Email(opts ...ValidationOptions) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		return contactValidator(value, func(s string) (validation.ValidationResult, error) {
			return ValidateEmail(s, opts...)
		})
	}
}

// Phone adapts ValidatePhone to a validation chain
func Phone(opts ...ValidationOptions) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		return contactValidator(value, func(s string) (validation.ValidationResult, error) {
			return ValidatePhone(s, opts...)
		})
	}
}

func contactValidator(value interface{}, check func(string) (validation.ValidationResult, error)) validation.ValidationResult {
	s, ok := value.(string)
	if !ok {
		return validation.NewValidationErrorWithField(validation.CodeType, "", "value must be a string", value)
	}
	result, err := check(s)
	if err != nil {
		return validation.NewValidationError(validation.CodeCustom, err.Error())
	}
	return result
}
