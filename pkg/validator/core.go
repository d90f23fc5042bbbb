package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed check for one field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates failures across fields and implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for a field, in evaluation order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check closure with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule with the failure message replaced.
// The check and field name are preserved.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply evaluates every rule and aggregates all failures.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ApplyOrdered evaluates rules in order and stops at the first failure, so
// only the most specific message for a field surfaces. Returns nil when every
// rule passes.
func ApplyOrdered(rules ...Rule) *ValidationError {
	for _, rule := range rules {
		if !rule.Check() {
			err := rule.Error
			return &err
		}
	}
	return nil
}

// ExtractValidationErrors unwraps ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return err != nil && errors.As(err, &verrs)
}
