package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// AlphaSpace validates that a string contains only ASCII letters and whitespace.
func AlphaSpace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return alphaSpaceRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters and spaces",
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// LenBetween validates that the string length is within [min, max] inclusive.
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min && len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters long", min, max),
		},
	}
}

// Equals validates that a value matches another exactly. Used for
// confirmation fields such as repeated passwords.
func Equals(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:   field,
			Message: "values do not match",
		},
	}
}
