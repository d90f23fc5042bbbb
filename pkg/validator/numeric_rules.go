package validator

import (
	"fmt"
	"regexp"
	"strconv"
)

var digitsRegex = regexp.MustCompile(`^[0-9]+$`)

// Digits validates that the string consists of digits only, with a digit
// count within [min, max] inclusive.
func Digits(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min && len(value) <= max && digitsRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a number of %d to %d digits", min, max),
		},
	}
}

// IntBetween parses the string as an integer and validates it against the
// inclusive [min, max] range. A non-numeric string fails the rule.
func IntBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.Atoi(value)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", min, max),
		},
	}
}
