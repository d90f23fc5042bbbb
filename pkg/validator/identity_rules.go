package validator

import (
	"fmt"
	"regexp"
	"unicode"
)

// NoAlpha validates that the value contains no letters. Redundant with a
// digits-only pattern but kept separate so the caller can surface a more
// specific message for alphabetic input.
func NoAlpha(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if unicode.IsLetter(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain letters",
		},
	}
}

// NoSpecialChars validates that the value contains only letters and digits.
func NoSpecialChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, r := range value {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain special characters",
		},
	}
}

// DigitsExactly validates that the value is exactly n ASCII digits.
func DigitsExactly(field, value string, n int) Rule {
	pattern := regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, n))
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be exactly %d digits long", n),
		},
	}
}
