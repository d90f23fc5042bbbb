package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	lowercaseRegex    = regexp.MustCompile(`[a-z]`)
	uppercaseRegex    = regexp.MustCompile(`[A-Z]`)
	digitRegex        = regexp.MustCompile(`[0-9]`)
	symbolRegex       = regexp.MustCompile(`[@$!%*?&]`)
	allowedCharsRegex = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]*$`)
)

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one lowercase letter",
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one uppercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one digit",
		},
	}
}

// PasswordSymbol validates the presence of at least one symbol from the
// @$!%*?& set accepted by the form.
func PasswordSymbol(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return symbolRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one special character",
		},
	}
}

// PasswordAllowedChars validates that the whole password stays within the
// accepted alphabet: letters, digits, and the @$!%*?& symbol set. Spaces and
// any other character fail. Empty strings pass; Required covers absence.
func PasswordAllowedChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return allowedCharsRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password contains characters that are not allowed",
		},
	}
}

// NotContainsAny validates that the value does not contain any of the given
// substrings, compared case-insensitively.
func NotContainsAny(field, value string, forbidden []string) Rule {
	return Rule{
		Check: func() bool {
			lower := strings.ToLower(value)
			for _, word := range forbidden {
				if word != "" && strings.Contains(lower, strings.ToLower(word)) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain forbidden words",
		},
	}
}

// PersonalDetail names a submitter-supplied value that must not appear inside
// a password, e.g. {Label: "name", Value: "Tashi Dorji"}.
type PersonalDetail struct {
	Label string
	Value string
}

// NotContainsPersonal validates that the password does not contain any of the
// submitter's own details as a case-insensitive substring. Unlike ordered
// field checks, all details are evaluated together so the failure message
// names every matching detail at once, not just the first.
func NotContainsPersonal(field, value string, details ...PersonalDetail) Rule {
	lower := strings.ToLower(value)

	var matched []string
	for _, d := range details {
		if d.Value == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(d.Value)) {
			matched = append(matched, d.Label)
		}
	}

	return Rule{
		Check: func() bool {
			return len(matched) == 0
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("password must not contain your %s", joinLabels(matched)),
		},
	}
}

// joinLabels renders "name", "name and age", or "name, age and citizen ID".
func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return "personal details"
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
	}
}
