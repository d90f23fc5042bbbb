package validator

import (
	"regexp"
	"strings"
)

// emailShapeRegex is deliberately strict about the TLD length (2-3 letters)
// to match the form contract rather than the full RFC grammar.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-z]{2,3}$`)

// EmailShape validates the local@domain.tld shape with a 2-3 letter TLD.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// EmailDomainIn validates that the address's domain part is one of the
// allowed domains. Comparison is case-insensitive on the domain.
func EmailDomainIn(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			at := strings.LastIndex(value, "@")
			if at < 0 || at == len(value)-1 {
				return false
			}
			domain := strings.ToLower(value[at+1:])
			for _, d := range allowed {
				if domain == strings.ToLower(d) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: "email domain is not allowed",
		},
	}
}
