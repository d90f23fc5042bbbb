package validator

import (
	"fmt"
	"strings"
)

// InList validates that the value is one of the allowed values.
func InList(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}
