// Package validator provides a small declarative rule engine for form field
// validation. Every helper constructs a Rule value that pairs a boolean Check
// closure with field-level error metadata; rules are evaluated with Apply
// (aggregate all failures) or ApplyOrdered (stop at the first failure, the
// policy used for per-field checks where only the most specific message
// should surface).
//
// The package keeps no global state. Rules capture their inputs at
// construction time, so evaluation is deterministic, pure, and safe for
// concurrent use.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.AlphaSpace("name", name),
//	    validator.MinLen("name", name, 3),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // per-field messages via verrs.Get("name")
//	}
//
// Default messages are generic; callers that need domain wording pin it with
// Rule.WithMessage.
package validator
