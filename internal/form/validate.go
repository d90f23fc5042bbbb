package form

import "github.com/secureform/signupd/pkg/validator"

// Outcome is the result of validating a single field.
type Outcome struct {
	Valid  bool
	Reason string
}

// Result maps every evaluated field to its outcome. A record is acceptable
// iff every outcome is valid.
type Result map[Field]Outcome

// OK reports whether every field passed.
func (r Result) OK() bool {
	for _, o := range r {
		if !o.Valid {
			return false
		}
	}
	return true
}

// Errors converts the invalid outcomes into ValidationErrors for callers
// that report per-field messages.
func (r Result) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for f, o := range r {
		if !o.Valid {
			errs.Add(validator.ValidationError{Field: string(f), Message: o.Reason})
		}
	}
	return errs
}

// Validate evaluates one field against its registered rules, in order,
// stopping at the first failure. Unregistered fields are valid by definition.
func (r *Registry) Validate(f Field, value string, sub Submission) Outcome {
	builder, ok := r.builders[f]
	if !ok {
		return Outcome{Valid: true}
	}

	if failure := validator.ApplyOrdered(builder(value, sub)...); failure != nil {
		return Outcome{Reason: failure.Message}
	}
	return Outcome{Valid: true}
}

// ValidateRecord evaluates every registered field of the submission. All
// fields are always evaluated so the caller can report every simultaneous
// error in one pass; the result is total over the registered field set.
func (r *Registry) ValidateRecord(sub Submission) Result {
	result := make(Result, len(r.order))
	for _, f := range r.order {
		result[f] = r.Validate(f, sub.Get(f), sub)
	}
	return result
}
