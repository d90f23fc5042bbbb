package form

import "strings"

// Field identifies a submitted form field.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldAge             Field = "age"
	FieldCID             Field = "cid"
	FieldGender          Field = "gender"
)

// Submission holds the raw field values of one form submission. Values are
// kept as received; trimming happens at validation time only, so the caller
// stays in charge of what gets persisted.
type Submission map[Field]string

// Get returns the field value trimmed of surrounding whitespace, which is
// the form every rule evaluates against. Absent fields read as "".
func (s Submission) Get(f Field) string {
	return strings.TrimSpace(s[f])
}

// Raw returns the field value exactly as submitted.
func (s Submission) Raw(f Field) string {
	return s[f]
}
