package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/secureform/signupd/internal/form"
)

// recognizedFields maps request keys onto form fields. Unknown keys are
// dropped; rule coverage stays with the form registry.
var recognizedFields = []form.Field{
	form.FieldName,
	form.FieldEmail,
	form.FieldPassword,
	form.FieldConfirmPassword,
	form.FieldAge,
	form.FieldCID,
	form.FieldGender,
}

// decodeSubmission reads a submission from a JSON body or a urlencoded form,
// matching what browsers and API clients send.
func decodeSubmission(r *http.Request) (form.Submission, error) {
	sub := make(form.Submission, len(recognizedFields))

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		for _, f := range recognizedFields {
			if v, ok := body[string(f)]; ok {
				if s, ok := stringifyScalar(v); ok {
					sub[f] = s
				}
			}
		}
		return sub, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form body: %w", err)
	}
	for _, f := range recognizedFields {
		if v := r.PostForm.Get(string(f)); v != "" {
			sub[f] = v
		}
	}
	return sub, nil
}

// stringifyScalar renders JSON scalars the way a form field would carry
// them, so {"age": 27} validates like "age=27". Arrays, objects, and null
// are dropped rather than failing the whole request.
func stringifyScalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		// JSON numbers decode as float64; -1 precision keeps integers
		// free of exponents and trailing zeros.
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
