package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureform/signupd/internal/form"
)

func validSubmission() form.Submission {
	return form.Submission{
		form.FieldName:            "Tashi Dorji",
		form.FieldEmail:           "tashi@gmail.com",
		form.FieldPassword:        "Kz9!mfrwq",
		form.FieldConfirmPassword: "Kz9!mfrwq",
		form.FieldAge:             "27",
		form.FieldCID:             "10203040506",
		form.FieldGender:          "Male",
	}
}

func TestValidateRecord(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())

	t.Run("accepts a fully valid submission", func(t *testing.T) {
		result := reg.ValidateRecord(validSubmission())
		assert.True(t, result.OK())
		assert.Empty(t, result.Errors())
	})

	t.Run("result is total over registered fields", func(t *testing.T) {
		result := reg.ValidateRecord(form.Submission{})
		require.Len(t, result, 7)
		for _, f := range reg.Fields() {
			_, ok := result[f]
			assert.True(t, ok, "missing outcome for %s", f)
		}
		assert.False(t, result.OK())
	})

	t.Run("all fields are evaluated, not just the first failure", func(t *testing.T) {
		sub := validSubmission()
		sub[form.FieldName] = ""
		sub[form.FieldAge] = "151"

		result := reg.ValidateRecord(sub)
		assert.False(t, result[form.FieldName].Valid)
		assert.False(t, result[form.FieldAge].Valid)
		assert.True(t, result[form.FieldEmail].Valid)
	})

	t.Run("is deterministic", func(t *testing.T) {
		sub := validSubmission()
		sub[form.FieldCID] = "123"
		assert.Equal(t, reg.ValidateRecord(sub), reg.ValidateRecord(sub))
	})

	t.Run("surrounding whitespace is trimmed before evaluation", func(t *testing.T) {
		sub := validSubmission()
		sub[form.FieldName] = "  Tashi Dorji  "
		sub[form.FieldAge] = " 27 "
		assert.True(t, reg.ValidateRecord(sub).OK())
	})
}

func TestNameRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())

	tests := []struct {
		name   string
		value  string
		reason string
	}{
		{"empty", "", "Enter your name"},
		{"digits", "Tashi2", "Full name should only contain alphabets and spaces"},
		{"too short", "Ta", "Full name must be between 3 to 25 characters"},
		{"too long", "Tashi Dorji Wangchuk Namgyel", "Full name must be between 3 to 25 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := reg.Validate(form.FieldName, tt.value, nil)
			assert.False(t, o.Valid)
			assert.Equal(t, tt.reason, o.Reason)
		})
	}

	t.Run("valid name passes", func(t *testing.T) {
		assert.True(t, reg.Validate(form.FieldName, "Tashi Dorji", nil).Valid)
	})
}

func TestEmailRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())

	t.Run("whitelisted domain passes", func(t *testing.T) {
		assert.True(t, reg.Validate(form.FieldEmail, "user@gmail.com", nil).Valid)
	})

	t.Run("non-whitelisted domain fails with whitelist reason", func(t *testing.T) {
		o := reg.Validate(form.FieldEmail, "user@evil.com", nil)
		require.False(t, o.Valid)
		assert.Equal(t, "Email domain is not whitelisted", o.Reason)
	})

	t.Run("malformed address fails with format reason", func(t *testing.T) {
		o := reg.Validate(form.FieldEmail, "usergmail.com", nil)
		require.False(t, o.Valid)
		assert.Equal(t, "Enter a valid email address", o.Reason)
	})
}

func TestPasswordRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())
	sub := validSubmission()

	t.Run("strong password passes", func(t *testing.T) {
		assert.True(t, reg.Validate(form.FieldPassword, "Kz9!mfrwq", sub).Valid)
	})

	t.Run("missing character class fails with the strength reason", func(t *testing.T) {
		o := reg.Validate(form.FieldPassword, "weakpassword", sub)
		require.False(t, o.Valid)
		assert.Contains(t, o.Reason, "at least 8 characters")
	})

	t.Run("character outside the accepted alphabet fails with the strength reason", func(t *testing.T) {
		for _, pw := range []string{"Xyzwvu1!#", "Xyz wvu1!"} {
			o := reg.Validate(form.FieldPassword, pw, sub)
			require.False(t, o.Valid, pw)
			assert.Contains(t, o.Reason, "at least 8 characters", pw)
		}
	})

	t.Run("blacklisted word fails", func(t *testing.T) {
		o := reg.Validate(form.FieldPassword, "Qwerty9!x", sub)
		require.False(t, o.Valid)
		assert.Contains(t, o.Reason, "common words")
	})

	t.Run("containing the submitter's name fails naming the name", func(t *testing.T) {
		single := validSubmission()
		single[form.FieldName] = "Tashi"

		o := reg.Validate(form.FieldPassword, "xTashi9!Aq", single)
		require.False(t, o.Valid)
		assert.Equal(t, "password must not contain your name", o.Reason)
	})

	t.Run("containing name and age reports the combined reason", func(t *testing.T) {
		single := validSubmission()
		single[form.FieldName] = "Tashi"

		o := reg.Validate(form.FieldPassword, "Tashi27!Aq", single)
		require.False(t, o.Valid)
		assert.Equal(t, "password must not contain your name and age", o.Reason)
	})

	t.Run("containing the citizen ID fails", func(t *testing.T) {
		o := reg.Validate(form.FieldPassword, "Xa!10203040506", sub)
		require.False(t, o.Valid)
		assert.Equal(t, "password must not contain your citizen ID", o.Reason)
	})
}

func TestConfirmPasswordRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())
	sub := validSubmission()

	t.Run("exact match is the only valid condition", func(t *testing.T) {
		assert.True(t, reg.Validate(form.FieldConfirmPassword, "Kz9!mfrwq", sub).Valid)

		o := reg.Validate(form.FieldConfirmPassword, "kz9!mfrwq", sub)
		require.False(t, o.Valid)
		assert.Equal(t, "Passwords do not match", o.Reason)
	})

	t.Run("empty confirmation has its own reason", func(t *testing.T) {
		o := reg.Validate(form.FieldConfirmPassword, "", sub)
		require.False(t, o.Valid)
		assert.Equal(t, "Confirm your password", o.Reason)
	})
}

func TestAgeRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())

	tests := []struct {
		name   string
		value  string
		valid  bool
		reason string
	}{
		{"zero is below minimum", "0", false, "Enter a valid age between 1 and 150"},
		{"one is the minimum", "1", true, ""},
		{"upper bound", "150", true, ""},
		{"above upper bound", "151", false, "Enter a valid age between 1 and 150"},
		{"non-numeric", "abc", false, "Age must be a number"},
		{"empty", "", false, "Enter your age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := reg.Validate(form.FieldAge, tt.value, nil)
			assert.Equal(t, tt.valid, o.Valid)
			if !tt.valid {
				assert.Equal(t, tt.reason, o.Reason)
			}
		})
	}
}

func TestCIDRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())

	tests := []struct {
		name   string
		value  string
		valid  bool
		reason string
	}{
		{"eleven digits", "12345678901", true, ""},
		{"ten digits", "1234567890", false, "Citizen ID must be exactly 11 digits long"},
		{"alphabetic character", "1234567890a", false, "Citizen ID must not contain alphabets"},
		{"special character", "12345-78901", false, "Citizen ID must not contain special characters"},
		{"empty", "", false, "Enter your citizen ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := reg.Validate(form.FieldCID, tt.value, nil)
			assert.Equal(t, tt.valid, o.Valid)
			if !tt.valid {
				assert.Equal(t, tt.reason, o.Reason)
			}
		})
	}
}

func TestGenderRules(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())

	for _, g := range []string{"Male", "Female", "Other"} {
		assert.True(t, reg.Validate(form.FieldGender, g, nil).Valid, g)
	}

	o := reg.Validate(form.FieldGender, "male", nil)
	require.False(t, o.Valid)
	assert.Equal(t, "Gender must be Male, Female, or Other", o.Reason)

	o = reg.Validate(form.FieldGender, "", nil)
	require.False(t, o.Valid)
	assert.Equal(t, "Select your gender", o.Reason)
}

func TestLoginRegistry(t *testing.T) {
	reg := form.NewLoginRegistry(form.DefaultConfig())

	t.Run("requires name and password only", func(t *testing.T) {
		result := reg.ValidateRecord(form.Submission{
			form.FieldName:     "Tashi Dorji",
			form.FieldPassword: "anything goes at login",
		})
		assert.True(t, result.OK())
		assert.Len(t, result, 2)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		result := reg.ValidateRecord(form.Submission{})
		assert.False(t, result.OK())
		assert.Equal(t, "Enter your name", result[form.FieldName].Reason)
		assert.Equal(t, "Enter your password", result[form.FieldPassword].Reason)
	})
}

func TestUnregisteredFieldIsValid(t *testing.T) {
	reg := form.NewSignupRegistry(form.DefaultConfig())
	assert.True(t, reg.Validate(form.Field("nickname"), "whatever", nil).Valid)
}
