package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureform/signupd/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Tashi"),
			validator.MinLen("name", "Tashi", 3),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates all failures", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.Required("email", ""),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("email"))
		assert.Equal(t, []string{"name", "email"}, verrs.Fields())
	})

	t.Run("error message lists field and reason", func(t *testing.T) {
		err := validator.Apply(validator.Required("age", ""))
		assert.EqualError(t, err, "validation failed: age: field is required")
	})
}

func TestApplyOrdered(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		failure := validator.ApplyOrdered(
			validator.Required("name", "Tashi"),
			validator.AlphaSpace("name", "Tashi"),
		)
		assert.Nil(t, failure)
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		failure := validator.ApplyOrdered(
			validator.Required("name", ""),
			validator.MinLen("name", "", 3),
		)
		require.NotNil(t, failure)
		assert.Equal(t, "field is required", failure.Message)
	})

	t.Run("later failures surface once earlier rules pass", func(t *testing.T) {
		failure := validator.ApplyOrdered(
			validator.Required("name", "ab"),
			validator.MinLen("name", "ab", 3),
		)
		require.NotNil(t, failure)
		assert.Equal(t, "must be at least 3 characters long", failure.Message)
	})
}

func TestWithMessage(t *testing.T) {
	rule := validator.Required("name", "").WithMessage("Enter your name")
	assert.False(t, rule.Check())
	assert.Equal(t, "name", rule.Error.Field)
	assert.Equal(t, "Enter your name", rule.Error.Message)
}

func TestIsValidationError(t *testing.T) {
	err := validator.Apply(validator.Required("name", ""))
	assert.True(t, validator.IsValidationError(err))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(assert.AnError))
}
