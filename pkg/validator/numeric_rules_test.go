package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secureform/signupd/pkg/validator"
)

func TestDigits(t *testing.T) {
	t.Run("passes for digits within count", func(t *testing.T) {
		assert.True(t, validator.Digits("age", "42", 1, 3).Check())
	})

	t.Run("fails for too many digits", func(t *testing.T) {
		assert.False(t, validator.Digits("age", "1234", 1, 3).Check())
	})

	t.Run("fails for non-digit characters", func(t *testing.T) {
		assert.False(t, validator.Digits("age", "4a", 1, 3).Check())
		assert.False(t, validator.Digits("age", "-4", 1, 3).Check())
	})
}

func TestIntBetween(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"at lower bound", "1", true},
		{"below lower bound", "0", false},
		{"at upper bound", "150", true},
		{"above upper bound", "151", false},
		{"non-numeric", "abc", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IntBetween("age", tt.value, 1, 150).Check())
		})
	}
}
