package credential_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureform/signupd/internal/credential"
)

func TestHashAndVerify(t *testing.T) {
	// MinCost keeps the test fast; the verify contract is cost-independent.
	hasher := credential.NewHasher(4)

	hash, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	t.Run("correct password verifies", func(t *testing.T) {
		ok, err := credential.Verify("Str0ng!Pass", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password returns false without error", func(t *testing.T) {
		ok, err := credential.Verify("wrong", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed stored hash returns an error", func(t *testing.T) {
		ok, err := credential.Verify("Str0ng!Pass", "not-a-bcrypt-hash")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestHashesAreSalted(t *testing.T) {
	hasher := credential.NewHasher(4)

	first, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)
	second, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewHasherClampsInvalidCost(t *testing.T) {
	hasher := credential.NewHasher(99)
	hash, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)

	ok, err := credential.Verify("Str0ng!Pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
