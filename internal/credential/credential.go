// Package credential owns the password hash-and-compare flow. Hashing uses
// bcrypt with a configurable cost; plaintext never leaves this package and is
// never logged.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the service has always used for
// stored hashes.
const DefaultCost = 10

// Hasher produces bcrypt hashes with a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// valid bcrypt range fall back to DefaultCost.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash returns a salted one-way hash of the plaintext password.
func (h Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify compares a plaintext attempt against a stored hash. A wrong password
// returns (false, nil); an error is returned only for a malformed stored
// hash, which indicates a configuration fault rather than a bad attempt.
func Verify(plaintext, storedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext))
	switch err {
	case nil:
		return true, nil
	case bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, fmt.Errorf("compare password hash: %w", err)
	}
}
