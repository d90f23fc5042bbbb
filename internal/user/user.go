// Package user holds the persisted user record and the signup/login service
// composing validation, credential hashing, and storage.
package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted record. Name is unique across the collection; the
// password is stored only as a bcrypt hash.
type User struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Age          int       `bson:"age" json:"age"`
	CID          string    `bson:"cid" json:"cid"`
	Gender       string    `bson:"gender" json:"gender"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
