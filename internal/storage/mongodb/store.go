// Package mongodb implements user.Store on a MongoDB collection. The unique
// index on name makes the signup check-and-insert atomic: a racing duplicate
// surfaces as a duplicate-key error instead of a second record.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/secureform/signupd/internal/user"
)

// CollectionName is the users collection within the service database.
const CollectionName = "users"

type Store struct {
	coll *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the unique index on name. Safe to call repeatedly.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create unique name index: %w", err)
	}
	return nil
}

func (s *Store) FindByName(ctx context.Context, name string) (*user.User, error) {
	var u user.User
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find user by name: %w", err)
	}
	return &u, nil
}

func (s *Store) Insert(ctx context.Context, u *user.User) error {
	if _, err := s.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
