package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/secureform/signupd/internal/credential"
	"github.com/secureform/signupd/internal/form"
)

// Service composes record validation, credential hashing, and storage into
// the signup and login flows. Each call is independent and stateless apart
// from the storage reads and the single insert.
type Service struct {
	store  Store
	hasher credential.Hasher
	signup *form.Registry
	login  *form.Registry
	logger *slog.Logger
}

type Option func(*Service)

// WithHasher sets a custom password hasher, e.g. with a lower cost in tests.
func WithHasher(h credential.Hasher) Option {
	return func(s *Service) { s.hasher = h }
}

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRules replaces the rule parameters for both signup and login.
func WithRules(cfg form.Config) Option {
	return func(s *Service) {
		s.signup = form.NewSignupRegistry(cfg)
		s.login = form.NewLoginRegistry(cfg)
	}
}

// NewService creates a user service with the canonical rule set and bcrypt
// cost unless overridden.
func NewService(store Store, opts ...Option) *Service {
	cfg := form.DefaultConfig()
	s := &Service{
		store:  store,
		hasher: credential.NewHasher(credential.DefaultCost),
		signup: form.NewSignupRegistry(cfg),
		login:  form.NewLoginRegistry(cfg),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup validates the submission, hashes the password, and persists a new
// record. Validation failures come back as validator.ValidationErrors with
// every invalid field present; a taken name comes back as ErrAlreadyExists.
func (s *Service) Signup(ctx context.Context, sub form.Submission) (*User, error) {
	if result := s.signup.ValidateRecord(sub); !result.OK() {
		return nil, result.Errors()
	}

	name := sub.Get(form.FieldName)

	// Friendly fast path; the unique index behind Insert is the authority,
	// so a racing duplicate still cannot commit twice.
	if _, err := s.store.FindByName(ctx, name); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(sub.Get(form.FieldPassword))
	if err != nil {
		return nil, err
	}

	// Age was validated as 1-3 digits, so Atoi cannot fail here.
	age, _ := strconv.Atoi(sub.Get(form.FieldAge))

	u := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        sub.Get(form.FieldEmail),
		Age:          age,
		CID:          sub.Get(form.FieldCID),
		Gender:       sub.Get(form.FieldGender),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, u); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed up", slog.String("name", u.Name))
	return u, nil
}

// Login verifies a name/password pair. Any mismatch, including an unknown
// name, returns ErrInvalidCredentials so login failures never reveal whether
// a name is registered.
func (s *Service) Login(ctx context.Context, name, password string) (*User, error) {
	sub := form.Submission{form.FieldName: name, form.FieldPassword: password}
	if result := s.login.ValidateRecord(sub); !result.OK() {
		return nil, result.Errors()
	}

	u, err := s.store.FindByName(ctx, sub.Get(form.FieldName))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	// Compare the trimmed attempt; signup hashed the trimmed password.
	ok, err := credential.Verify(sub.Get(form.FieldPassword), u.PasswordHash)
	if err != nil {
		// Malformed stored hash is a configuration fault, not a bad attempt.
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("name", u.Name))
	return u, nil
}
