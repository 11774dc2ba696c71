package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pokecatch/pokecatch/internal/auth"
	"github.com/pokecatch/pokecatch/internal/metrics"
	"github.com/pokecatch/pokecatch/internal/model"
	"github.com/pokecatch/pokecatch/internal/repository"
)

// maxEmailLength follows the RFC 5321 path limit.
const maxEmailLength = 254

// AuthService handles registration and login.
type AuthService struct {
	users   UserStore
	hasher  PasswordHasher
	tokens  TokenIssuer
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenIssuer, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		metrics: recorder,
	}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// Register creates a user with a hashed password.
// Email is stored exactly as given.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Login verifies credentials and issues a token bound to the user's ID.
// Length limits apply to registration only: an over-long email cannot match
// a stored user and an over-long password cannot match a stored hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	switch {
	case email == "":
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case password == "":
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLogin(metrics.OutcomeFailure)
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(password) > auth.MaxPasswordBytes {
		s.metrics.IncLogin(metrics.OutcomeFailure)
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.metrics.IncLogin(metrics.OutcomeFailure)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLogin(metrics.OutcomeSuccess)

	return &LoginResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func validateCredentials(email, password string) error {
	switch {
	case email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	case len(email) > maxEmailLength:
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	case password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	case len(password) > auth.MaxPasswordBytes:
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, auth.MaxPasswordBytes)
	}
	return nil
}
