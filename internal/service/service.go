// Package service provides business logic for the application.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/pokecatch/pokecatch/internal/model"
)

// Service errors. The handler layer maps each to a fixed status and message.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPokemonNotFound    = errors.New("pokemon not found")
)

// UserStore persists user identities.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// CollectionStore persists species and ownership records.
type CollectionStore interface {
	UpsertPokemon(ctx context.Context, id, name string) (*model.Pokemon, error)
	CreateCaughtPokemon(ctx context.Context, caught *model.CaughtPokemon) error
	DeleteCaughtPokemon(ctx context.Context, userID, id string) (bool, error)
	ListCaughtPokemon(ctx context.Context, userID string) ([]*model.CaughtPokemon, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenIssuer issues bearer tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subjectID string) (string, time.Time, error)
}

// PokemonFetcher retrieves Pokemon documents from the upstream API.
type PokemonFetcher interface {
	GetPokemon(ctx context.Context, name string) (json.RawMessage, error)
}

// PokemonCache stores upstream documents.
type PokemonCache interface {
	GetPokemon(ctx context.Context, name string) ([]byte, error)
	SetPokemon(ctx context.Context, name string, data []byte, ttl time.Duration) error
}
