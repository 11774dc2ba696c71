package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pokecatch/pokecatch/internal/metrics"
	"github.com/pokecatch/pokecatch/internal/model"
)

const maxPokemonNameLength = 100

// CollectionService manages a user's caught Pokemon.
// Every operation is scoped to the userID passed in, which callers must take
// from the authenticated request context.
type CollectionService struct {
	store   CollectionStore
	metrics metrics.Recorder
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(store CollectionStore, recorder metrics.Recorder) *CollectionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CollectionService{
		store:   store,
		metrics: recorder,
	}
}

// Capture records a new capture of the species name by userID,
// creating the species row on first use.
func (s *CollectionService) Capture(ctx context.Context, userID, name string) (*model.CaughtPokemon, error) {
	if err := validatePokemonName(name); err != nil {
		return nil, err
	}

	pokemon, err := s.store.UpsertPokemon(ctx, ulid.Make().String(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create pokemon: %w", err)
	}

	caught := &model.CaughtPokemon{
		ID:        ulid.Make().String(),
		UserID:    userID,
		PokemonID: pokemon.ID,
		// timestamptz keeps microseconds; match what a later read returns.
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Pokemon:   pokemon,
	}

	if err := s.store.CreateCaughtPokemon(ctx, caught); err != nil {
		return nil, fmt.Errorf("failed to create caught pokemon: %w", err)
	}

	s.metrics.IncPokemonCaptured()

	return caught, nil
}

// Release deletes the record id if it belongs to userID.
// A missing or foreign record is not an error.
func (s *CollectionService) Release(ctx context.Context, userID, id string) error {
	deleted, err := s.store.DeleteCaughtPokemon(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to release pokemon: %w", err)
	}

	s.metrics.IncPokemonReleased(deleted)

	return nil
}

// List returns every record owned by userID with species metadata.
func (s *CollectionService) List(ctx context.Context, userID string) ([]*model.CaughtPokemon, error) {
	caught, err := s.store.ListCaughtPokemon(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list caught pokemon: %w", err)
	}
	return caught, nil
}

func validatePokemonName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case len(name) > maxPokemonNameLength:
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	return nil
}
