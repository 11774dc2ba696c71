package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pokemonKeyPrefix = "pokeapi:pokemon:"

	// DefaultPokemonTTL is the TTL for cached upstream responses.
	DefaultPokemonTTL = time.Hour
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// GetPokemon returns the cached upstream document for name.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetPokemon(ctx context.Context, name string) ([]byte, error) {
	data, err := c.client.Get(ctx, pokemonKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

// SetPokemon stores an upstream document for name.
func (c *Cache) SetPokemon(ctx context.Context, name string, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultPokemonTTL
	}
	if err := c.client.Set(ctx, pokemonKey(name), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// pokemonKey keys documents by the exact requested name; the upstream API
// decides what a name resolves to, including case.
func pokemonKey(name string) string {
	return pokemonKeyPrefix + name
}
