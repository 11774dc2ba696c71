package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pokecatch/pokecatch/internal/model"
)

// UpsertPokemon returns the Pokemon named name, creating it if absent.
// The insert and lookup happen in one statement, so concurrent callers
// for the same name always observe the same row.
func (r *Repository) UpsertPokemon(ctx context.Context, id, name string) (*model.Pokemon, error) {
	// DO UPDATE (rather than DO NOTHING) makes RETURNING yield the existing row.
	query := `
		INSERT INTO pokemon (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`

	var p model.Pokemon
	err := r.pool.QueryRow(ctx, query, id, name, time.Now().UTC()).Scan(
		&p.ID,
		&p.Name,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pokemon: %w", err)
	}

	return &p, nil
}

// CreateCaughtPokemon inserts a new ownership record.
func (r *Repository) CreateCaughtPokemon(ctx context.Context, caught *model.CaughtPokemon) error {
	query := `
		INSERT INTO caught_pokemon (id, user_id, pokemon_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		caught.ID,
		caught.UserID,
		caught.PokemonID,
		caught.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create caught pokemon: %w", err)
	}

	return nil
}

// DeleteCaughtPokemon deletes the record matching both id and userID.
// It reports whether a row was removed; a record owned by someone else is left untouched.
func (r *Repository) DeleteCaughtPokemon(ctx context.Context, userID, id string) (bool, error) {
	query := `
		DELETE FROM caught_pokemon
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete caught pokemon: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListCaughtPokemon returns every record owned by userID joined with its species,
// oldest capture first.
func (r *Repository) ListCaughtPokemon(ctx context.Context, userID string) ([]*model.CaughtPokemon, error) {
	query := `
		SELECT c.id, c.user_id, c.pokemon_id, c.created_at, p.id, p.name, p.created_at
		FROM caught_pokemon c
		JOIN pokemon p ON p.id = c.pokemon_id
		WHERE c.user_id = $1
		ORDER BY c.created_at, c.id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list caught pokemon: %w", err)
	}
	defer rows.Close()

	caught := make([]*model.CaughtPokemon, 0)
	for rows.Next() {
		c := &model.CaughtPokemon{Pokemon: &model.Pokemon{}}
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.PokemonID,
			&c.CreatedAt,
			&c.Pokemon.ID,
			&c.Pokemon.Name,
			&c.Pokemon.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan caught pokemon: %w", err)
		}
		caught = append(caught, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate caught pokemon: %w", err)
	}

	return caught, nil
}
