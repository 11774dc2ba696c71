package model

import "time"

// Pokemon is a species record shared by all players, keyed by unique name.
type Pokemon struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// CaughtPokemon records a single capture of a species by a user.
// A user may own many records for the same species.
type CaughtPokemon struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PokemonID string    `json:"pokemon_id"`
	CreatedAt time.Time `json:"created_at"`

	// Pokemon is set by captures and collection listings.
	Pokemon *Pokemon `json:"pokemon,omitempty"`
}
