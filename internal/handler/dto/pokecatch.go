// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/pokecatch/pokecatch/internal/model"
)

// CredentialsRequest is the body of POST /register and POST /login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CaptureRequest is the body of POST /protected/capture.
type CaptureRequest struct {
	Name string `json:"name"`
}

// MessageResponse is the envelope for responses without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// PokemonResponse wraps the upstream document unchanged.
type PokemonResponse struct {
	Data json.RawMessage `json:"data"`
}

// PokemonRef is the species embedded in an ownership record.
type PokemonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CaughtPokemonResponse is one ownership record.
type CaughtPokemonResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	PokemonID string      `json:"pokemon_id"`
	CreatedAt time.Time   `json:"created_at"`
	Pokemon   *PokemonRef `json:"pokemon,omitempty"`
}

// CaptureResponse is returned by a successful capture.
type CaptureResponse struct {
	Message string                `json:"message"`
	Data    CaughtPokemonResponse `json:"data"`
}

// CaughtListResponse lists a user's collection. Data is never null.
type CaughtListResponse struct {
	Data []CaughtPokemonResponse `json:"data"`
}

// ToCaughtPokemonResponse converts a model.CaughtPokemon to its API shape.
func ToCaughtPokemonResponse(c *model.CaughtPokemon) CaughtPokemonResponse {
	resp := CaughtPokemonResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		PokemonID: c.PokemonID,
		CreatedAt: c.CreatedAt,
	}
	if c.Pokemon != nil {
		resp.Pokemon = &PokemonRef{ID: c.Pokemon.ID, Name: c.Pokemon.Name}
	}
	return resp
}

// ToCaughtListResponse converts a collection listing.
func ToCaughtListResponse(caught []*model.CaughtPokemon) CaughtListResponse {
	data := make([]CaughtPokemonResponse, 0, len(caught))
	for _, c := range caught {
		data = append(data, ToCaughtPokemonResponse(c))
	}
	return CaughtListResponse{Data: data}
}
