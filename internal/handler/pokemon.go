package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pokecatch/pokecatch/internal/handler/dto"
)

// PokemonLookup resolves species metadata by name.
type PokemonLookup interface {
	Lookup(ctx context.Context, name string) (json.RawMessage, error)
}

// PokemonHandler handles GET /pokemon/{name}.
type PokemonHandler struct {
	svc    PokemonLookup
	logger *slog.Logger
}

// NewPokemonHandler creates a new PokemonHandler.
func NewPokemonHandler(svc PokemonLookup, logger *slog.Logger) *PokemonHandler {
	return &PokemonHandler{
		svc:    svc,
		logger: logger,
	}
}

// Get handles GET /pokemon/{name}. The name is passed upstream verbatim.
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Lookup(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PokemonResponse{Data: doc})
}
