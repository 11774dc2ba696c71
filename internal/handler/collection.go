package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pokecatch/pokecatch/internal/auth"
	"github.com/pokecatch/pokecatch/internal/handler/dto"
	"github.com/pokecatch/pokecatch/internal/model"
)

// Collection manages the caller's caught Pokemon.
type Collection interface {
	Capture(ctx context.Context, userID, name string) (*model.CaughtPokemon, error)
	Release(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]*model.CaughtPokemon, error)
}

// CollectionHandler handles the /protected routes.
// The user ID always comes from the auth middleware, never from the request.
type CollectionHandler struct {
	svc    Collection
	logger *slog.Logger
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(svc Collection, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		svc:    svc,
		logger: logger,
	}
}

// Capture handles POST /protected/capture.
func (h *CollectionHandler) Capture(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	var req dto.CaptureRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	caught, err := h.svc.Capture(r.Context(), userID, req.Name)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("pokemon_captured",
		"user_id", userID,
		"caught_id", caught.ID,
		"pokemon_id", caught.PokemonID,
	)

	writeJSON(w, http.StatusOK, dto.CaptureResponse{
		Message: "Pokemon caught successfully",
		Data:    dto.ToCaughtPokemonResponse(caught),
	})
}

// Release handles DELETE /protected/release/{id}.
// It reports success whether or not the caller owned the record.
func (h *CollectionHandler) Release(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.svc.Release(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeMessage(w, http.StatusOK, "Pokemon released successfully")
}

// Caught handles GET /protected/caught.
func (h *CollectionHandler) Caught(w http.ResponseWriter, r *http.Request) {
	userID := auth.MustUserIDFromContext(r.Context())

	caught, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCaughtListResponse(caught))
}
