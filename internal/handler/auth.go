package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pokecatch/pokecatch/internal/handler/dto"
	"github.com/pokecatch/pokecatch/internal/model"
	"github.com/pokecatch/pokecatch/internal/service"
)

// Authenticator registers users and logs them in.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
}

// AuthHandler handles POST /register and POST /login.
type AuthHandler struct {
	svc    Authenticator
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	user, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("user_registered", "user_id", user.ID)

	writeMessage(w, http.StatusOK, user.Email+" registered successfully")
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("user_logged_in", "user_id", res.UserID)

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   res.Token,
	})
}
