package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pokecatch/pokecatch/internal/auth"
)

// TokenVerifier resolves a bearer token to its subject ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger   *slog.Logger
	Verifier TokenVerifier
}

// Auth returns a middleware that requires a valid bearer token.
// The subject ID is stored in the request context for downstream handlers.
// Every failure gets the same 401 body; the reason is only logged.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logAuthFailure(cfg.Logger, r, auth.ErrMalformedToken)
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := cfg.Verifier.Verify(token)
			if err != nil {
				logAuthFailure(cfg.Logger, r, err)
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := auth.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func logAuthFailure(logger *slog.Logger, r *http.Request, err error) {
	reason := "malformed_token"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		reason = "expired_token"
	case errors.Is(err, auth.ErrBadSignature):
		reason = "bad_signature"
	}

	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}
