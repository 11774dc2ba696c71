package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// userIDContextKey is the context key for the authenticated subject.
	userIDContextKey contextKey = "auth_user_id"
)

// ContextWithUserID stores the authenticated user ID in the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext returns the authenticated user ID.
// Returns an empty string if the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey).(string)
	return userID
}

// MustUserIDFromContext returns the authenticated user ID.
// Panics if absent (use only behind the auth middleware).
func MustUserIDFromContext(ctx context.Context) string {
	userID := UserIDFromContext(ctx)
	if userID == "" {
		panic("user ID not found in context - ensure auth middleware is applied")
	}
	return userID
}
