package auth

import (
	"context"

	"github.com/goliatone/go-router"
)

var userIDCtxKey = &contextKey{"userID"}

// UserIDLocalsKey is where the Protected middleware stashes the session's
// user id in the router context
const UserIDLocalsKey = "auth_user_id"

type contextKey struct {
	name string
}

// WithUserID sets the session user id in the given context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext finds the session user id from the context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(userIDCtxKey).(string)
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

// UserIDFromRouter extracts the session user id from the router context
func UserIDFromRouter(ctx router.Context) (string, bool) {
	raw := ctx.Locals(UserIDLocalsKey)
	if raw == nil {
		return "", false
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
