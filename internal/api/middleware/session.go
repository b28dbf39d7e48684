package middleware

import (
	"context"
	"net/http"

	"github.com/example/storefront/internal/domain/session"
)

// SessionSource reports the current user. *session.Store satisfies it.
type SessionSource interface {
	CurrentUser() (session.User, bool)
}

// RequireSession rejects requests while nobody is logged in and puts the user in the context
func RequireSession(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sessions.CurrentUser()
			if !ok {
				respondError(w, "login required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the session user from the request context
func GetUserFromContext(ctx context.Context) (session.User, bool) {
	user, ok := ctx.Value(UserContextKey).(session.User)
	return user, ok
}
