package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/inbound"

	"github.com/rs/zerolog"
)

// SessionCookieName is the cookie carrying the opaque session identifier
const SessionCookieName = "session"

type contextKeyUser struct{}

// GetUser retrieves the authenticated user from the request context
func GetUser(ctx context.Context) *shared.User {
	user, ok := ctx.Value(contextKeyUser{}).(*shared.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth resolves the session cookie to a user and stores the identity
// on the request context. Requests without a valid, unexpired session get a
// generic 401 that reveals nothing about why the session was rejected.
func RequireAuth(auth inbound.AuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	log := logger.With().Str("component", "auth_middleware").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := auth.CurrentUser(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, shared.ErrSessionNotFound) && !errors.Is(err, shared.ErrSessionExpired) {
					log.Error().Err(err).Msg("Failed to resolve session")
				}
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUser{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
