package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"
)

type contextKey string

const (
	userIDKey      contextKey = "userID"
	authoritiesKey contextKey = "authorities"
)

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// Authenticated validates the bearer token and puts the caller's identity
// into the request context. Requests without a valid token get 401.
func Authenticated(tokenGenerator *TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, authorities, err := tokenGenerator.Validate(token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, authoritiesKey, authorities)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthority validates the bearer token and additionally requires the
// given granted authority. Unauthenticated requests get 401 before any role
// evaluation; authenticated requests without the authority get 403.
func RequireAuthority(tokenGenerator *TokenGenerator, authority string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			userID, authorities, err := tokenGenerator.Validate(token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if !slices.Contains(authorities, authority) {
				respondError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, authoritiesKey, authorities)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

// GetAuthorities retrieves the granted authorities from context
func GetAuthorities(ctx context.Context) ([]string, bool) {
	authorities, ok := ctx.Value(authoritiesKey).([]string)
	return authorities, ok
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
