package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/studynest/studyspaces-backend/internal/domain/providers"
)

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware verifies the bearer credential on every request it wraps
// and injects the resolved identity into the request context.
func AuthMiddleware(identities providers.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := bearerCredential(r)
			if credential == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			identity, err := identities.Verify(r.Context(), credential)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
		})
	}
}

// ContextWithIdentity attaches a verified identity to the context.
func ContextWithIdentity(ctx context.Context, identity *providers.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext returns the identity injected by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*providers.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*providers.Identity)
	return identity, ok
}

func bearerCredential(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
