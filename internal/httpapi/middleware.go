package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mfetisov/storefront/internal/gateway"
)

// Identity resolves a bearer token to the user id it belongs to. The real
// implementation lives with the auth service; this layer only consumes it.
type Identity interface {
	Resolve(ctx context.Context, token string) (userID string, err error)
}

// IdentityFunc adapts a plain function to Identity.
type IdentityFunc func(ctx context.Context, token string) (string, error)

func (f IdentityFunc) Resolve(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

type userIDKey struct{}

func userID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

// AuthMiddleware extracts the bearer token, resolves the user and stashes
// both on the context: the user id for session lookup, the token for the
// outbound gateways to pass through.
func AuthMiddleware(identity Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "not_authenticated", "sign in to continue")
				return
			}

			uid, err := identity.Resolve(r.Context(), token)
			if err != nil {
				respondMappedError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, uid)
			ctx = gateway.WithToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
