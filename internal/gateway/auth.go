package gateway

import "context"

// TokenSource supplies the bearer token for outgoing requests. Token
// management itself (refresh, storage) belongs to the auth collaborator, not
// to this layer.
type TokenSource interface {
	// Token returns the current bearer token, or ErrNotAuthenticated when no
	// usable token exists.
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token on every call. Useful for tests
// and one-shot tooling.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	if s == "" {
		return "", ErrNotAuthenticated
	}
	return string(s), nil
}

type contextTokenKey struct{}

// WithToken stores a request-scoped bearer token on the context, to be picked
// up by ContextTokenSource. The HTTP surface uses this to pass the caller's
// own token through to the remote API.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextTokenKey{}, token)
}

// ContextTokenSource reads the token placed on the context by WithToken.
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	token, ok := ctx.Value(contextTokenKey{}).(string)
	if !ok || token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}
