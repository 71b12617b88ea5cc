// Package http provides the authentication middleware, the access policy
// middleware and the /api/auth handlers.
package http

import (
	"context"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
)

// identityKey is the context key for the request identity.
type identityKey struct{}

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity returns the identity attached by AuthenticationMiddleware, if any.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok && identity != nil
}
