package auth

import "context"

type contextKey struct{}

// WithClaims stores guest claims on a context.
func WithClaims(ctx context.Context, claims *GuestClaims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFromContext returns the guest claims stored by Middleware, or nil.
func ClaimsFromContext(ctx context.Context) *GuestClaims {
	claims, _ := ctx.Value(contextKey{}).(*GuestClaims)
	return claims
}
