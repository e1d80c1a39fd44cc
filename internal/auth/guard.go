package auth

import "context"

type contextKey string

const guardContextKey contextKey = "auth_guard"

// Guard is the per-request authorization decision, computed by verifying the
// bearer token server-side. Client-held token presence is never trusted on
// its own.
type Guard struct {
	// Subject is the verified user id; empty when unauthenticated.
	Subject string
}

// Authenticated reports whether the request carried a valid token.
func (g Guard) Authenticated() bool {
	return g.Subject != ""
}

// Unauthenticated is the zero guard used for requests without a valid token.
var Unauthenticated = Guard{}

// NewContextWithGuard stores the guard in the request context.
func NewContextWithGuard(ctx context.Context, g Guard) context.Context {
	return context.WithValue(ctx, guardContextKey, g)
}

// GuardFromContext extracts the guard set by the auth middleware. The zero
// guard is returned when none was set.
func GuardFromContext(ctx context.Context) Guard {
	if g, ok := ctx.Value(guardContextKey).(Guard); ok {
		return g
	}
	return Unauthenticated
}
