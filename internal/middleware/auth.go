package middleware

import (
	"net/http"
	"strings"

	"authbase/internal/auth"
	"authbase/internal/http/respond"
)

// RequireAuth verifies the bearer token on every request before the wrapped
// handler runs. Missing, malformed, expired, and forged tokens are all
// rejected with the same 401; a valid token places an authenticated guard
// in the request context.
func RequireAuth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		subject, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := auth.NewContextWithGuard(r.Context(), auth.Guard{Subject: subject})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
