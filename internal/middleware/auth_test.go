package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authbase/internal/auth"
	"authbase/internal/models"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		guard := auth.GuardFromContext(r.Context())
		if !guard.Authenticated() {
			t.Error("handler reached without authenticated guard")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "authbase", time.Hour)
	handler := RequireAuth(tokens, protectedEcho(t))

	valid, err := tokens.Generate(models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	expiredMgr := auth.NewTokenManager("secret", "authbase", -time.Minute)
	expired, err := expiredMgr.Generate(models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("generate expired token: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid bearer", "Bearer " + valid, http.StatusOK},
		{"case-insensitive scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
