package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/edutalks/portfolio-api/internal/service"
)

type contextKeyAuth string

// ClaimsKey is the context key for the verified token claims.
const ClaimsKey contextKeyAuth = "auth_claims"

// Authenticate returns an HTTP middleware that requires a valid
// Authorization: Bearer token on every request it wraps. On success the
// verified claims are attached to the request context; on failure the
// request is rejected with a 401 before any handler or store code runs.
func Authenticate(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeAuthError(w, "Authentication required")
				return
			}

			claims, err := authSvc.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, service.ErrTokenExpired) {
					msg = "Token expired"
				}
				writeAuthError(w, msg)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the verified claims from the context. Returns nil for
// unauthenticated requests.
func GetClaims(ctx context.Context) *service.Claims {
	if c, ok := ctx.Value(ClaimsKey).(*service.Claims); ok {
		return c
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{false, message})
}
