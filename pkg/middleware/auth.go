package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/lead-dashboard-api/internal/domain"
	"github.com/vfg2006/lead-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/lead-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator valida o bearer token recebido no cabeçalho Authorization
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type codedError interface {
	ErrorCode() string
}

var publicPaths = map[string]struct{}{
	"/healthcheck":  {},
	"/api/v1/login": {},
}

func AuthMiddleware(authService TokenValidator, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := publicPaths[strings.TrimSuffix(r.URL.Path, "/")]; ok {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var coded codedError
				if errors.As(err, &coded) {
					code = coded.ErrorCode()
				}

				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retorna as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
