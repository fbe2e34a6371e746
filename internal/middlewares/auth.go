package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// RoleChecker checks the role carried by a token.
type RoleChecker interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	HasRole(ctx context.Context, tokenString, role string) (bool, error)
}

// AuthMiddleware returns a middleware that rejects requests without a valid bearer token
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				logger.Log.Warnw("authorization failed", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleMiddleware returns a middleware that lets through only tokens carrying role.
func RoleMiddleware(checker RoleChecker, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := checker.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ok, err := checker.HasRole(ctx, tokenString, role)
			if err != nil {
				logger.Log.Warnw("authorization failed", "error", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if !ok {
				logger.Log.Warnw("role required", "role", role, "uri", r.RequestURI)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
