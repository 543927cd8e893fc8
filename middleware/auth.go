package middleware

import (
	"context"
	"net/http"
	"strings"

	"foodshare/apperrors"
	"foodshare/models"
	"foodshare/utils"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// ClaimsFromContext returns the authenticated claims, if any.
func ClaimsFromContext(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*utils.Claims)
	return claims, ok
}

// AuthMiddleware verifies the bearer token and attaches its claims to the
// request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(w, apperrors.NewAuth("Authorization header missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(w, apperrors.NewAuth("Invalid Authorization header format"))
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole ensures the authenticated user's type is in the allow-list.
func RequireRole(roles ...models.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				utils.Error(w, apperrors.NewAuth("Authorization required"))
				return
			}
			for _, role := range roles {
				if claims.UserType == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.Error(w, apperrors.NewForbidden("User role is not authorized to access this route"))
		})
	}
}
