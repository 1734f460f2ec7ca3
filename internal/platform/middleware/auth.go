package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"skillpass/internal/platform/token"
	id "skillpass/pkg/domain"
	dErrors "skillpass/pkg/domain-errors"
	"skillpass/pkg/platform/httputil"
)

// TokenValidator validates bearer tokens presented to protected endpoints.
type TokenValidator interface {
	Validate(tokenString string) (*token.Claims, error)
}

type contextKeyUserID struct{}
type contextKeyRole struct{}

// GetUserID retrieves the authenticated user ID from the context.
func GetUserID(ctx context.Context) id.UserID {
	userID, ok := ctx.Value(contextKeyUserID{}).(id.UserID)
	if !ok {
		return id.UserID{}
	}
	return userID
}

// GetRole retrieves the authenticated role from the context.
func GetRole(ctx context.Context) id.Role {
	role, ok := ctx.Value(contextKeyRole{}).(id.Role)
	if !ok {
		return ""
	}
	return role
}

// RequireAuth enforces a valid bearer token and places the authenticated
// identity on the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			const bearerPrefix = "Bearer "
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok || raw == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
				return
			}

			claims, err := validator.Validate(raw)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
				return
			}

			userID, err := id.ParseUserID(claims.UserID)
			if err != nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject"))
				return
			}
			role, err := id.ParseRole(claims.Role)
			if err != nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token role"))
				return
			}

			ctx = context.WithValue(ctx, contextKeyUserID{}, userID)
			ctx = context.WithValue(ctx, contextKeyRole{}, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates an endpoint on the authenticated role. Must be mounted
// inside RequireAuth.
func RequireRole(roles ...id.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actual := GetRole(r.Context())
			for _, role := range roles {
				if actual == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "insufficient role"))
		})
	}
}
