package http

import (
	"strings"

	"milkround/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// requireAuth validates the bearer token and stores the parsed claims on
// the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return respondUnauthorized(ctx, "missing bearer token")
		}

		claims, err := s.tokens.Parse(token)
		if err != nil {
			return respondUnauthorized(ctx, "invalid or expired token")
		}

		ctx.Set(claimsContextKey, claims)

		return next(ctx)
	}
}

// requireAdmin rejects requests whose token does not carry the admin role.
// Must run after requireAuth.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims := claimsFrom(ctx)
		if claims == nil {
			return respondUnauthorized(ctx, "missing bearer token")
		}

		role, err := claims.ParsedRole()
		if err != nil || !role.IsAdmin() {
			return respondError(ctx, errNotAdmin())
		}

		return next(ctx)
	}
}

func claimsFrom(ctx echo.Context) *auth.AccessClaims {
	claims, _ := ctx.Get(claimsContextKey).(*auth.AccessClaims)
	return claims
}
