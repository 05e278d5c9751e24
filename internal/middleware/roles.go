package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "coursehub/internal/errors"
)

// RequireRoles allows only principals whose role is on the allow-list
// declared at route registration. An empty list admits any authenticated
// principal.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := Principal(c)
			if !ok {
				return apperrors.ErrInvalidToken
			}
			if len(allowed) == 0 {
				return next(c)
			}
			if _, ok := allowed[strings.ToLower(user.Role.Name)]; !ok {
				return apperrors.ErrAccessDenied
			}
			return next(c)
		}
	}
}
