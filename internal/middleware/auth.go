// Package middleware implements the two-stage access guard chain:
// authentication (token verification + principal resolution) followed by
// role-based authorization.
package middleware

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/service"
)

const principalKey = "principal"

// Principal returns the authenticated user attached by one of the token
// guards.
func Principal(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(principalKey).(*model.User)
	return user, ok
}

// AccessTokenGuard authenticates requests carrying a bearer access token and
// attaches the resolved principal.
func AccessTokenGuard(jwtService *auth.JWTService, authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  principalKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.VerifyAccessToken(token)
			if err != nil {
				return nil, err
			}
			return authService.ValidateAccessToken(c.Request().Context(), claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrInvalidToken
		},
	})
}

// RefreshTokenGuard authenticates requests carrying the httpOnly refresh
// token cookie, checking the presented token against the stored hash.
func RefreshTokenGuard(jwtService *auth.JWTService, authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  principalKey,
		TokenLookup: "cookie:" + RefreshTokenCookie,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.VerifyRefreshToken(token)
			if err != nil {
				return nil, err
			}
			return authService.ValidateRefreshToken(c.Request().Context(), claims, token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrInvalidToken
		},
	})
}

// RefreshTokenCookie is the name of the httpOnly cookie carrying the refresh
// token.
const RefreshTokenCookie = "refreshToken"
