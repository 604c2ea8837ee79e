package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "prismtasks/internal/errors"
)

// identityContextKey is where the verified claims live on the request context.
const identityContextKey = "user"

// Middleware authenticates requests: extract a candidate token, verify it,
// and stash the typed claims on the context. Every failure mode produces the
// same 401 response.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: identityContextKey,
		TokenLookupFuncs: []middleware.ValuesExtractor{
			func(c echo.Context) ([]string, error) {
				token, ok := ExtractToken(c)
				if !ok {
					return nil, apperrors.ErrNotAuthenticated
				}
				return []string{token}, nil
			},
		},
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrNotAuthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// CurrentIdentity resolves the authenticated identity placed on the context
// by Middleware.
func CurrentIdentity(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(identityContextKey).(*Claims)
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}
	return claims, nil
}

// RequireAdmin rejects authenticated callers without the admin role. This is
// the only place a 403 is produced for role checks; ownership checks mask
// existence with 404 at the repository level instead.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := CurrentIdentity(c)
		if err != nil {
			httpErr := apperrors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if !claims.IsAdmin() {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return next(c)
	}
}
