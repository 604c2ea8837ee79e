package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the name of the cookie carrying the access token.
const AccessTokenCookie = "access_token"

// CookieOptions is the single source of truth for access-token cookie
// attributes. Issuance and clearing must use the same value: a browser only
// removes a cookie when path, same-site, and secure attributes match the ones
// it was set with.
type CookieOptions struct {
	Path     string
	SameSite http.SameSite
	Secure   bool
	HTTPOnly bool
}

// NewCookieOptions builds cookie attributes from deployment config.
// SameSite=None without Secure is rejected by browsers, so Secure is forced.
func NewCookieOptions(sameSite http.SameSite, secure bool) CookieOptions {
	if sameSite == http.SameSiteNoneMode {
		secure = true
	}
	return CookieOptions{
		Path:     "/",
		SameSite: sameSite,
		Secure:   secure,
		HTTPOnly: true,
	}
}

// ExtractToken returns the candidate bearer token from the request: the
// Authorization header takes precedence, the access token cookie is the
// fallback. A missing token is a normal unauthenticated outcome, not an
// error.
func ExtractToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		if token := strings.TrimSpace(header[7:]); token != "" {
			return token, true
		}
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// SetAccessCookie attaches the access token to the response as a cookie
// scoped by opts. Its lifetime matches the token's.
func SetAccessCookie(c echo.Context, token string, opts CookieOptions) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     opts.Path,
		MaxAge:   int(AccessTokenExpiry.Seconds()),
		SameSite: opts.SameSite,
		Secure:   opts.Secure,
		HttpOnly: opts.HTTPOnly,
	})
}

// ClearAccessCookie expires the access token cookie using the exact
// attributes it was set with.
func ClearAccessCookie(c echo.Context, opts CookieOptions) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		SameSite: opts.SameSite,
		Secure:   opts.Secure,
		HttpOnly: opts.HTTPOnly,
	})
}
