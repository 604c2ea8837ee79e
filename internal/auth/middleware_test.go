package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGuardedServer(t *testing.T) (*echo.Echo, *JWTService) {
	t.Helper()
	e := echo.New()
	svc := NewJWTService("test-secret")

	protected := e.Group("", Middleware(svc))
	protected.GET("/me", func(c echo.Context) error {
		claims, err := CurrentIdentity(c)
		require.NoError(t, err)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"username": claims.Username(),
			"user_id":  claims.UserID,
			"role":     claims.Role,
		})
	})

	admin := e.Group("/admin", Middleware(svc), RequireAdmin)
	admin.GET("/todo", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e, svc
}

func TestMiddleware_Authentication(t *testing.T) {
	e, svc := setupGuardedServer(t)

	validToken, err := svc.GenerateAccessToken("alice", 7, "user")
	require.NoError(t, err)

	expired := signTestToken(t, "test-secret", &Claims{
		UserID: 7,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	tests := []struct {
		name       string
		mutate     func(*http.Request)
		wantStatus int
	}{
		{
			name:       "no token",
			mutate:     nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "garbage token",
			mutate: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			mutate: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer "+expired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token via header",
			mutate: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "valid token via cookie",
			mutate: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: validToken})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.mutate != nil {
				tt.mutate(req)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	e, svc := setupGuardedServer(t)

	userToken, err := svc.GenerateAccessToken("bob", 8, "user")
	require.NoError(t, err)
	adminToken, err := svc.GenerateAccessToken("root", 1, "admin")
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "unauthenticated is 401, not 403",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "authenticated non-admin is 403",
			token:      userToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin is allowed",
			token:      adminToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/todo", nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
