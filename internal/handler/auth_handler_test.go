package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prismtasks/internal/auth"
	apperrors "prismtasks/internal/errors"
	"prismtasks/internal/model"
	"prismtasks/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params service.RegisterParams) (*model.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func testCookieOpts() auth.CookieOptions {
	return auth.NewCookieOptions(http.SameSiteLaxMode, false)
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
	}{
		{
			name: "successful registration",
			body: `{"username":"alice","email":"alice@example.com","first_name":"Alice","last_name":"Smith","password":"SecurePassword123!"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterParams")).
					Return(&model.User{ID: 1, Username: "alice", Role: model.RoleUser}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","email":"alice@example.com","first_name":"Alice","last_name":"Smith","password":"SecurePassword123!"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterParams")).
					Return(nil, apperrors.ErrUserExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "weak password",
			body: `{"username":"alice","email":"alice@example.com","first_name":"Alice","last_name":"Smith","password":"weak1234"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterParams")).
					Return(nil, apperrors.NewValidationError("password", "password must contain at least one special character"))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing required fields",
			body:       `{"username":"alice"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)

			e := newTestEcho()
			h := NewAuthHandler(mockService, testCookieOpts())
			e.POST("/auth/", h.Register)

			req := httptest.NewRequest(http.MethodPost, "/auth/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login returns token and sets cookie", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "alice", "SecurePassword123!").
			Return("signed-token", &model.User{ID: 1, Username: "alice"}, nil)

		e := newTestEcho()
		h := NewAuthHandler(mockService, testCookieOpts())
		e.POST("/auth/token", h.Login)

		form := url.Values{}
		form.Set("username", "alice")
		form.Set("password", "SecurePassword123!")
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed-token")
		assert.Contains(t, rec.Body.String(), "bearer")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.AccessTokenCookie, cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		mockService.AssertExpectations(t)
	})

	t.Run("wrong credentials are 401", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "alice", "WrongPassword1!").
			Return("", nil, apperrors.ErrInvalidCredentials)

		e := newTestEcho()
		h := NewAuthHandler(mockService, testCookieOpts())
		e.POST("/auth/token", h.Login)

		form := url.Values{}
		form.Set("username", "alice")
		form.Set("password", "WrongPassword1!")
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(new(MockAuthService), testCookieOpts())
	e.POST("/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
