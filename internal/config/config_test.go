package config

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingSecretIsFatalOutsideTest(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_TestPostureSubstitutesFixedSecret(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoad_CookiePolicy(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		sameSite     string
		wantSameSite http.SameSite
		wantSecure   bool
	}{
		{
			name:         "lax in dev is not secure",
			env:          "dev",
			sameSite:     "lax",
			wantSameSite: http.SameSiteLaxMode,
			wantSecure:   false,
		},
		{
			name:         "prod forces secure",
			env:          "prod",
			sameSite:     "lax",
			wantSameSite: http.SameSiteLaxMode,
			wantSecure:   true,
		},
		{
			name:         "samesite none forces secure even in dev",
			env:          "dev",
			sameSite:     "none",
			wantSameSite: http.SameSiteNoneMode,
			wantSecure:   true,
		},
		{
			name:         "strict",
			env:          "dev",
			sameSite:     "strict",
			wantSameSite: http.SameSiteStrictMode,
			wantSecure:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", tt.env)
			t.Setenv("JWT_SECRET", "s3cr3t")
			t.Setenv("COOKIE_SAMESITE", tt.sameSite)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSameSite, cfg.CookieSameSite)
			assert.Equal(t, tt.wantSecure, cfg.SecureCookies)
		})
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
}
