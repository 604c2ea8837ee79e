package config

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// testSecret is only ever used when ENV=test so CI can run without secrets.
const testSecret = "test-secret"

// ErrMissingSecret is returned when JWT_SECRET is unset outside the test posture.
var ErrMissingSecret = errors.New("JWT_SECRET environment variable is not set")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	Env            string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	CookieSameSite http.SameSite
	SecureCookies  bool
	CORSOrigins    []string
}

// Load builds Config from environment, reading a .env file when present.
// The signing secret is mandatory; only ENV=test substitutes a fixed secret
// so the suite can run without operational config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "dev")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if env != "test" {
			return nil, ErrMissingSecret
		}
		secret = testSecret
	}

	sameSite := parseSameSite(getEnv("COOKIE_SAMESITE", "lax"))

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Env:            env,
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/prismtasks?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      secret,
		CookieSameSite: sameSite,
		// Browsers reject SameSite=None cookies without Secure.
		SecureCookies: env == "prod" || sameSite == http.SameSiteNoneMode,
		CORSOrigins:   splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}, nil
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}

func splitOrigins(v string) []string {
	parts := strings.Split(v, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
