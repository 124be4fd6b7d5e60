package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 30, cfg.CookieExpireDays)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRE_DAYS", "7")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("JWT_EXPIRE_DAYS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 30*24*time.Hour, cfg.JWTExpiry)
}
