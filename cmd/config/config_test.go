package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("UPLOAD_MAX_SIZE", "")

	cfg := Load()

	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, "token", cfg.Auth.CookieName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("SESSION_EXPIRATION", "2h")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionExpTime)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db",
		Port:     3306,
		User:     "app",
		Password: "secret",
		Name:     "gadgetfix",
	}}

	assert.Equal(t, "app:secret@tcp(db:3306)/gadgetfix?charset=utf8mb4&parseTime=true&loc=UTC", cfg.GetDSN())
}
