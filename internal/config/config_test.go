package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "portfolio_test")
	t.Setenv("AUTH_ADMIN_PASSWORD", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SERVER_BODY_LIMIT_MB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "portfolio_test", cfg.MongoDB.Database)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.Equal(t, "s3cret", cfg.Auth.AdminPassword)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, int64(2<<20), cfg.Server.BodyLimitBytes)
	require.False(t, cfg.RateLimit.Enabled)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigLegacyKeys(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("AUTH_ADMIN_PASSWORD", "")
	t.Setenv("MONGO_URI", "mongodb://legacy:27017")
	t.Setenv("ADMIN_PASSWORD", "legacy-secret")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://legacy:27017", cfg.MongoDB.URI)
	require.Equal(t, "legacy-secret", cfg.Auth.AdminPassword)
	require.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("SERVER_BODY_LIMIT_MB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.MongoDB.URI)
	require.Equal(t, "3001", cfg.Server.Port)
	require.Equal(t, int64(50<<20), cfg.Server.BodyLimitBytes)
}
