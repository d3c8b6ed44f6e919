package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_GOOGLE_JWT_SECRET", "rahasia")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "lapor-in", cfg.MongoDatabase)
	assert.Equal(t, "reviews", cfg.ReviewCollection)
	assert.Equal(t, "stats", cfg.StatsCollection)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	require.Len(t, cfg.JWTConfigs, 1)
	assert.Equal(t, "lapor-in-auth", cfg.JWTConfigs[0].Issuer)
	assert.Equal(t, []byte("rahasia"), cfg.JWTConfigs[0].Secret)
	assert.Empty(t, cfg.JWTAudience)
	require.NotNil(t, cfg.ServerLog)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_GOOGLE_JWT_SECRET", "rahasia")
	t.Setenv("AUTH_GOOGLE_JWT_ISSUER", "penerbit-kustom")
	t.Setenv("AUTH_JWT_AUDIENCE", "lapor-in-landing")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "lapor-in-staging")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "30s")
	t.Setenv("API_ALLOWED_ORIGINS", "https://lapor-in.id, https://staging.lapor-in.id")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "lapor-in-staging", cfg.MongoDatabase)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "penerbit-kustom", cfg.JWTConfigs[0].Issuer)
	assert.Equal(t, "lapor-in-landing", cfg.JWTAudience)
	assert.Equal(t, []string{"https://lapor-in.id", "https://staging.lapor-in.id"}, cfg.AllowedOrigins)
}

func TestLoadAudienceFallback(t *testing.T) {
	t.Setenv("AUTH_GOOGLE_JWT_SECRET", "rahasia")
	t.Setenv("AUTH_GOOGLE_JWT_AUDIENCE", "audiens-lama")

	cfg := Load()

	assert.Equal(t, "audiens-lama", cfg.JWTAudience)
}

func TestParseList(t *testing.T) {
	t.Setenv("TEST_LIST", " a , ,b ")
	assert.Equal(t, []string{"a", "b"}, parseList("TEST_LIST", []string{"fallback"}))

	t.Setenv("TEST_LIST", " , ")
	assert.Equal(t, []string{"fallback"}, parseList("TEST_LIST", []string{"fallback"}))

	assert.Equal(t, []string{"fallback"}, parseList("TEST_LIST_UNSET", []string{"fallback"}))
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "nilai")
	assert.Equal(t, "nilai", envOrDefault("TEST_ENV_KEY", "default"))
	assert.Equal(t, "default", envOrDefault("TEST_ENV_KEY_UNSET", "default"))
}
