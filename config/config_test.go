package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "todolistdb", cfg.DB.Name)
	assert.Equal(t, "admin", cfg.DB.Username)
	assert.Equal(t, "admin123", cfg.DB.Password)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 30, cfg.DB.MaxRetry)
	assert.Equal(t, 2, cfg.DB.RetryWaitTime)
	assert.Equal(t, 3, cfg.DB.ConnectTimeout)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, config.EnvDevelopment, cfg.Server.Env)
	assert.False(t, cfg.IsTesting())
	assert.False(t, cfg.App.RateLimiter.Enable)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "tasks")
	t.Setenv("DB_USER", "todo")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_MAX_RETRY", "5")
	t.Setenv("SERVER_ENV", "testing")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "tasks", cfg.DB.Name)
	assert.Equal(t, "todo", cfg.DB.Username)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, 5, cfg.DB.MaxRetry)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsTesting())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORS.AllowedOrigins)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_RETRY", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ReturnsIndependentInstances(t *testing.T) {
	first, err := config.Load()
	require.NoError(t, err)

	second, err := config.Load()
	require.NoError(t, err)

	first.DB.Host = "changed"
	assert.Equal(t, "localhost", second.DB.Host)
}
