package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "crudmongo", cfg.Mongo.Database)
	assert.False(t, cfg.Cache.Enabled)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "POSTGRES")
	t.Setenv("STORE_TIMEOUT", "750ms")
	t.Setenv("API_PREFIX", "/v2/")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:4200, https://app.example.com")
	t.Setenv("ENABLE_CACHE", "true")
	t.Setenv("CACHE_TTL", "garbage")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 750*time.Millisecond, cfg.Store.Timeout)
	assert.Equal(t, "/v2", cfg.APIPrefix)
	assert.Equal(t, []string{"http://localhost:4200", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRequiresDriverSettings(t *testing.T) {
	cfg := &Config{
		Env:       EnvDevelopment,
		Port:      8080,
		APIPrefix: "/api",
		Store:     StoreConfig{Driver: DriverMongo, Timeout: time.Second},
		Log:       LogConfig{Format: "json"},
	}
	require.Error(t, cfg.Validate())

	cfg.Mongo = MongoConfig{URI: "mongodb://localhost:27017", Database: "crudmongo"}
	require.NoError(t, cfg.Validate())

	cfg.Store.Driver = DriverMemory
	cfg.Mongo = MongoConfig{}
	require.NoError(t, cfg.Validate())
}

func TestLoadRootAPIPrefix(t *testing.T) {
	t.Setenv("API_PREFIX", "/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.APIPrefix)
}
