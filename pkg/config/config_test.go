package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()
	assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	assert.Equal(t, TokenStoreFile, cfg.TokenStore)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.TokenPath)
}

func TestFlagsThenEnv(t *testing.T) {
	t.Run("flags override defaults", func(t *testing.T) {
		cfg := defaults()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		cfg.updateFromFlags(fs, []string{"-api", "http://api.local/api", "-token-store", "memory", "-timeout", "3s"})

		assert.Equal(t, "http://api.local/api", cfg.APIURL)
		assert.Equal(t, TokenStoreMemory, cfg.TokenStore)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})

	t.Run("env overrides flags", func(t *testing.T) {
		t.Setenv("API_URL", "http://env.local/api")
		t.Setenv("TOKEN_STORE", "redis")
		t.Setenv("REQUEST_TIMEOUT", "500ms")
		t.Setenv("LOG_LEVEL", "error")

		cfg := defaults()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		cfg.updateFromFlags(fs, []string{"-api", "http://api.local/api"})
		cfg.updateFromEnv()

		assert.Equal(t, "http://env.local/api", cfg.APIURL)
		assert.Equal(t, TokenStoreRedis, cfg.TokenStore)
		assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("bad timeout in env is ignored", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		cfg := defaults()
		cfg.updateFromEnv()
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})
}
