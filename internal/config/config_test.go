package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptIntDefaults(t *testing.T) {
	assert.Equal(t, 86400, optInt("TOKEN_TTL_SECONDS", 86400))

	t.Setenv("TOKEN_TTL_SECONDS", "3600")
	assert.Equal(t, 3600, optInt("TOKEN_TTL_SECONDS", 86400))
}

func TestOptBool(t *testing.T) {
	assert.False(t, optBool("VERIFY_EXPIRY_ON_LOOKUP", false))

	t.Setenv("VERIFY_EXPIRY_ON_LOOKUP", "true")
	assert.True(t, optBool("VERIFY_EXPIRY_ON_LOOKUP", false))

	t.Setenv("VERIFY_EXPIRY_ON_LOOKUP", "nonsense")
	assert.False(t, optBool("VERIFY_EXPIRY_ON_LOOKUP", false))
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache", cfg.Prefix)
}
