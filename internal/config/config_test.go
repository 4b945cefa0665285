package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 30*time.Minute, c.InactivityTimeout)
	assert.Equal(t, 60*time.Second, c.InactivityCheckInterval)
	assert.Equal(t, 1*time.Second, c.RefreshDelay)
	assert.Equal(t, "campusmind.db", c.StateDBPath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.InactivityTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("CAMPUSMIND_API_URL", "http://campus.example:9000")
		t.Setenv("CAMPUSMIND_STATE_DB", "/tmp/alt.db")
		t.Setenv("CAMPUSMIND_REQUEST_TIMEOUT", "25")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://campus.example:9000", cfg.BaseURL)
		assert.Equal(t, "/tmp/alt.db", cfg.StateDBPath)
		assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid timeout leaves default", func(t *testing.T) {
		t.Setenv("CAMPUSMIND_REQUEST_TIMEOUT", "soon")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("missing variables leave defaults", func(t *testing.T) {
		t.Setenv("CAMPUSMIND_API_URL", "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	})
}
