package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, 20, cfg.TopN)
	assert.Equal(t, "<Media omitted>", cfg.MediaPlaceholder)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CHATLENS_PORT", "9090")
	t.Setenv("CHATLENS_TOP_N", "5")
	t.Setenv("CHATLENS_MEDIA_PLACEHOLDER", "<attachment>")
	t.Setenv("CHATLENS_LOG_LEVEL", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.APIPort)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "<attachment>", cfg.MediaPlaceholder)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("CHATLENS_TOP_N", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, 20, cfg.TopN)
}
