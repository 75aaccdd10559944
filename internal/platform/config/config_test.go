package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SUPABASE_JWT_SECRET", "secret")
	t.Setenv("GOOGLE_API_TIMEOUT", "not-a-duration")
	t.Setenv("PAGE_BODY_HEIGHT", "-5")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.SupabaseJWTSecret)
	assert.Equal(t, 30*time.Second, cfg.GoogleAPITimeout)
	assert.Equal(t, defaultPageBodyHeight, cfg.PageBodyHeight)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "300-M", cfg.RateLimit)
}
