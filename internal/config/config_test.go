package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, ":5175", cfg.Addr())
	assert.Equal(t, 6, cfg.GameRows)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.GameTTL)
	assert.Equal(t, 14*24*time.Hour, cfg.TokenTTL())
	assert.False(t, cfg.Production())
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"PORT":             "8080",
		"GAME_ROWS":        "8",
		"REQUEST_TIMEOUT":  "3s",
		"GAME_TTL":         "30m",
		"LOG_FORMAT":       "console",
		"APP_ENV":          "production",
		"JWT_SECRET":       "real",
		"JWT_EXPIRES_DAYS": "1",
	}})
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 8, cfg.GameRows)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.GameTTL)
	assert.True(t, cfg.Production())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad int":           {"GAME_ROWS": "six"},
		"zero rows":         {"GAME_ROWS": "0"},
		"bad format":        {"LOG_FORMAT": "xml"},
		"prod dev secret":   {"APP_ENV": "production"},
		"negative lifetime": {"JWT_EXPIRES_DAYS": "-1"},
		"zero game ttl":     {"GAME_TTL": "0s"},
	}
	for name, envs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(env.Options{Environment: envs})
			assert.Error(t, err)
		})
	}
}
