package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramAPIToken)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "assets/contenido.json", cfg.Content.Source)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout)
	assert.Equal(t, "69696969", cfg.Cheat.Secret)
	assert.Equal(t, 400*time.Millisecond, cfg.UI.FeedbackDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.UI.PromptDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.ToastDuration)
	assert.Equal(t, 2*time.Second, cfg.UI.ConfettiDuration)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "test-token")
	t.Setenv("CHEAT_SECRET", "otra")
	t.Setenv("CONTENT_SOURCE", "http://localhost:5173/contenido.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "otra", cfg.Cheat.Secret)
	assert.Equal(t, "http://localhost:5173/contenido.json", cfg.Content.Source)
}
