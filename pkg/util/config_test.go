package util

import (
	"testing"
	"time"

	"github.com/hatchdotlol/passcheck/pkg/cracktime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, cracktime.DefaultGuessRate, c.GuessRate)
	assert.Equal(t, 1024, c.MaxPasswordLength)
	assert.Equal(t, int64(64<<10), c.MaxBodyBytes)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, 300*time.Millisecond, c.DebounceDelay)
	assert.Nil(t, c.LoggingWebhook)
	assert.NotZero(t, c.StartTime)
}

func TestLoadConfigOverrides(t *testing.T) {
	c, err := LoadConfig(env(map[string]string{
		"VERSION":             "1.2.3",
		"PORT":                "9000",
		"GUESS_RATE":          "1e12",
		"MAX_PASSWORD_LENGTH": "64",
		"MAX_BODY_BYTES":      "2048",
		"CORS_ORIGINS":        "https://a.example, https://b.example,",
		"LOGGING_WEBHOOK":     "https://hooks.example/abc",
		"DEBOUNCE_MS":         "150",
	}))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", c.Version)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 1e12, c.GuessRate)
	assert.Equal(t, 64, c.MaxPasswordLength)
	assert.Equal(t, int64(2048), c.MaxBodyBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
	require.NotNil(t, c.LoggingWebhook)
	assert.Equal(t, "https://hooks.example/abc", *c.LoggingWebhook)
	assert.Equal(t, 150*time.Millisecond, c.DebounceDelay)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"unparsable rate", map[string]string{"GUESS_RATE": "fast"}},
		{"zero rate", map[string]string{"GUESS_RATE": "0"}},
		{"negative rate", map[string]string{"GUESS_RATE": "-5"}},
		{"nan rate", map[string]string{"GUESS_RATE": "NaN"}},
		{"bad length", map[string]string{"MAX_PASSWORD_LENGTH": "long"}},
		{"zero length", map[string]string{"MAX_PASSWORD_LENGTH": "0"}},
		{"bad body size", map[string]string{"MAX_BODY_BYTES": "-1"}},
		{"bad port", map[string]string{"PORT": "http"}},
		{"bad webhook", map[string]string{"LOGGING_WEBHOOK": "not a url"}},
		{"empty origins", map[string]string{"CORS_ORIGINS": " , "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(env(tt.vars))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfigIgnoresBadDebounce(t *testing.T) {
	c, err := LoadConfig(env(map[string]string{"DEBOUNCE_MS": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, c.DebounceDelay)
}

func TestInitConfig(t *testing.T) {
	t.Setenv("PORT", "8181")
	t.Setenv("GUESS_RATE", "2e9")

	require.NoError(t, InitConfig())
	assert.Equal(t, "8181", Config.Port)
	assert.Equal(t, 2e9, Config.GuessRate)

	t.Setenv("GUESS_RATE", "zero")
	assert.ErrorIs(t, InitConfig(), ErrInvalidConfig)
	assert.Equal(t, 2e9, Config.GuessRate)
}
