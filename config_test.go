package harvest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("HARVEST_URI", "https://example.harvestapp.com")
	t.Setenv("HARVEST_EMAIL", "user@example.com")
	t.Setenv("HARVEST_PASSWORD", "secret")
	t.Setenv("HARVEST_AUTH_IN_HEADER", "false")
	t.Setenv("HARVEST_RATE_LIMIT", "6.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.harvestapp.com", cfg.URI)
	assert.Equal(t, "user@example.com", cfg.Email)
	assert.Equal(t, "secret", cfg.Password)
	assert.False(t, cfg.AuthInHeader)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 6.5, cfg.RateLimit)
	assert.Equal(t, 1, cfg.RateBurst)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HARVEST_URI", "https://example.harvestapp.com")
	t.Setenv("HARVEST_EMAIL", "user@example.com")
	t.Setenv("HARVEST_PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.AuthInHeader)
	assert.Zero(t, cfg.RateLimit)
	assert.Len(t, cfg.Options(), 2)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("HARVEST_URI", "https://example.harvestapp.com")
	t.Setenv("HARVEST_EMAIL", "")
	t.Setenv("HARVEST_PASSWORD", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestLoadConfig_BadDuration(t *testing.T) {
	t.Setenv("HARVEST_URI", "https://example.harvestapp.com")
	t.Setenv("HARVEST_EMAIL", "user@example.com")
	t.Setenv("HARVEST_PASSWORD", "secret")
	t.Setenv("HARVEST_TIMEOUT", "forever")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{URI: "https://example.harvestapp.com", Email: "a", Password: "b"}, false},
		{"bad uri", Config{URI: "not a url", Email: "a", Password: "b"}, true},
		{"missing email", Config{URI: "https://example.harvestapp.com", Password: "b"}, true},
		{"negative rate", Config{URI: "https://example.harvestapp.com", Email: "a", Password: "b", RateLimit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := &Config{
		URI:          "https://example.harvestapp.com",
		Email:        "user@example.com",
		Password:     "secret",
		AuthInHeader: true,
		Timeout:      5 * time.Second,
		RateLimit:    2,
		RateBurst:    4,
	}

	client, err := NewFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "https://example.harvestapp.com", client.URI())
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Len(t, cfg.Options(), 3)
}

func TestNewFromConfig_InvalidURI(t *testing.T) {
	_, err := NewFromConfig(&Config{URI: "not a url"})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
