package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    AuthMode
		expectError bool
	}{
		{input: "live", expected: AuthModeLive},
		{input: "MOCK", expected: AuthModeMock},
		{input: "oauth", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestSessionMode_UnmarshalText(t *testing.T) {
	var mode SessionMode
	require.NoError(t, mode.UnmarshalText([]byte("Revalidate")))
	assert.Equal(t, SessionModeRevalidate, mode)

	assert.Error(t, mode.UnmarshalText([]byte("always")))
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, AuthModeLive, cfg.Auth.Mode)
	assert.Equal(t, SessionModeRevalidate, cfg.Auth.SessionMode)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "gymdesk:", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.IsDev)
}

func TestAuthConfig_Sanitize(t *testing.T) {
	t.Run("mock mode without oidc forces trust", func(t *testing.T) {
		cfg := AuthConfig{Mode: AuthModeMock, SessionMode: SessionModeRevalidate}
		cfg.Sanitize()
		assert.Equal(t, SessionModeTrust, cfg.SessionMode)
	})

	t.Run("mock mode with oidc keeps revalidate", func(t *testing.T) {
		cfg := AuthConfig{
			Mode:        AuthModeMock,
			SessionMode: SessionModeRevalidate,
			OIDC:        OIDCConfig{DiscoveryURL: "https://sso.example.com", ClientID: "gymdesk"},
		}
		cfg.Sanitize()
		assert.Equal(t, SessionModeRevalidate, cfg.SessionMode)
	})

	t.Run("non-positive ttl gets default", func(t *testing.T) {
		cfg := AuthConfig{Mode: AuthModeLive, TokenTTL: -time.Minute}
		cfg.Sanitize()
		assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	})
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{}
	cfg.Sanitize()
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGrace)
}
