package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode selects which credential backend verifies logins.
type AuthMode string

const (
	// AuthModeLive verifies credentials against the application database.
	AuthModeLive AuthMode = "live"
	// AuthModeMock uses the fixed in-memory lookup table (for development only;
	// any non-empty password is accepted).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "live", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: live, mock)", v)
	}
}

// SessionMode selects how a stored session is treated at startup.
type SessionMode string

const (
	// SessionModeTrust accepts the stored session record as-is.
	SessionModeTrust SessionMode = "trust"
	// SessionModeRevalidate re-checks the stored token against the current-user
	// lookup; any failure discards the session (fail closed).
	SessionModeRevalidate SessionMode = "revalidate"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionMode.
func (s *SessionMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "trust", "revalidate":
		*s = SessionMode(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionMode: %q (valid options: trust, revalidate)", v)
	}
}

// MockAuthConfig controls the mock credential backend.
// Used when AUTH_MODE=mock for development and testing.
type MockAuthConfig struct {
	// Latency is the simulated network delay applied to each mock call.
	Latency time.Duration `env:"LATENCY" envDefault:"150ms"`
}

// OIDCConfig configures the optional OIDC userinfo revalidator, for
// deployments where the gym SSO issues the bearer token.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// Enabled reports whether the OIDC revalidator is fully configured.
func (c OIDCConfig) Enabled() bool {
	return c.DiscoveryURL != "" && c.ClientID != ""
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which credential backend verifies logins.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"live"`

	// SessionMode determines whether stored sessions are trusted or
	// revalidated at startup.
	SessionMode SessionMode `env:"SESSION_MODE" envDefault:"revalidate"`

	// TokenTTL bounds how long an issued bearer token stays valid.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"12h"`

	// Mock backend configuration (used when Mode=mock).
	Mock MockAuthConfig `envPrefix:"MOCK_AUTH_"`

	// OIDC revalidator configuration (optional, revalidate mode only).
	OIDC OIDCConfig `envPrefix:"OIDC_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 12 * time.Hour
	}
	if a.Mock.Latency < 0 {
		a.Mock.Latency = 0
	}
	// Mock logins without revalidation targets must trust the stored record.
	if a.Mode == AuthModeMock && !a.OIDC.Enabled() {
		a.SessionMode = SessionModeTrust
	}
}
