package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gymdesk/gym-ui-api/config"
	"github.com/gymdesk/gym-ui-api/internal/adapters/mockauth"
	"github.com/gymdesk/gym-ui-api/internal/adapters/oidcfetch"
	"github.com/gymdesk/gym-ui-api/internal/adapters/pgauth"
	redisstore "github.com/gymdesk/gym-ui-api/internal/adapters/redis"
	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/notify"
	"github.com/gymdesk/gym-ui-api/internal/ports"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// AuthDeps groups dependencies for auth service construction.
type AuthDeps struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  redis.UniversalClient
	Logger *slog.Logger
	// Notifier overrides the default log sink when set.
	Notifier notify.Sink
}

// BuildAuthService wires the credential backend, session store, and optional
// OIDC revalidator selected by configuration, then resolves the initial
// session so guards never observe the pre-resolution state.
func BuildAuthService(ctx context.Context, deps AuthDeps) (*service.AuthService, error) {
	cfg := deps.Config

	var (
		verifier    ports.CredentialVerifier
		fetcher     ports.UserFetcher
		invalidator ports.TokenInvalidator
	)

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		provider := mockauth.NewProvider(mockauth.Config{Latency: cfg.Auth.Mock.Latency})
		verifier, fetcher, invalidator = provider, provider, provider
		if deps.Logger != nil {
			deps.Logger.Warn("mock auth backend active; do not use in production")
		}
	case config.AuthModeLive:
		provider := pgauth.NewProvider(pgauth.ProviderOptions{
			Users:    data.NewUserRepo(deps.DB),
			TokenTTL: cfg.Auth.TokenTTL,
		})
		verifier, fetcher, invalidator = provider, provider, provider
	default:
		return nil, fmt.Errorf("unsupported auth mode: %q", cfg.Auth.Mode)
	}

	// A configured OIDC issuer takes over current-user revalidation; login
	// and logout stay on the selected backend.
	if cfg.Auth.OIDC.Enabled() {
		oidcFetcher, err := oidcfetch.NewFetcher(ctx, oidcfetch.Config{
			ClientID:     cfg.Auth.OIDC.ClientID,
			DiscoveryURL: cfg.Auth.OIDC.DiscoveryURL,
		})
		if err != nil {
			return nil, fmt.Errorf("init oidc fetcher: %w", err)
		}
		fetcher = oidcFetcher
	}

	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.LogSink{Logger: deps.Logger}
	}

	svc := service.NewAuthService(service.AuthServiceOptions{
		Verifier:    verifier,
		Fetcher:     fetcher,
		Invalidator: invalidator,
		Store:       redisstore.NewCredentialStoreWithPrefix(deps.Redis, cfg.Redis.KeyPrefix),
		Notifier:    notifier,
		Mode:        cfg.Auth.SessionMode,
		Logger:      deps.Logger,
	})

	svc.ResolveInitialSession(ctx)
	return svc, nil
}
