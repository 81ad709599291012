package oidcfetch

// Package oidcfetch revalidates bearer tokens against an OIDC userinfo
// endpoint. It is wired in when the auth backend issues OIDC access tokens
// and session resolution runs in revalidate mode.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/ports"
)

var _ ports.UserFetcher = (*Fetcher)(nil)

// Config holds configuration for the userinfo fetcher.
type Config struct {
	ClientID     string
	DiscoveryURL string
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
}

// Fetcher resolves the current user behind an access token via the provider's
// userinfo endpoint.
type Fetcher struct {
	provider   *gooidc.Provider
	httpClient *http.Client
}

// NewFetcher creates a new userinfo fetcher (single discovery fetch).
func NewFetcher(ctx context.Context, config Config) (*Fetcher, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(config.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}
	return &Fetcher{provider: provider, httpClient: httpClient}, nil
}

// userinfoClaims is the subset of userinfo claims we map onto an identity.
type userinfoClaims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Picture       string `json:"picture"`
	Role          string `json:"role"`
}

// FetchCurrentUser calls the userinfo endpoint with the given access token.
// Any rejection by the provider is returned as an error; the caller treats it
// as an invalid session.
func (f *Fetcher) FetchCurrentUser(ctx context.Context, token string) (domainauth.Identity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	info, err := f.provider.UserInfo(ctx, src)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("userinfo: %w", err)
	}

	var claims userinfoClaims
	if err := info.Claims(&claims); err != nil {
		return domainauth.Identity{}, fmt.Errorf("decode userinfo claims: %w", err)
	}

	role, ok := domainauth.ParseRole(claims.Role)
	if !ok {
		// Accounts without an explicit role claim act as members.
		role = domainauth.RoleMember
	}

	ident := domainauth.Identity{
		UserID:      info.Subject,
		DisplayName: claims.Name,
		Email:       claims.Email,
		Role:        role,
		Verified:    claims.EmailVerified,
		AvatarURL:   claims.Picture,
	}
	if ident.DisplayName == "" {
		ident.DisplayName = claims.Email
	}
	return ident, nil
}
