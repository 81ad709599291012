package pgauth

// Package pgauth implements the auth ports against the users and auth_tokens
// tables, with bcrypt password verification.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/data"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/ports"
)

var (
	_ ports.CredentialVerifier = (*Provider)(nil)
	_ ports.UserFetcher        = (*Provider)(nil)
	_ ports.TokenInvalidator   = (*Provider)(nil)
)

// ErrBadCredentials covers both unknown email and wrong password so callers
// cannot distinguish the two.
var ErrBadCredentials = errors.New("bad credentials")

// ProviderOptions groups dependencies for Provider.
type ProviderOptions struct {
	Users    core.UserRepository
	TokenTTL time.Duration // default 12h when zero
}

// Provider verifies credentials against stored bcrypt hashes and manages
// issued tokens through the user repository.
type Provider struct {
	users    core.UserRepository
	tokenTTL time.Duration
}

// NewProvider constructs a new Provider.
func NewProvider(opts ProviderOptions) *Provider {
	ttl := opts.TokenTTL
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	return &Provider{users: opts.Users, tokenTTL: ttl}
}

// Verify checks the password hash and issues a fresh token on success.
func (p *Provider) Verify(ctx context.Context, email, password string) (ports.VerifyResult, error) {
	creds, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return ports.VerifyResult{}, ErrBadCredentials
		}
		return ports.VerifyResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return ports.VerifyResult{}, ErrBadCredentials
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(p.tokenTTL)
	if err := p.users.StoreToken(ctx, creds.Identity.UserID, token, expiresAt); err != nil {
		return ports.VerifyResult{}, fmt.Errorf("store token: %w", err)
	}

	return ports.VerifyResult{Identity: creds.Identity, Token: token}, nil
}

// FetchCurrentUser resolves the identity behind an unexpired token.
func (p *Provider) FetchCurrentUser(ctx context.Context, token string) (domainauth.Identity, error) {
	ident, err := p.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, data.ErrTokenNotFound) {
			return domainauth.Identity{}, ErrBadCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("lookup token: %w", err)
	}
	return *ident, nil
}

// Invalidate revokes a token.
func (p *Provider) Invalidate(ctx context.Context, token string) error {
	return p.users.DeleteToken(ctx, token)
}

// HashPassword produces a bcrypt hash for seeding and account creation.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
