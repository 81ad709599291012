package mockauth

// Package mockauth provides a fixture-backed auth provider for local
// development. It accepts any non-empty password for a known email and
// simulates backend latency so loading states are visible in the UI.

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/ports"
)

var (
	_ ports.CredentialVerifier = (*Provider)(nil)
	_ ports.UserFetcher        = (*Provider)(nil)
	_ ports.TokenInvalidator   = (*Provider)(nil)
)

// ErrUnknownUser is returned for an email with no fixture account.
var ErrUnknownUser = errors.New("mock auth: unknown user")

// Config controls the mock auth provider behavior.
type Config struct {
	// Latency is applied to every call. Default 150ms when zero.
	Latency time.Duration
	// Users overrides the default fixture set when non-empty.
	Users []domainauth.Identity
}

// Provider implements the auth ports against an in-memory fixture set.
type Provider struct {
	latency time.Duration

	mu     sync.Mutex
	users  map[string]domainauth.Identity // keyed by lowercase email
	tokens map[string]string              // token -> email
}

// NewProvider constructs a mock auth provider from Config.
func NewProvider(cfg Config) *Provider {
	latency := cfg.Latency
	if latency == 0 {
		latency = 150 * time.Millisecond
	}
	users := cfg.Users
	if len(users) == 0 {
		users = defaultUsers()
	}
	byEmail := make(map[string]domainauth.Identity, len(users))
	for _, u := range users {
		byEmail[strings.ToLower(u.Email)] = u
	}
	return &Provider{
		latency: latency,
		users:   byEmail,
		tokens:  make(map[string]string),
	}
}

// Verify accepts any non-empty password for a known email and issues a token.
func (p *Provider) Verify(ctx context.Context, email, password string) (ports.VerifyResult, error) {
	if err := p.sleep(ctx); err != nil {
		return ports.VerifyResult{}, err
	}
	if password == "" {
		return ports.VerifyResult{}, ErrUnknownUser
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	ident, ok := p.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return ports.VerifyResult{}, ErrUnknownUser
	}

	token := uuid.NewString()
	p.tokens[token] = strings.ToLower(ident.Email)
	return ports.VerifyResult{Identity: ident, Token: token}, nil
}

// FetchCurrentUser resolves the identity behind a token issued by Verify.
func (p *Provider) FetchCurrentUser(ctx context.Context, token string) (domainauth.Identity, error) {
	if err := p.sleep(ctx); err != nil {
		return domainauth.Identity{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	email, ok := p.tokens[token]
	if !ok {
		return domainauth.Identity{}, ErrUnknownUser
	}
	ident, ok := p.users[email]
	if !ok {
		return domainauth.Identity{}, ErrUnknownUser
	}
	return ident, nil
}

// Invalidate forgets a token. Unknown tokens are ignored.
func (p *Provider) Invalidate(ctx context.Context, token string) error {
	if err := p.sleep(ctx); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.tokens, token)
	return nil
}

func (p *Provider) sleep(ctx context.Context) error {
	if p.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(p.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// defaultUsers returns one fixture account per role plus an unverified one.
func defaultUsers() []domainauth.Identity {
	return []domainauth.Identity{
		{
			UserID:      "mock-admin",
			DisplayName: "Ada Admin",
			Email:       "admin@gymdesk.local",
			Role:        domainauth.RoleAdmin,
			Verified:    true,
		},
		{
			UserID:      "mock-trainer",
			DisplayName: "Tom Trainer",
			Email:       "trainer@gymdesk.local",
			Role:        domainauth.RoleTrainer,
			Verified:    true,
		},
		{
			UserID:      "mock-member",
			DisplayName: "Mia Member",
			Email:       "member@gymdesk.local",
			Role:        domainauth.RoleMember,
			Verified:    true,
		},
		{
			UserID:      "mock-pending",
			DisplayName: "Pat Pending",
			Email:       "pending@gymdesk.local",
			Role:        domainauth.RoleMember,
			Verified:    false,
		},
	}
}
