package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
)

// VerifyResult carries the verified identity and the bearer token issued for it.
type VerifyResult struct {
	Identity domainauth.Identity
	Token    string
}

// CredentialVerifier checks an email/password pair against a user backend and
// issues an opaque token on success. Rejections are reported as errors; the
// caller maps them onto its own taxonomy.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (VerifyResult, error)
}

// UserFetcher resolves the current user behind a previously issued token.
// Used only when session resolution runs in revalidate mode.
type UserFetcher interface {
	FetchCurrentUser(ctx context.Context, token string) (domainauth.Identity, error)
}

// TokenInvalidator revokes an issued token on logout. Calls are best-effort:
// the auth service logs failures and proceeds with the local logout.
type TokenInvalidator interface {
	Invalidate(ctx context.Context, token string) error
}

// CredentialStore persists the single active session. Save overwrites any
// prior record; Load reports absence (not an error) for both a missing slot
// and an unparseable one; Clear is idempotent.
type CredentialStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Load(ctx context.Context) (domainauth.Session, bool, error)
	Clear(ctx context.Context) error
}
