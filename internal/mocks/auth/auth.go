package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/notify"
	"github.com/gymdesk/gym-ui-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialVerifier = (*StubVerifier)(nil)
	_ ports.UserFetcher        = (*StubFetcher)(nil)
	_ ports.TokenInvalidator   = (*RecordingInvalidator)(nil)
	_ ports.CredentialStore    = (*MemoryCredentialStore)(nil)
	_ notify.Sink              = (*RecordingSink)(nil)
)

// StubVerifier returns a canned verification result or error.
type StubVerifier struct {
	Result ports.VerifyResult
	Err    error

	Calls int
}

// Verify implements ports.CredentialVerifier.
func (v *StubVerifier) Verify(_ context.Context, _, _ string) (ports.VerifyResult, error) {
	v.Calls++
	if v.Err != nil {
		return ports.VerifyResult{}, v.Err
	}
	return v.Result, nil
}

// StubFetcher returns a canned current-user identity or error.
type StubFetcher struct {
	Identity domainauth.Identity
	Err      error

	Calls     int
	LastToken string
}

// FetchCurrentUser implements ports.UserFetcher.
func (f *StubFetcher) FetchCurrentUser(_ context.Context, token string) (domainauth.Identity, error) {
	f.Calls++
	f.LastToken = token
	if f.Err != nil {
		return domainauth.Identity{}, f.Err
	}
	return f.Identity, nil
}

// RecordingInvalidator records invalidated tokens and optionally fails.
type RecordingInvalidator struct {
	Err    error
	Tokens []string
}

// Invalidate implements ports.TokenInvalidator.
func (i *RecordingInvalidator) Invalidate(_ context.Context, token string) error {
	i.Tokens = append(i.Tokens, token)
	return i.Err
}

// MemoryCredentialStore is an in-memory single-slot credential store.
// RawValue lets tests plant an unparseable blob: when set, Load reports
// absence, mirroring the production store's treatment of malformed JSON.
type MemoryCredentialStore struct {
	mu       sync.Mutex
	sess     *domainauth.Session
	RawValue string

	SaveErr  error
	LoadErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

// Save implements ports.CredentialStore.
func (s *MemoryCredentialStore) Save(_ context.Context, sess domainauth.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.sess = &sess
	s.RawValue = ""
	return nil
}

// Load implements ports.CredentialStore.
func (s *MemoryCredentialStore) Load(_ context.Context) (domainauth.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return domainauth.Session{}, false, s.LoadErr
	}
	if s.RawValue != "" {
		// Unparseable slot: absent, not an error.
		return domainauth.Session{}, false, nil
	}
	if s.sess == nil {
		return domainauth.Session{}, false, nil
	}
	return *s.sess, true, nil
}

// Clear implements ports.CredentialStore.
func (s *MemoryCredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClearCalls++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.sess = nil
	s.RawValue = ""
	return nil
}

// Stored returns the stored session, if any.
func (s *MemoryCredentialStore) Stored() (domainauth.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return domainauth.Session{}, false
	}
	return *s.sess, true
}

// Empty reports whether the store holds nothing.
func (s *MemoryCredentialStore) Empty() bool {
	_, ok := s.Stored()
	return !ok && s.RawValue == ""
}

// RecordingSink collects emitted notices in order.
type RecordingSink struct {
	mu      sync.Mutex
	Notices []notify.Notice
}

// Notify implements notify.Sink.
func (r *RecordingSink) Notify(_ context.Context, n notify.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, n)
}

// Last returns the most recent notice.
func (r *RecordingSink) Last() (notify.Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Notices) == 0 {
		return notify.Notice{}, false
	}
	return r.Notices[len(r.Notices)-1], true
}

// ErrRejected is a convenience rejection error for verifier stubs.
var ErrRejected = errors.New("credentials rejected")
