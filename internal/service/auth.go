package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gymdesk/gym-ui-api/config"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/notify"
	"github.com/gymdesk/gym-ui-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Verifier    ports.CredentialVerifier
	Fetcher     ports.UserFetcher // required in revalidate mode
	Invalidator ports.TokenInvalidator
	Store       ports.CredentialStore
	Notifier    notify.Sink
	Mode        config.SessionMode
	Logger      *slog.Logger
}

// AuthService owns the single active session and every transition on it:
// initial resolution, login, logout, and access decisions. Only this service
// writes the session; the guard and handlers read it.
type AuthService struct {
	verifier    ports.CredentialVerifier
	fetcher     ports.UserFetcher
	invalidator ports.TokenInvalidator
	store       ports.CredentialStore
	notifier    notify.Sink
	mode        config.SessionMode
	logger      *slog.Logger

	mu         sync.RWMutex
	current    *domainauth.Session
	loading    bool
	inProgress bool

	resolveOnce sync.Once
}

// NewAuthService constructs a new AuthService. The service starts in the
// loading state; no access decision is issued until ResolveInitialSession
// has run.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		verifier:    opts.Verifier,
		fetcher:     opts.Fetcher,
		invalidator: opts.Invalidator,
		store:       opts.Store,
		notifier:    opts.Notifier,
		mode:        opts.Mode,
		logger:      logger,
		loading:     true,
	}
}

// CurrentSession returns the active session, or nil when logged out.
func (s *AuthService) CurrentSession() *domainauth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// Loading reports whether initial session resolution is still pending.
func (s *AuthService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LoginInProgress reports whether a login call is currently running.
// Callers use it to disable resubmission.
func (s *AuthService) LoginInProgress() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inProgress
}

// ResolveInitialSession establishes the in-memory session from the credential
// store before any protected view renders. It never returns an error: every
// failure during resolution degrades to "no session" (fail closed). The
// loading flag flips to false exactly once, on the first completed call.
func (s *AuthService) ResolveInitialSession(ctx context.Context) *domainauth.Session {
	defer s.resolveOnce.Do(func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	})

	stored, ok, err := s.store.Load(ctx)
	if err != nil {
		// Store I/O trouble is not a reason to trust or invent a session.
		s.logger.WarnContext(ctx, "session load failed, starting logged out", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	if s.mode == config.SessionModeTrust || s.fetcher == nil {
		s.setCurrent(&stored)
		return s.CurrentSession()
	}

	ident, err := s.fetcher.FetchCurrentUser(ctx, stored.Token)
	if err != nil {
		s.logger.WarnContext(ctx, "stored session revalidation failed, discarding", "error", err)
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.WarnContext(ctx, "credential store clear failed", "error", clearErr)
		}
		return nil
	}

	// Fresh attributes win; the locally stored token is kept as issued.
	merged := domainauth.NewSession(ident, stored.Token)
	s.setCurrent(&merged)
	return s.CurrentSession()
}

// LoginResult is the outcome of a successful or pending login call.
type LoginResult struct {
	// Session is nil when Pending is true.
	Session *domainauth.Session
	// Pending marks the distinguished non-error, non-session outcome for
	// accounts that have not completed verification yet.
	Pending bool
	// RedirectTo is the path the caller should navigate to.
	RedirectTo string
}

// Login verifies credentials and establishes the session. Exactly three exits:
// an error (invalid input or rejected credentials), a pending-verification
// result without a session, or a session with a role-derived redirect. The
// in-progress flag is cleared on every one of them.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domainauth.ErrInvalidInput
	}

	s.setInProgress(true)
	defer s.setInProgress(false)

	result, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		s.logger.WarnContext(ctx, "credential verification rejected", "email", email)
		notify.Error(ctx, s.notifier, "Invalid email or password.")
		return nil, fmt.Errorf("verify credentials: %w", domainauth.ErrAuthentication)
	}

	if !result.Identity.Verified {
		// No session is created for unverified accounts; the record stays
		// on the backend until verification completes.
		notify.Info(ctx, s.notifier, "Your account is pending verification.")
		return &LoginResult{Pending: true}, nil
	}

	sess := domainauth.NewSession(result.Identity, result.Token)

	// Persist before publishing so the store and memory are never visible
	// out of order to guard evaluations.
	if saveErr := s.store.Save(ctx, sess); saveErr != nil {
		s.logger.ErrorContext(ctx, "persist session failed", "error", saveErr)
		notify.Error(ctx, s.notifier, "Login failed, please try again.")
		return nil, fmt.Errorf("persist session: %w", domainauth.ErrAuthentication)
	}
	s.setCurrent(&sess)

	notify.Success(ctx, s.notifier, "Welcome back, "+sess.DisplayName+"!")
	return &LoginResult{Session: s.CurrentSession(), RedirectTo: sess.Role.HomePath()}, nil
}

// LogoutResult carries the navigation signal after logout.
type LogoutResult struct {
	RedirectTo string
}

// Logout tears the session down unconditionally. The backend invalidation is
// best-effort; local state and storage are cleared even when it fails, and
// calling Logout with no active session is a no-op that still clears storage.
func (s *AuthService) Logout(ctx context.Context) LogoutResult {
	if cur := s.CurrentSession(); cur != nil && s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, cur.Token); err != nil {
			s.logger.WarnContext(ctx, "token invalidation failed", "error", err)
		}
	}

	s.setCurrent(nil)
	if err := s.store.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "credential store clear failed", "error", err)
	}

	return LogoutResult{RedirectTo: domainauth.LoginPath}
}

// EvaluateAccess decides whether the current session may enter a view that
// requires one of the given roles. An empty role set only requires an
// authenticated, verified session.
func (s *AuthService) EvaluateAccess(required ...domainauth.Role) AccessDecision {
	return Decide(s.CurrentSession(), s.Loading(), required)
}

// AccessForToken is the request-scoped guard: it decides access for the bearer
// token presented on an HTTP call. A token that does not match the active
// session is treated as unauthenticated.
func (s *AuthService) AccessForToken(token string, required ...domainauth.Role) AccessDecision {
	sess := s.CurrentSession()
	if sess == nil || token == "" || sess.Token != token {
		return Decide(nil, s.Loading(), required)
	}
	return Decide(sess, s.Loading(), required)
}

func (s *AuthService) setCurrent(sess *domainauth.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sess
}

func (s *AuthService) setInProgress(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inProgress = v
}
