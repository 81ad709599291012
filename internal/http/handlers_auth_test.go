package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gym-ui-api/config"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	authmocks "github.com/gymdesk/gym-ui-api/internal/mocks/auth"
	"github.com/gymdesk/gym-ui-api/internal/ports"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

type authHandlerFixture struct {
	svc      *service.AuthService
	verifier *authmocks.StubVerifier
	store    *authmocks.MemoryCredentialStore
	handlers *AuthHandlers
}

func newAuthHandlerFixture(resolve bool) *authHandlerFixture {
	verifier := &authmocks.StubVerifier{Result: ports.VerifyResult{
		Identity: domainauth.Identity{
			UserID:      "u-7",
			DisplayName: "Ada Admin",
			Email:       "ada@example.com",
			Role:        domainauth.RoleAdmin,
			Verified:    true,
		},
		Token: "tok-login",
	}}
	store := &authmocks.MemoryCredentialStore{}
	svc := service.NewAuthService(service.AuthServiceOptions{
		Verifier:    verifier,
		Invalidator: &authmocks.RecordingInvalidator{},
		Store:       store,
		Notifier:    &authmocks.RecordingSink{},
		Mode:        config.SessionModeTrust,
	})
	if resolve {
		svc.ResolveInitialSession(context.Background())
	}
	return &authHandlerFixture{
		svc:      svc,
		verifier: verifier,
		store:    store,
		handlers: &AuthHandlers{Svc: svc},
	}
}

func postLogin(t *testing.T, h *AuthHandlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestAuthLoginSuccess(t *testing.T) {
	fix := newAuthHandlerFixture(true)

	rec := postLogin(t, fix.handlers, `{"email":"ada@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Session)
	assert.Equal(t, "ada@example.com", resp.Session.Email)
	assert.Equal(t, "/admin", resp.RedirectTo)
	assert.False(t, resp.Pending)

	// The session was persisted before being returned.
	assert.Equal(t, 1, fix.store.SaveCalls)
}

func TestAuthLoginBadCredentials(t *testing.T) {
	fix := newAuthHandlerFixture(true)
	fix.verifier.Err = authmocks.ErrRejected

	rec := postLogin(t, fix.handlers, `{"email":"ada@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
	assert.Nil(t, fix.svc.CurrentSession())
}

func TestAuthLoginEmptyEmail(t *testing.T) {
	fix := newAuthHandlerFixture(true)

	rec := postLogin(t, fix.handlers, `{"email":"","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_input")
	assert.Zero(t, fix.verifier.Calls)
}

func TestAuthLoginMalformedBody(t *testing.T) {
	fix := newAuthHandlerFixture(true)

	rec := postLogin(t, fix.handlers, `{"email": nope`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fix.verifier.Calls)
}

func TestAuthLoginPendingVerification(t *testing.T) {
	fix := newAuthHandlerFixture(true)
	fix.verifier.Result.Identity.Verified = false

	rec := postLogin(t, fix.handlers, `{"email":"ada@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Pending)
	assert.Nil(t, resp.Session)
	assert.Nil(t, fix.svc.CurrentSession())
}

func TestAuthLogout(t *testing.T) {
	fix := newAuthHandlerFixture(true)
	postLogin(t, fix.handlers, `{"email":"ada@example.com","password":"pw"}`)
	require.NotNil(t, fix.svc.CurrentSession())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	fix.handlers.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domainauth.LoginPath)
	assert.Nil(t, fix.svc.CurrentSession())
	assert.True(t, fix.store.Empty())
}

func TestAuthSessionWhileLoading(t *testing.T) {
	fix := newAuthHandlerFixture(false)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	fix.handlers.Session(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"loading":true`)
}

func TestAuthSessionLoggedOut(t *testing.T) {
	fix := newAuthHandlerFixture(true)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	fix.handlers.Session(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"session":null`)
}

func TestAuthSessionActive(t *testing.T) {
	fix := newAuthHandlerFixture(true)
	postLogin(t, fix.handlers, `{"email":"ada@example.com","password":"pw"}`)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	fix.handlers.Session(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}
