package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
	Logout(ctx context.Context) service.LogoutResult
	CurrentSession() *domainauth.Session
	Loading() bool
	LoginInProgress() bool
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Session    *domainauth.Session `json:"session,omitempty"`
	Pending    bool                `json:"pending,omitempty"`
	RedirectTo string              `json:"redirect_to,omitempty"`
}

// Login handles credential submission.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if h.Svc.LoginInProgress() {
		WriteError(w, ErrorParams{
			Code:    http.StatusConflict,
			ErrCode: "login_in_progress",
			Err:     errors.New("a login attempt is already running"),
		})
		return
	}

	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainauth.ErrInvalidInput) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_input", Err: err})
			return
		}
		h.logger().Warn("login rejected", slog.String("email", req.Email))
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
		return
	}

	if result.Pending {
		WriteJSON(w, http.StatusAccepted, loginResponse{Pending: true})
		return
	}
	WriteJSON(w, http.StatusOK, loginResponse{Session: result.Session, RedirectTo: result.RedirectTo})
}

// Logout tears down the active session.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	result := h.Svc.Logout(r.Context())
	WriteJSON(w, http.StatusOK, map[string]string{"redirect_to": result.RedirectTo})
}

// Session reports the current session state.
// GET /auth/session.
func (h *AuthHandlers) Session(w http.ResponseWriter, _ *http.Request) {
	if h.Svc.Loading() {
		w.Header().Set("Retry-After", "1")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]bool{"loading": true})
		return
	}
	sess := h.Svc.CurrentSession()
	if sess == nil {
		WriteJSON(w, http.StatusOK, map[string]any{"session": nil})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"session": sess})
}
