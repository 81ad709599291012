package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// GuardService is the subset of the auth service the middleware needs.
type GuardService interface {
	AccessForToken(token string, required ...domainauth.Role) service.AccessDecision
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles returns a middleware that lets through only sessions holding
// one of the given roles. An empty role set only requires a verified session.
// The guard decision maps onto HTTP: no session is 401, wrong role is 403,
// and the decision's redirect target is included so the client can navigate.
func RequireRoles(guard GuardService, roles ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := guard.AccessForToken(BearerToken(r), roles...)
			switch decision.Status {
			case service.StatusAuthorized:
				ctx := SetSessionInContext(r.Context(), decision.Session)
				next.ServeHTTP(w, r.WithContext(ctx))
			case service.StatusLoading:
				w.Header().Set("Retry-After", "1")
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "session_resolving",
					Err:     errors.New("session resolution in progress"),
				})
			case service.StatusWrongRole:
				WriteJSON(w, http.StatusForbidden, accessErrorBody(decision, "insufficient_permissions"))
			default:
				WriteJSON(w, http.StatusUnauthorized, accessErrorBody(decision, "authentication_required"))
			}
		})
	}
}

// RequireAuth returns a middleware that requires any verified session.
func RequireAuth(guard GuardService) func(http.Handler) http.Handler {
	return RequireRoles(guard)
}

func accessErrorBody(decision service.AccessDecision, code string) map[string]any {
	body := map[string]any{
		"error":       code,
		"redirect_to": decision.RedirectTo,
	}
	if decision.Notice != nil {
		body["notice"] = decision.Notice
	}
	return body
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent or malformed.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
