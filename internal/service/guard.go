package service

import (
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/notify"
)

// AccessStatus is the outcome of an access evaluation.
type AccessStatus string

const (
	// StatusLoading means initial session resolution has not finished;
	// callers show a neutral waiting state and decide nothing yet.
	StatusLoading AccessStatus = "loading"
	// StatusUnauthenticated means no usable session exists.
	StatusUnauthenticated AccessStatus = "unauthenticated"
	// StatusUnverified means a session exists but its account has not been
	// verified; outwardly identical to unauthenticated, reported distinctly.
	StatusUnverified AccessStatus = "unverified"
	// StatusWrongRole means the session's role is not in the required set.
	StatusWrongRole AccessStatus = "wrong_role"
	// StatusAuthorized means the view may render.
	StatusAuthorized AccessStatus = "authorized"
)

// AccessDecision is the guard's verdict for one evaluation. It is a plain
// value: evaluating the same inputs again yields the same decision, and any
// notice is carried inside rather than emitted, so repeated evaluation cannot
// duplicate side effects.
type AccessDecision struct {
	Status     AccessStatus
	Session    *domainauth.Session
	RedirectTo string
	Notice     *notify.Notice
}

// Allowed reports whether the guarded view may render.
func (d AccessDecision) Allowed() bool { return d.Status == StatusAuthorized }

// Decide evaluates the access rules for a session against a required role set.
//
// Rules, in order: still loading → no decision; no session → login; session
// unverified → login with a pending-verification notice; empty role set →
// authorized; role not in set → redirect to the session's own home with a
// no-permission notice; otherwise authorized.
func Decide(sess *domainauth.Session, loading bool, required []domainauth.Role) AccessDecision {
	if loading {
		return AccessDecision{Status: StatusLoading}
	}
	if sess == nil {
		return AccessDecision{
			Status:     StatusUnauthenticated,
			RedirectTo: domainauth.LoginPath,
		}
	}
	if !sess.IsVerified() {
		return AccessDecision{
			Status:     StatusUnverified,
			Session:    sess,
			RedirectTo: domainauth.LoginPath,
			Notice:     &notify.Notice{Kind: notify.KindInfo, Message: "Your account is pending verification."},
		}
	}
	if len(required) == 0 {
		return AccessDecision{Status: StatusAuthorized, Session: sess}
	}
	for _, role := range required {
		if sess.Role == role {
			return AccessDecision{Status: StatusAuthorized, Session: sess}
		}
	}
	return AccessDecision{
		Status:     StatusWrongRole,
		Session:    sess,
		RedirectTo: sess.Role.HomePath(),
		Notice:     &notify.Notice{Kind: notify.KindError, Message: "You do not have permission to view this page."},
	}
}
