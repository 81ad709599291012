package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "strings"

// Role represents an application's authorization role.
// Keep string form for easy persistence and JSON payloads.
// Valid values are defined as constants below.
type Role string

const (
	RoleMember  Role = "member"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the supported application roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleTrainer, RoleAdmin:
		return true
	default:
		return false
	}
}

// HomePath returns the role's landing path, e.g. "/member" for members.
// Unknown roles land on the login path so they never reach a dashboard.
func (r Role) HomePath() string {
	if !r.Valid() {
		return LoginPath
	}
	return "/" + string(r)
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// LoginPath is where unauthenticated and unverified users are sent.
const LoginPath = "/login"

// Identity represents the principal returned by a credential verifier or
// a current-user lookup. Adapters map backend-specific payloads into this
// shape at the boundary instead of passing loose JSON through.
type Identity struct {
	UserID      string
	DisplayName string
	Email       string
	Role        Role
	Verified    bool
	AvatarURL   string
}

// Session is the single record we persist for the authenticated UI client.
// Token is an opaque bearer credential: the client only echoes it back on
// outbound calls and never inspects it.
type Session struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Verified    bool   `json:"verified"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Token       string `json:"token"`
}

// NewSession builds a session from a verified identity and an issued token.
// Role is fixed here for the session's lifetime; a role change requires a
// fresh login.
func NewSession(ident Identity, token string) Session {
	return Session{
		UserID:      ident.UserID,
		DisplayName: ident.DisplayName,
		Email:       ident.Email,
		Role:        ident.Role,
		Verified:    ident.Verified,
		AvatarURL:   ident.AvatarURL,
		Token:       token,
	}
}

// IsVerified reports whether the session belongs to a verified account.
// An unverified session is functionally equivalent to "logged out" for
// access-control purposes even while it remains in storage.
func (s Session) IsVerified() bool { return s.Verified }
