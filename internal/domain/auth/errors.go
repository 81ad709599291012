package auth

import "errors"

// Sentinel errors that cross the auth service boundary. Only these two
// propagate to callers as rejected operations; every other failure category
// (revalidation, storage parse, best-effort invalidation) is absorbed and
// degrades to a logged-out state.
var (
	// ErrInvalidInput signals a login attempt with a missing email or
	// password. No backend is contacted in this case.
	ErrInvalidInput = errors.New("email and password are required")

	// ErrAuthentication signals that credential verification rejected the
	// login. No session state is created or persisted.
	ErrAuthentication = errors.New("invalid credentials")
)
