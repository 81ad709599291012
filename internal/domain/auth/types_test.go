package auth

import "testing"

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleMember, RoleTrainer, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	if Role("owner").Valid() {
		t.Fatalf("did not expect unknown role to be valid")
	}
	if Role("").Valid() {
		t.Fatalf("did not expect empty role to be valid")
	}
}

func TestRole_HomePath(t *testing.T) {
	cases := map[Role]string{
		RoleMember:   "/member",
		RoleTrainer:  "/trainer",
		RoleAdmin:    "/admin",
		Role("ghost"): LoginPath,
	}
	for role, want := range cases {
		if got := role.HomePath(); got != want {
			t.Fatalf("HomePath(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if role, ok := ParseRole("  Trainer "); !ok || role != RoleTrainer {
		t.Fatalf("unexpected parse result: %q %v", role, ok)
	}
	if _, ok := ParseRole("superuser"); ok {
		t.Fatalf("did not expect unknown role to parse")
	}
}

func TestNewSession_CopiesIdentity(t *testing.T) {
	ident := Identity{
		UserID:      "u-1",
		DisplayName: "Jamie Fox",
		Email:       "jamie@example.com",
		Role:        RoleMember,
		Verified:    true,
		AvatarURL:   "https://cdn.example.com/a.png",
	}
	sess := NewSession(ident, "tok-1")
	if sess.UserID != "u-1" || sess.Email != "jamie@example.com" || sess.Token != "tok-1" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if !sess.IsVerified() {
		t.Fatalf("expected verified session")
	}
	if (Session{Verified: false}).IsVerified() {
		t.Fatalf("did not expect unverified session to report verified")
	}
}
