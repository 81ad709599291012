package model

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxMemberNameLen = 255
	maxPhoneLen      = 32
)

// MembershipPlan is the commercial tier a member is signed up for.
type MembershipPlan string

const (
	MembershipBasic    MembershipPlan = "basic"
	MembershipStandard MembershipPlan = "standard"
	MembershipPremium  MembershipPlan = "premium"
)

// Valid reports whether the membership plan is supported.
func (p MembershipPlan) Valid() bool {
	switch p {
	case MembershipBasic, MembershipStandard, MembershipPremium:
		return true
	default:
		return false
	}
}

// ParseMembershipPlan normalizes a plan string and reports whether it is supported.
func ParseMembershipPlan(value string) (MembershipPlan, bool) {
	plan := MembershipPlan(strings.ToLower(strings.TrimSpace(value)))
	if plan.Valid() {
		return plan, true
	}
	return "", false
}

// Member represents a gym member record.
type Member struct {
	ID        string         `json:"id"                   db:"id"`
	Name      string         `json:"name"                 db:"name"`
	Email     string         `json:"email"                db:"email"`
	Phone     *string        `json:"phone,omitempty"      db:"phone"`
	Plan      MembershipPlan `json:"plan"                 db:"plan"`
	Active    bool           `json:"active"               db:"active"`
	JoinedAt  time.Time      `json:"joined_at"            db:"joined_at"`
	CreatedAt time.Time      `json:"created_at"           db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"           db:"updated_at"`
}

// CreateMemberRequest represents parameters to create a Member.
type CreateMemberRequest struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Phone  *string        `json:"phone,omitempty"`
	Plan   MembershipPlan `json:"plan,omitempty"`
	Active *bool          `json:"active,omitempty"`
}

// Validate checks the create request for boundary errors before it reaches storage.
func (r *CreateMemberRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("member name is required")
	}
	if utf8.RuneCountInString(name) > maxMemberNameLen {
		return errors.New("member name exceeds maximum length")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Plan != "" && !r.Plan.Valid() {
		return errors.New("invalid membership plan")
	}
	if r.Phone != nil && utf8.RuneCountInString(*r.Phone) > maxPhoneLen {
		return errors.New("phone exceeds maximum length")
	}
	return nil
}

// UpdateMemberRequest represents a partial update; nil fields are left unchanged.
type UpdateMemberRequest struct {
	Name   *string         `json:"name,omitempty"`
	Email  *string         `json:"email,omitempty"`
	Phone  *string         `json:"phone,omitempty"`
	Plan   *MembershipPlan `json:"plan,omitempty"`
	Active *bool           `json:"active,omitempty"`
}

// Validate checks the update request for boundary errors.
func (r *UpdateMemberRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("member name cannot be empty")
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Plan != nil && !r.Plan.Valid() {
		return errors.New("invalid membership plan")
	}
	if r.Phone != nil && utf8.RuneCountInString(*r.Phone) > maxPhoneLen {
		return errors.New("phone exceeds maximum length")
	}
	return nil
}

// MembersListOptions controls paging and filtering for listing members.
// Q matches name or email via ILIKE substring; Active and Plan match exactly.
type MembersListOptions struct {
	Limit  int
	Offset int
	Q      *string
	Active *bool
	Plan   *MembershipPlan
}

func validateEmail(value string) error {
	addr := strings.TrimSpace(value)
	if addr == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return errors.New("email is not a valid address")
	}
	return nil
}
