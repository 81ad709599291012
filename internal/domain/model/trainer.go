package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTrainerNameLen = 255
	maxSpecialtyLen   = 128
	maxBioLen         = 2000
)

// Trainer represents a staff trainer who runs activities.
type Trainer struct {
	ID        string    `json:"id"                  db:"id"`
	Name      string    `json:"name"                db:"name"`
	Email     string    `json:"email"               db:"email"`
	Specialty string    `json:"specialty"           db:"specialty"`
	Bio       *string   `json:"bio,omitempty"       db:"bio"`
	CreatedAt time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"          db:"updated_at"`
}

// CreateTrainerRequest represents parameters to create a Trainer.
type CreateTrainerRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Specialty string  `json:"specialty"`
	Bio       *string `json:"bio,omitempty"`
}

// Validate checks the create request for boundary errors.
func (r *CreateTrainerRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("trainer name is required")
	}
	if utf8.RuneCountInString(name) > maxTrainerNameLen {
		return errors.New("trainer name exceeds maximum length")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Specialty)) > maxSpecialtyLen {
		return errors.New("specialty exceeds maximum length")
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxBioLen {
		return errors.New("bio exceeds maximum length")
	}
	return nil
}

// UpdateTrainerRequest represents a partial update; nil fields are left unchanged.
type UpdateTrainerRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// Validate checks the update request for boundary errors.
func (r *UpdateTrainerRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("trainer name cannot be empty")
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Specialty != nil && utf8.RuneCountInString(*r.Specialty) > maxSpecialtyLen {
		return errors.New("specialty exceeds maximum length")
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxBioLen {
		return errors.New("bio exceeds maximum length")
	}
	return nil
}
