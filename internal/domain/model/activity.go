package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxActivityNameLen = 255
	maxDescriptionLen  = 2000
	// maxActivityCapacity caps a single class size to something a gym floor can hold.
	maxActivityCapacity = 500
	maxDurationMinutes  = 24 * 60
)

// Activity represents a scheduled class (spin, yoga, crossfit, ...).
type Activity struct {
	ID              string    `json:"id"                    db:"id"`
	Name            string    `json:"name"                  db:"name"`
	Description     *string   `json:"description,omitempty" db:"description"`
	TrainerID       string    `json:"trainer_id"            db:"trainer_id"`
	Capacity        int       `json:"capacity"              db:"capacity"`
	StartsAt        time.Time `json:"starts_at"             db:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"      db:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"            db:"updated_at"`
}

// CreateActivityRequest represents parameters to create an Activity.
type CreateActivityRequest struct {
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	TrainerID       string    `json:"trainer_id"`
	Capacity        int       `json:"capacity"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Validate checks the create request for boundary errors.
func (r *CreateActivityRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("activity name is required")
	}
	if utf8.RuneCountInString(name) > maxActivityNameLen {
		return errors.New("activity name exceeds maximum length")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return errors.New("description exceeds maximum length")
	}
	if strings.TrimSpace(r.TrainerID) == "" {
		return errors.New("trainer_id is required")
	}
	if r.Capacity <= 0 || r.Capacity > maxActivityCapacity {
		return errors.New("capacity must be between 1 and 500")
	}
	if r.StartsAt.IsZero() {
		return errors.New("starts_at is required")
	}
	if r.DurationMinutes <= 0 || r.DurationMinutes > maxDurationMinutes {
		return errors.New("duration_minutes must be between 1 and 1440")
	}
	return nil
}

// UpdateActivityRequest represents a partial update; nil fields are left unchanged.
type UpdateActivityRequest struct {
	Name            *string    `json:"name,omitempty"`
	Description     *string    `json:"description,omitempty"`
	TrainerID       *string    `json:"trainer_id,omitempty"`
	Capacity        *int       `json:"capacity,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// Validate checks the update request for boundary errors.
func (r *UpdateActivityRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("activity name cannot be empty")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return errors.New("description exceeds maximum length")
	}
	if r.TrainerID != nil && strings.TrimSpace(*r.TrainerID) == "" {
		return errors.New("trainer_id cannot be empty")
	}
	if r.Capacity != nil && (*r.Capacity <= 0 || *r.Capacity > maxActivityCapacity) {
		return errors.New("capacity must be between 1 and 500")
	}
	if r.DurationMinutes != nil && (*r.DurationMinutes <= 0 || *r.DurationMinutes > maxDurationMinutes) {
		return errors.New("duration_minutes must be between 1 and 1440")
	}
	return nil
}

// ActivitiesListOptions controls paging and filtering for listing activities.
type ActivitiesListOptions struct {
	Limit     int
	Offset    int
	TrainerID *string
	From      *time.Time // only activities starting at or after From
}
