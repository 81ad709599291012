package model

import (
	"errors"
	"strings"
	"time"
)

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingBooked    BookingStatus = "booked"
	BookingCancelled BookingStatus = "cancelled"
	BookingAttended  BookingStatus = "attended"
)

// Valid reports whether the booking status is supported.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingBooked, BookingCancelled, BookingAttended:
		return true
	default:
		return false
	}
}

// Booking links a member to an activity slot.
type Booking struct {
	ID         string        `json:"id"          db:"id"`
	MemberID   string        `json:"member_id"   db:"member_id"`
	ActivityID string        `json:"activity_id" db:"activity_id"`
	Status     BookingStatus `json:"status"      db:"status"`
	BookedAt   time.Time     `json:"booked_at"   db:"booked_at"`
	CreatedAt  time.Time     `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"  db:"updated_at"`
}

// CreateBookingRequest represents parameters to create a Booking.
type CreateBookingRequest struct {
	MemberID   string `json:"member_id"`
	ActivityID string `json:"activity_id"`
}

// Validate checks the create request for boundary errors.
func (r *CreateBookingRequest) Validate() error {
	if strings.TrimSpace(r.MemberID) == "" {
		return errors.New("member_id is required")
	}
	if strings.TrimSpace(r.ActivityID) == "" {
		return errors.New("activity_id is required")
	}
	return nil
}

// BookingsListOptions controls paging and filtering for listing bookings.
type BookingsListOptions struct {
	Limit      int
	Offset     int
	MemberID   *string
	ActivityID *string
	Status     *BookingStatus
}

// DashboardStats aggregates the counters the role dashboards render.
type DashboardStats struct {
	Members        int `json:"members"`
	ActiveMembers  int `json:"active_members"`
	Trainers       int `json:"trainers"`
	Activities     int `json:"activities"`
	ActiveBookings int `json:"active_bookings"`
}
