package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// Member repository sentinels.
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberEmailExists = errors.New("member email already exists")

	// Trainer repository sentinels.
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrTrainerEmailExists = errors.New("trainer email already exists")

	// Activity repository sentinels.
	ErrActivityNotFound    = errors.New("activity not found")
	ErrActivityTrainerGone = errors.New("activity references unknown trainer")
	ErrActivityHasBookings = errors.New("activity has active bookings")

	// Booking repository sentinels.
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingDuplicate = errors.New("member already booked for activity")
	ErrBookingCapacity  = errors.New("activity is at capacity")

	// User repository sentinels.
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenNotFound = errors.New("token not found")
)
