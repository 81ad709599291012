package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// Booking service sentinels.
var (
	ErrActivityFull      = errors.New("activity is fully booked")
	ErrMemberInactive    = errors.New("member is not active")
	ErrBookingBadStatus  = errors.New("unsupported booking status")
	ErrBookingNotAllowed = errors.New("members may only manage their own bookings")
)

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	BookingRepo  core.BookingRepository
	MemberRepo   core.MemberRepository
	ActivityRepo core.ActivityRepository
}

// BookingService orchestrates booking creation against class capacity and
// membership state.
type BookingService struct {
	bookings   core.BookingRepository
	members    core.MemberRepository
	activities core.ActivityRepository
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		bookings:   opts.BookingRepo,
		members:    opts.MemberRepo,
		activities: opts.ActivityRepo,
	}
}

// Create validates the request, checks the member is active and the activity
// has a free slot, then books. The capacity check counts only bookings still
// in the booked state.
func (s *BookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	member, err := s.members.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}
	if !member.Active {
		return nil, ErrMemberInactive
	}

	activity, err := s.activities.GetByID(ctx, req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("resolve activity: %w", err)
	}

	taken, err := s.bookings.CountActiveByActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if taken >= activity.Capacity {
		return nil, ErrActivityFull
	}

	booking, err := s.bookings.Create(ctx, req)
	if err != nil {
		// The repository re-checks capacity under a row lock; a concurrent
		// booking can fill the last slot between our count and the insert.
		if errors.Is(err, data.ErrBookingCapacity) {
			return nil, ErrActivityFull
		}
		return nil, err
	}
	return booking, nil
}

// GetByID retrieves a booking by ID.
func (s *BookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// List returns a page of bookings using normalized options.
func (s *BookingService) List(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return s.bookings.List(ctx, opts)
}

// Cancel moves a booking to the cancelled state, freeing its slot.
func (s *BookingService) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	return s.bookings.SetStatus(ctx, id, model.BookingCancelled)
}

// SetStatus transitions a booking to the given status.
func (s *BookingService) SetStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	if !status.Valid() {
		return nil, ErrBookingBadStatus
	}
	return s.bookings.SetStatus(ctx, id, status)
}
