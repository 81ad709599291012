package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
	"github.com/gymdesk/gym-ui-api/internal/mocks"
)

func activeMember(id string) *model.Member {
	return &model.Member{ID: id, Name: "Dana Fields", Email: "dana@example.com", Plan: model.MembershipStandard, Active: true}
}

func spinClass(id string, capacity int) *model.Activity {
	return &model.Activity{
		ID:              id,
		Name:            "Spin",
		TrainerID:       "t-1",
		Capacity:        capacity,
		StartsAt:        time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}
}

func TestBookingServiceCreate(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*BookingService, *mocks.MockBookingRepository, *mocks.MockMemberRepository, *mocks.MockActivityRepository) {
		ctrl := gomock.NewController(t)
		bookings := mocks.NewMockBookingRepository(ctrl)
		members := mocks.NewMockMemberRepository(ctrl)
		activities := mocks.NewMockActivityRepository(ctrl)
		svc := NewBookingService(BookingServiceOptions{
			BookingRepo:  bookings,
			MemberRepo:   members,
			ActivityRepo: activities,
		})
		return svc, bookings, members, activities
	}

	t.Run("books when a slot is free", func(t *testing.T) {
		svc, bookings, members, activities := newService(t)
		req := &model.CreateBookingRequest{MemberID: "m-1", ActivityID: "a-1"}

		members.EXPECT().GetByID(gomock.Any(), "m-1").Return(activeMember("m-1"), nil)
		activities.EXPECT().GetByID(gomock.Any(), "a-1").Return(spinClass("a-1", 20), nil)
		bookings.EXPECT().CountActiveByActivity(gomock.Any(), "a-1").Return(19, nil)
		bookings.EXPECT().Create(gomock.Any(), req).Return(&model.Booking{ID: "b-1", Status: model.BookingBooked}, nil)

		booking, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, model.BookingBooked, booking.Status)
	})

	t.Run("rejects when the class is full", func(t *testing.T) {
		svc, bookings, members, activities := newService(t)
		req := &model.CreateBookingRequest{MemberID: "m-1", ActivityID: "a-1"}

		members.EXPECT().GetByID(gomock.Any(), "m-1").Return(activeMember("m-1"), nil)
		activities.EXPECT().GetByID(gomock.Any(), "a-1").Return(spinClass("a-1", 20), nil)
		bookings.EXPECT().CountActiveByActivity(gomock.Any(), "a-1").Return(20, nil)

		booking, err := svc.Create(ctx, req)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrActivityFull)
	})

	t.Run("losing the last slot to a concurrent booking reads as full", func(t *testing.T) {
		svc, bookings, members, activities := newService(t)
		req := &model.CreateBookingRequest{MemberID: "m-1", ActivityID: "a-1"}

		members.EXPECT().GetByID(gomock.Any(), "m-1").Return(activeMember("m-1"), nil)
		activities.EXPECT().GetByID(gomock.Any(), "a-1").Return(spinClass("a-1", 20), nil)
		bookings.EXPECT().CountActiveByActivity(gomock.Any(), "a-1").Return(19, nil)
		bookings.EXPECT().Create(gomock.Any(), req).Return(nil, data.ErrBookingCapacity)

		booking, err := svc.Create(ctx, req)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrActivityFull)
	})

	t.Run("rejects inactive members before touching the activity", func(t *testing.T) {
		svc, _, members, _ := newService(t)
		inactive := activeMember("m-2")
		inactive.Active = false
		members.EXPECT().GetByID(gomock.Any(), "m-2").Return(inactive, nil)

		booking, err := svc.Create(ctx, &model.CreateBookingRequest{MemberID: "m-2", ActivityID: "a-1"})
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrMemberInactive)
	})

	t.Run("validation failure skips every repository", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		booking, err := svc.Create(ctx, &model.CreateBookingRequest{MemberID: "", ActivityID: "a-1"})
		assert.Nil(t, booking)
		assert.Error(t, err)
	})

	t.Run("missing activity propagates", func(t *testing.T) {
		svc, _, members, activities := newService(t)
		members.EXPECT().GetByID(gomock.Any(), "m-1").Return(activeMember("m-1"), nil)
		notFound := errors.New("activity not found")
		activities.EXPECT().GetByID(gomock.Any(), "a-gone").Return(nil, notFound)

		_, err := svc.Create(ctx, &model.CreateBookingRequest{MemberID: "m-1", ActivityID: "a-gone"})
		assert.ErrorIs(t, err, notFound)
	})
}

func TestBookingServiceSetStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockBookingRepository(ctrl)
	svc := NewBookingService(BookingServiceOptions{BookingRepo: bookings})

	t.Run("rejects unsupported status", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, "b-1", model.BookingStatus("lost"))
		assert.ErrorIs(t, err, ErrBookingBadStatus)
	})

	t.Run("cancel frees the slot", func(t *testing.T) {
		bookings.EXPECT().SetStatus(gomock.Any(), "b-1", model.BookingCancelled).
			Return(&model.Booking{ID: "b-1", Status: model.BookingCancelled}, nil)

		booking, err := svc.Cancel(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, model.BookingCancelled, booking.Status)
	})
}

func TestStatsServiceDashboard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberRepository(ctrl)
	trainers := mocks.NewMockTrainerRepository(ctrl)
	activities := mocks.NewMockActivityRepository(ctrl)
	bookings := mocks.NewMockBookingRepository(ctrl)
	svc := NewStatsService(StatsServiceOptions{
		MemberRepo:   members,
		TrainerRepo:  trainers,
		ActivityRepo: activities,
		BookingRepo:  bookings,
	})

	members.EXPECT().Count(gomock.Any(), false).Return(120, nil)
	members.EXPECT().Count(gomock.Any(), true).Return(97, nil)
	trainers.EXPECT().Count(gomock.Any()).Return(8, nil)
	activities.EXPECT().Count(gomock.Any()).Return(24, nil)
	bookings.EXPECT().CountActive(gomock.Any()).Return(310, nil)

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardStats{
		Members:        120,
		ActiveMembers:  97,
		Trainers:       8,
		Activities:     24,
		ActiveBookings: 310,
	}, stats)
}
