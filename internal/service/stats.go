package service

import (
	"context"
	"fmt"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// StatsServiceOptions groups dependencies for StatsService.
type StatsServiceOptions struct {
	MemberRepo   core.MemberRepository
	TrainerRepo  core.TrainerRepository
	ActivityRepo core.ActivityRepository
	BookingRepo  core.BookingRepository
}

// StatsService aggregates the counters shown on the admin dashboard.
type StatsService struct {
	members    core.MemberRepository
	trainers   core.TrainerRepository
	activities core.ActivityRepository
	bookings   core.BookingRepository
}

// NewStatsService constructs a new StatsService.
func NewStatsService(opts StatsServiceOptions) *StatsService {
	return &StatsService{
		members:    opts.MemberRepo,
		trainers:   opts.TrainerRepo,
		activities: opts.ActivityRepo,
		bookings:   opts.BookingRepo,
	}
}

// Dashboard collects all counters. Counts run sequentially; the dashboard is
// low-traffic and the queries are cheap index scans.
func (s *StatsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	var err error
	if stats.Members, err = s.members.Count(ctx, false); err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	if stats.ActiveMembers, err = s.members.Count(ctx, true); err != nil {
		return nil, fmt.Errorf("count active members: %w", err)
	}
	if stats.Trainers, err = s.trainers.Count(ctx); err != nil {
		return nil, fmt.Errorf("count trainers: %w", err)
	}
	if stats.Activities, err = s.activities.Count(ctx); err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}
	if stats.ActiveBookings, err = s.bookings.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	return stats, nil
}
