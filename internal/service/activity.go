package service

import (
	"context"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// ActivityServiceOptions groups dependencies for ActivityService.
type ActivityServiceOptions struct {
	ActivityRepo core.ActivityRepository
	TrainerRepo  core.TrainerRepository
}

// ActivityService orchestrates activity CRUD. The trainer repository is
// consulted so a class is never created against a trainer that does not exist.
type ActivityService struct {
	activities core.ActivityRepository
	trainers   core.TrainerRepository
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(opts ActivityServiceOptions) *ActivityService {
	return &ActivityService{activities: opts.ActivityRepo, trainers: opts.TrainerRepo}
}

// Create validates the request, checks the trainer exists, and creates the activity.
func (s *ActivityService) Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.trainers != nil {
		if _, err := s.trainers.GetByID(ctx, req.TrainerID); err != nil {
			return nil, err
		}
	}
	return s.activities.Create(ctx, req)
}

// GetByID retrieves an activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

// List returns a page of activities using normalized options.
func (s *ActivityService) List(ctx context.Context, opts model.ActivitiesListOptions) ([]*model.Activity, error) {
	return s.activities.List(ctx, normalizeActivityListOptions(opts))
}

// Update validates and applies a partial update.
func (s *ActivityService) Update(ctx context.Context, id string, req model.UpdateActivityRequest) (*model.Activity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.trainers != nil && req.TrainerID != nil {
		if _, err := s.trainers.GetByID(ctx, *req.TrainerID); err != nil {
			return nil, err
		}
	}
	return s.activities.Update(ctx, id, req)
}

// Delete removes an activity. Returns false when no such activity exists.
func (s *ActivityService) Delete(ctx context.Context, id string) (bool, error) {
	return s.activities.Delete(ctx, id)
}

func normalizeActivityListOptions(opts model.ActivitiesListOptions) model.ActivitiesListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
