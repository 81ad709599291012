package service

import (
	"context"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// TrainerServiceOptions groups dependencies for TrainerService.
type TrainerServiceOptions struct {
	TrainerRepo core.TrainerRepository
}

// TrainerService orchestrates trainer CRUD.
type TrainerService struct {
	trainers core.TrainerRepository
}

// NewTrainerService constructs a new TrainerService.
func NewTrainerService(opts TrainerServiceOptions) *TrainerService {
	return &TrainerService{trainers: opts.TrainerRepo}
}

// Create validates and creates a trainer.
func (s *TrainerService) Create(ctx context.Context, req *model.CreateTrainerRequest) (*model.Trainer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.trainers.Create(ctx, req)
}

// GetByID retrieves a trainer by ID.
func (s *TrainerService) GetByID(ctx context.Context, id string) (*model.Trainer, error) {
	return s.trainers.GetByID(ctx, id)
}

// List returns a page of trainers.
func (s *TrainerService) List(ctx context.Context, limit, offset int) ([]*model.Trainer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.trainers.List(ctx, limit, offset)
}

// Update validates and applies a partial update.
func (s *TrainerService) Update(ctx context.Context, id string, req model.UpdateTrainerRequest) (*model.Trainer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.trainers.Update(ctx, id, req)
}

// Delete removes a trainer. Returns false when no such trainer exists.
func (s *TrainerService) Delete(ctx context.Context, id string) (bool, error) {
	return s.trainers.Delete(ctx, id)
}
