package core

import (
	"context"
	"time"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// MemberRepository defines the interface for member data operations.
type MemberRepository interface {
	Create(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, opts model.MembersListOptions) ([]*model.Member, error)
	Update(ctx context.Context, id string, req model.UpdateMemberRequest) (*model.Member, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, onlyActive bool) (int, error)
}

// TrainerRepository defines the interface for trainer data operations.
type TrainerRepository interface {
	Create(ctx context.Context, req *model.CreateTrainerRequest) (*model.Trainer, error)
	GetByID(ctx context.Context, id string) (*model.Trainer, error)
	List(ctx context.Context, limit, offset int) ([]*model.Trainer, error)
	Update(ctx context.Context, id string, req model.UpdateTrainerRequest) (*model.Trainer, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ActivityRepository defines the interface for activity data operations.
type ActivityRepository interface {
	Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error)
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context, opts model.ActivitiesListOptions) ([]*model.Activity, error)
	Update(ctx context.Context, id string, req model.UpdateActivityRequest) (*model.Activity, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// BookingRepository defines the interface for booking data operations.
type BookingRepository interface {
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error)
	SetStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
	CountActiveByActivity(ctx context.Context, activityID string) (int, error)
	CountActive(ctx context.Context) (int, error)
}

// UserCredentials is a stored login record; PasswordHash never leaves the data layer
// except through this struct.
type UserCredentials struct {
	Identity     domainauth.Identity
	PasswordHash string
}

// UserRepository defines the interface for login-account data operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*UserCredentials, error)
	GetByToken(ctx context.Context, token string) (*domainauth.Identity, error)
	StoreToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	DeleteToken(ctx context.Context, token string) error
}
