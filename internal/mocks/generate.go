// Package mocks provides mock implementations for testing the gymdesk services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockMemberRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(member, nil)
package mocks

// Generate mock for MemberRepository interface from internal/core package.
// This creates MockMemberRepository with methods for all MemberRepository interface methods:
// Create, GetByID, GetByEmail, List, Update, Delete, Count
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=member_repository_mock.go github.com/gymdesk/gym-ui-api/internal/core MemberRepository

// Generate mock for TrainerRepository interface from internal/core package.
// This creates MockTrainerRepository with methods for all TrainerRepository interface methods:
// Create, GetByID, List, Update, Delete, Count
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=trainer_repository_mock.go github.com/gymdesk/gym-ui-api/internal/core TrainerRepository

// Generate mock for ActivityRepository interface from internal/core package.
// This creates MockActivityRepository with methods for all ActivityRepository interface methods:
// Create, GetByID, List, Update, Delete, Count
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=activity_repository_mock.go github.com/gymdesk/gym-ui-api/internal/core ActivityRepository

// Generate mock for BookingRepository interface from internal/core package.
// This creates MockBookingRepository with methods for all BookingRepository interface methods:
// Create, GetByID, List, SetStatus, CountActiveByActivity, CountActive
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=booking_repository_mock.go github.com/gymdesk/gym-ui-api/internal/core BookingRepository

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// GetByEmail, GetByToken, StoreToken, DeleteToken
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/gymdesk/gym-ui-api/internal/core UserRepository
