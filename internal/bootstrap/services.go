package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gymdesk/gym-ui-api/config"
	"github.com/gymdesk/gym-ui-api/internal/data"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Members    *service.MemberService
	Trainers   *service.TrainerService
	Activities *service.ActivityService
	Bookings   *service.BookingService
	Stats      *service.StatsService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
	Auth        *service.AuthService
}

// InitServices builds the repositories and wires the service layer.
func InitServices(deps ServiceDeps) ServiceContainer {
	memberRepo := data.NewMemberRepo(deps.DB)
	trainerRepo := data.NewTrainerRepo(deps.DB)
	activityRepo := data.NewActivityRepo(deps.DB)
	bookingRepo := data.NewBookingRepo(deps.DB)

	return ServiceContainer{
		Auth:     deps.Auth,
		Members:  service.NewMemberService(service.MemberServiceOptions{MemberRepo: memberRepo}),
		Trainers: service.NewTrainerService(service.TrainerServiceOptions{TrainerRepo: trainerRepo}),
		Activities: service.NewActivityService(service.ActivityServiceOptions{
			ActivityRepo: activityRepo,
			TrainerRepo:  trainerRepo,
		}),
		Bookings: service.NewBookingService(service.BookingServiceOptions{
			BookingRepo:  bookingRepo,
			MemberRepo:   memberRepo,
			ActivityRepo: activityRepo,
		}),
		Stats: service.NewStatsService(service.StatsServiceOptions{
			MemberRepo:   memberRepo,
			TrainerRepo:  trainerRepo,
			ActivityRepo: activityRepo,
			BookingRepo:  bookingRepo,
		}),
	}
}
