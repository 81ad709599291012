package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Members    *service.MemberService
	Trainers   *service.TrainerService
	Activities *service.ActivityService
	Bookings   *service.BookingService
	Stats      *service.StatsService
	Logger     *slog.Logger // Logger for request logging and panic recovery (optional)
}

// NewRouter creates and configures the HTTP router.
//
// Role policy: admin manages members and trainers, staff (trainer or admin)
// manage the schedule and attendance, and any authenticated session can read
// the schedule and work with bookings. Booking handlers additionally scope
// member sessions to their own records.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	memberHandlers := &MemberHandlers{Svc: services.Members}
	trainerHandlers := &TrainerHandlers{Svc: services.Trainers}
	activityHandlers := &ActivityHandlers{Svc: services.Activities}
	bookingHandlers := &BookingHandlers{Svc: services.Bookings, Members: services.Members}
	statsHandlers := &StatsHandlers{Svc: services.Stats}
	authHandlers := &AuthHandlers{Svc: services.Auth, Logger: services.Logger}

	guard := services.Auth
	adminOnly := RequireRoles(guard, domainauth.RoleAdmin)
	staffOnly := RequireRoles(guard, domainauth.RoleTrainer, domainauth.RoleAdmin)
	anySession := RequireAuth(guard)

	registerMemberRoutes(mux, memberHandlers, adminOnly, staffOnly)
	registerTrainerRoutes(mux, trainerHandlers, adminOnly, anySession)
	registerActivityRoutes(mux, activityHandlers, staffOnly, anySession)
	registerBookingRoutes(mux, bookingHandlers, staffOnly, anySession)
	mux.Handle("GET /api/stats/dashboard", staffOnly(http.HandlerFunc(statsHandlers.Dashboard)))

	registerAuthRoutes(mux, authHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

type middleware = func(http.Handler) http.Handler

// crudRoutes describes the five conventional handlers for a resource.
// Write and Read may carry different role requirements.
type crudRoutes struct {
	Base    string
	Create  http.HandlerFunc
	List    http.HandlerFunc
	GetByID http.HandlerFunc
	Update  http.HandlerFunc
	Delete  http.HandlerFunc
	Write   middleware
	Read    middleware
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(mw middleware, h http.HandlerFunc) http.Handler {
		if mw != nil {
			return mw(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Write, cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.Read, cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.Read, cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Write, cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Write, cfg.Delete))
}

func registerMemberRoutes(mux *http.ServeMux, h *MemberHandlers, write, read middleware) {
	registerCRUD(mux, crudRoutes{
		Base:    "/api/members",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
		Write:   write,
		Read:    read,
	})
}

func registerTrainerRoutes(mux *http.ServeMux, h *TrainerHandlers, write, read middleware) {
	registerCRUD(mux, crudRoutes{
		Base:    "/api/trainers",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
		Write:   write,
		Read:    read,
	})
}

func registerActivityRoutes(mux *http.ServeMux, h *ActivityHandlers, write, read middleware) {
	registerCRUD(mux, crudRoutes{
		Base:    "/api/activities",
		Create:  h.Create,
		List:    h.List,
		GetByID: h.GetByID,
		Update:  h.Update,
		Delete:  h.Delete,
		Write:   write,
		Read:    read,
	})
}

func registerBookingRoutes(mux *http.ServeMux, h *BookingHandlers, staff, any middleware) {
	mux.Handle("POST /api/bookings", any(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/bookings", any(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/bookings/{id}", any(http.HandlerFunc(h.GetByID)))
	mux.Handle("POST /api/bookings/{id}/cancel", any(http.HandlerFunc(h.Cancel)))
	mux.Handle("PUT /api/bookings/{id}/status", staff(http.HandlerFunc(h.SetStatus)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/session", h.Session)
}
