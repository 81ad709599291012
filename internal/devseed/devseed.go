// Package devseed loads development fixtures: login accounts, a trainer
// roster, members, and a week of classes. It is idempotent and only runs
// when seeding is enabled in development mode.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gymdesk/gym-ui-api/internal/adapters/pgauth"
	"github.com/gymdesk/gym-ui-api/internal/data"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

// Options groups the seeder's dependencies.
type Options struct {
	DB     *sql.DB
	Logger *slog.Logger
}

type seedUser struct {
	ident    domainauth.Identity
	password string
}

type seedTrainer struct {
	req        model.CreateTrainerRequest
	activities []model.CreateActivityRequest
}

// Run loads the fixtures. Existing records are refreshed (users) or left in
// place (trainers, members, activities).
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := seedUsers(ctx, opts.DB); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedGym(ctx, opts.DB, logger); err != nil {
		return fmt.Errorf("seed gym fixtures: %w", err)
	}

	logger.InfoContext(ctx, "development fixtures loaded")
	return nil
}

func seedUsers(ctx context.Context, db *sql.DB) error {
	users := []seedUser{
		{
			ident: domainauth.Identity{
				DisplayName: "Ada Admin",
				Email:       "admin@gymdesk.local",
				Role:        domainauth.RoleAdmin,
				Verified:    true,
			},
			password: "admin123",
		},
		{
			ident: domainauth.Identity{
				DisplayName: "Tom Trainer",
				Email:       "trainer@gymdesk.local",
				Role:        domainauth.RoleTrainer,
				Verified:    true,
			},
			password: "trainer123",
		},
		{
			ident: domainauth.Identity{
				DisplayName: "Mia Member",
				Email:       "member@gymdesk.local",
				Role:        domainauth.RoleMember,
				Verified:    true,
			},
			password: "member123",
		},
		{
			ident: domainauth.Identity{
				DisplayName: "Pat Pending",
				Email:       "pending@gymdesk.local",
				Role:        domainauth.RoleMember,
				Verified:    false,
			},
			password: "pending123",
		},
	}

	repo := data.NewUserRepo(db)
	for _, u := range users {
		hash, err := pgauth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.ident.Email, err)
		}
		if err := repo.UpsertUser(ctx, u.ident, hash); err != nil {
			return err
		}
	}
	return nil
}

func seedGym(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	trainers := data.NewTrainerRepo(db)
	members := data.NewMemberRepo(db)
	activities := data.NewActivityRepo(db)

	// Class times are relative to the next morning so the schedule always
	// shows upcoming entries in development.
	base := time.Now().UTC().Truncate(24 * time.Hour).Add(32 * time.Hour)

	roster := []seedTrainer{
		{
			req: model.CreateTrainerRequest{
				Name:      "Tom Trainer",
				Email:     "trainer@gymdesk.local",
				Specialty: "Spinning",
			},
			activities: []model.CreateActivityRequest{
				{Name: "Morning Spin", Capacity: 20, StartsAt: base, DurationMinutes: 45},
				{Name: "Evening Spin", Capacity: 20, StartsAt: base.Add(10 * time.Hour), DurationMinutes: 45},
			},
		},
		{
			req: model.CreateTrainerRequest{
				Name:      "Yara Yoga",
				Email:     "yara@gymdesk.local",
				Specialty: "Yoga",
			},
			activities: []model.CreateActivityRequest{
				{Name: "Sunrise Yoga", Capacity: 15, StartsAt: base.Add(24 * time.Hour), DurationMinutes: 60},
			},
		},
	}

	for _, entry := range roster {
		trainer, err := trainers.Create(ctx, &entry.req)
		if err != nil {
			if errors.Is(err, data.ErrTrainerEmailExists) {
				// Already seeded on an earlier start.
				logger.DebugContext(ctx, "trainer fixture present", "email", entry.req.Email)
				continue
			}
			return err
		}
		for i := range entry.activities {
			entry.activities[i].TrainerID = trainer.ID
			if _, err := activities.Create(ctx, &entry.activities[i]); err != nil {
				return err
			}
		}
	}

	memberFixtures := []model.CreateMemberRequest{
		{Name: "Mia Member", Email: "member@gymdesk.local", Plan: model.MembershipStandard},
		{Name: "Max Mats", Email: "max@gymdesk.local", Plan: model.MembershipBasic},
		{Name: "Pia Premium", Email: "pia@gymdesk.local", Plan: model.MembershipPremium},
	}
	for i := range memberFixtures {
		if _, err := members.Create(ctx, &memberFixtures[i]); err != nil {
			if errors.Is(err, data.ErrMemberEmailExists) {
				continue
			}
			return err
		}
	}

	return nil
}
