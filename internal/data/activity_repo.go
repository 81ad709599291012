package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/data/pgxutil"
	"github.com/gymdesk/gym-ui-api/internal/domain/model"
)

var _ core.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo provides database operations for scheduled activities.
type ActivityRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewActivityRepo creates a new ActivityRepo with real time provider.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new activity.
func (r *ActivityRepo) Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	if req == nil {
		return nil, errors.New("create activity request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Activity
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO activities (
				name, description, trainer_id, capacity, starts_at, duration_minutes, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			) RETURNING id, name, description, trainer_id, capacity, starts_at, duration_minutes, created_at, updated_at
		`,
			strings.TrimSpace(req.Name),
			req.Description,
			req.TrainerID,
			req.Capacity,
			req.StartsAt.UTC(),
			req.DurationMinutes,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves an activity by ID.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var out model.Activity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, activityGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return &out, nil
}

// List retrieves activities with pagination and optional filters.
func (r *ActivityRepo) List(ctx context.Context, opts model.ActivitiesListOptions) ([]*model.Activity, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	conds := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if opts.TrainerID != nil {
		args = append(args, *opts.TrainerID)
		conds = append(conds, fmt.Sprintf("trainer_id = $%d", len(args)))
	}
	if opts.From != nil {
		args = append(args, opts.From.UTC())
		conds = append(conds, fmt.Sprintf("starts_at >= $%d", len(args)))
	}
	query := activitySelectColumns + " FROM activities"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY starts_at ASC LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var rowsOut []model.Activity
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Activity])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	res := make([]*model.Activity, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of an activity.
func (r *ActivityRepo) Update(ctx context.Context, id string, req model.UpdateActivityRequest) (*model.Activity, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Activity
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, activityGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
			return e
		}
		args = append(args, id)
		query := "UPDATE activities SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, name, description, trainer_id, capacity, starts_at, duration_minutes, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Activity])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes an activity by ID.
func (r *ActivityRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return false, ErrActivityHasBookings
		}
		return false, fmt.Errorf("failed to delete activity: %w", err)
	}
	return rows > 0, nil
}

// Count returns the total number of activities.
func (r *ActivityRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities`).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// --- helpers ---

const (
	activitySelectColumns = `SELECT id, name, description, trainer_id, capacity, starts_at, duration_minutes, created_at, updated_at`

	activityGetByIDQuery = activitySelectColumns + `
		FROM activities
		WHERE id = $1`
)

func (r *ActivityRepo) buildUpdateClause(req model.UpdateActivityRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 7)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			setParts = append(setParts, "description = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
			args = append(args, *req.Description)
		}
	}
	if req.TrainerID != nil {
		setParts = append(setParts, fmt.Sprintf("trainer_id = $%d", nextIdx()))
		args = append(args, *req.TrainerID)
	}
	if req.Capacity != nil {
		setParts = append(setParts, fmt.Sprintf("capacity = $%d", nextIdx()))
		args = append(args, *req.Capacity)
	}
	if req.StartsAt != nil {
		setParts = append(setParts, fmt.Sprintf("starts_at = $%d", nextIdx()))
		args = append(args, req.StartsAt.UTC())
	}
	if req.DurationMinutes != nil {
		setParts = append(setParts, fmt.Sprintf("duration_minutes = $%d", nextIdx()))
		args = append(args, *req.DurationMinutes)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *ActivityRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrActivityNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrActivityTrainerGone
	}
	return err
}
