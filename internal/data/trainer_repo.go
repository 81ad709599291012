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

var _ core.TrainerRepository = (*TrainerRepo)(nil)

// TrainerRepo provides database operations for trainers.
type TrainerRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTrainerRepo creates a new TrainerRepo with real time provider.
func NewTrainerRepo(db *sql.DB) *TrainerRepo {
	return &TrainerRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new trainer.
func (r *TrainerRepo) Create(ctx context.Context, req *model.CreateTrainerRequest) (*model.Trainer, error) {
	if req == nil {
		return nil, errors.New("create trainer request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Trainer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO trainers (
				name, email, specialty, bio, created_at
			) VALUES (
				$1, $2, $3, $4, $5
			) RETURNING id, name, email, specialty, bio, created_at, updated_at
		`,
			strings.TrimSpace(req.Name),
			strings.ToLower(strings.TrimSpace(req.Email)),
			strings.TrimSpace(req.Specialty),
			req.Bio,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Trainer])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a trainer by ID.
func (r *TrainerRepo) GetByID(ctx context.Context, id string) (*model.Trainer, error) {
	var out model.Trainer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, trainerGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Trainer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, fmt.Errorf("failed to get trainer: %w", err)
	}
	return &out, nil
}

// List retrieves trainers with pagination.
func (r *TrainerRepo) List(ctx context.Context, limit, offset int) ([]*model.Trainer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.Trainer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, trainerListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Trainer])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}

	res := make([]*model.Trainer, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a trainer.
func (r *TrainerRepo) Update(ctx context.Context, id string, req model.UpdateTrainerRequest) (*model.Trainer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Trainer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, trainerGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Trainer])
			return e
		}
		args = append(args, id)
		query := "UPDATE trainers SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, name, email, specialty, bio, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Trainer])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a trainer by ID.
func (r *TrainerRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM trainers WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete trainer: %w", err)
	}
	return rows > 0, nil
}

// Count returns the total number of trainers.
func (r *TrainerRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM trainers`).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count trainers: %w", err)
	}
	return count, nil
}

// --- helpers ---

const (
	trainerGetByIDQuery = `
		SELECT id, name, email, specialty, bio, created_at, updated_at
		FROM trainers
		WHERE id = $1`

	trainerListQuery = `
		SELECT id, name, email, specialty, bio, created_at, updated_at
		FROM trainers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`
)

func (r *TrainerRepo) buildUpdateClause(req model.UpdateTrainerRequest) (string, []any) {
	setParts := make([]string, 0, 4)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.Specialty != nil {
		setParts = append(setParts, fmt.Sprintf("specialty = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Specialty))
	}
	if req.Bio != nil {
		if strings.TrimSpace(*req.Bio) == "" {
			setParts = append(setParts, "bio = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("bio = $%d", nextIdx()))
			args = append(args, *req.Bio)
		}
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *TrainerRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrTrainerNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrTrainerEmailExists
	}
	return err
}
