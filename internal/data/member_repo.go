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

var _ core.MemberRepository = (*MemberRepo)(nil)

// MemberRepo provides database operations for gym members.
type MemberRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMemberRepo creates a new MemberRepo with real time provider.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewMemberRepoWithTimeProvider creates a new MemberRepo with a custom time provider (useful for tests).
func NewMemberRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MemberRepo {
	return &MemberRepo{DB: db, timeProvider: tp}
}

// Create inserts a new member.
func (r *MemberRepo) Create(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error) {
	if req == nil {
		return nil, errors.New("create member request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan := req.Plan
	if plan == "" {
		plan = model.MembershipBasic
	}
	// New members default to active (matches DB default).
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := r.timeProvider.Now().UTC()
	var out model.Member
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO members (
				name, email, phone, plan, active, joined_at, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $6
			) RETURNING id, name, email, phone, plan, active, joined_at, created_at, updated_at
		`,
			strings.TrimSpace(req.Name),
			strings.ToLower(strings.TrimSpace(req.Email)),
			req.Phone,
			plan,
			active,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a member by ID.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*model.Member, error) {
	return r.getByQuery(ctx, memberGetByIDQuery, id)
}

// GetByEmail retrieves a member by email.
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	return r.getByQuery(ctx, memberGetByEmailQuery, strings.ToLower(strings.TrimSpace(email)))
}

// List retrieves members with pagination and optional filters.
func (r *MemberRepo) List(ctx context.Context, opts model.MembersListOptions) ([]*model.Member, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	where, args := r.buildListWhere(opts)
	query := memberSelectColumns + " FROM members" + where +
		" ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var rowsOut []model.Member
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Member])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	res := make([]*model.Member, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Update updates fields of a member.
func (r *MemberRepo) Update(ctx context.Context, id string, req model.UpdateMemberRequest) (*model.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Member
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, memberGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
			return e
		}
		args = append(args, id)
		query := "UPDATE members SET " + setClause +
			" WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, name, email, phone, plan, active, joined_at, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a member by ID.
func (r *MemberRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete member: %w", err)
	}
	return rows > 0, nil
}

// Count returns the total number of members, optionally only active ones.
func (r *MemberRepo) Count(ctx context.Context, onlyActive bool) (int, error) {
	query := `SELECT COUNT(*) FROM members`
	if onlyActive {
		query += ` WHERE active`
	}
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

// --- helpers ---

const (
	memberSelectColumns = `SELECT id, name, email, phone, plan, active, joined_at, created_at, updated_at`

	memberGetByIDQuery = memberSelectColumns + `
		FROM members
		WHERE id = $1`

	memberGetByEmailQuery = memberSelectColumns + `
		FROM members
		WHERE email = $1`
)

func (r *MemberRepo) getByQuery(ctx context.Context, query string, arg any) (*model.Member, error) {
	var out model.Member
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &out, nil
}

func (r *MemberRepo) buildListWhere(opts model.MembersListOptions) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if opts.Q != nil {
		if q := strings.TrimSpace(*opts.Q); q != "" {
			idx := nextIdx()
			conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", idx, idx))
			args = append(args, "%"+q+"%")
		}
	}
	if opts.Active != nil {
		conds = append(conds, fmt.Sprintf("active = $%d", nextIdx()))
		args = append(args, *opts.Active)
	}
	if opts.Plan != nil {
		conds = append(conds, fmt.Sprintf("plan = $%d", nextIdx()))
		args = append(args, *opts.Plan)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *MemberRepo) buildUpdateClause(req model.UpdateMemberRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Email)))
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			setParts = append(setParts, "phone = NULL")
		} else {
			setParts = append(setParts, fmt.Sprintf("phone = $%d", nextIdx()))
			args = append(args, *req.Phone)
		}
	}
	if req.Plan != nil {
		setParts = append(setParts, fmt.Sprintf("plan = $%d", nextIdx()))
		args = append(args, *req.Plan)
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("active = $%d", nextIdx()))
		args = append(args, *req.Active)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *MemberRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrMemberNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrMemberEmailExists
	}
	return err
}
