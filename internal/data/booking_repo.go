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

var _ core.BookingRepository = (*BookingRepo)(nil)

// BookingRepo provides database operations for bookings.
type BookingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBookingRepo creates a new BookingRepo with real time provider.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new booking in the booked state. The activity row is
// locked for the duration of the transaction so the capacity check and the
// insert cannot interleave with a concurrent booking. A partial unique index
// on (member_id, activity_id) for non-cancelled rows backs the duplicate
// check.
func (r *BookingRepo) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if req == nil {
		return nil, errors.New("create booking request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Booking
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var capacity int
		if err := tx.QueryRow(ctx,
			`SELECT capacity FROM activities WHERE id = $1 FOR UPDATE`,
			req.ActivityID,
		).Scan(&capacity); err != nil {
			return err
		}

		var taken int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM bookings WHERE activity_id = $1 AND status = 'booked'`,
			req.ActivityID,
		).Scan(&taken); err != nil {
			return err
		}
		if taken >= capacity {
			return ErrBookingCapacity
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO bookings (
				member_id, activity_id, status, booked_at, created_at
			) VALUES (
				$1, $2, 'booked', $3, $3
			) RETURNING id, member_id, activity_id, status, booked_at, created_at, updated_at
		`,
			req.MemberID,
			req.ActivityID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	}}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrBookingDuplicate
		}
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves a booking by ID.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, bookingGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &out, nil
}

// List retrieves bookings with pagination and optional filters.
func (r *BookingRepo) List(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	conds := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if opts.MemberID != nil {
		args = append(args, *opts.MemberID)
		conds = append(conds, fmt.Sprintf("member_id = $%d", len(args)))
	}
	if opts.ActivityID != nil {
		args = append(args, *opts.ActivityID)
		conds = append(conds, fmt.Sprintf("activity_id = $%d", len(args)))
	}
	if opts.Status != nil {
		args = append(args, *opts.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT id, member_id, activity_id, status, booked_at, created_at, updated_at FROM bookings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY booked_at DESC LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var rowsOut []model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	res := make([]*model.Booking, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetStatus transitions a booking to the given status.
func (r *BookingRepo) SetStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	var out model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE bookings SET status = $1, updated_at = $2
			WHERE id = $3
			RETURNING id, member_id, activity_id, status, booked_at, created_at, updated_at
		`, status, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &out, nil
}

// CountActiveByActivity counts booked (not cancelled or attended) slots for one activity.
func (r *BookingRepo) CountActiveByActivity(ctx context.Context, activityID string) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM bookings WHERE activity_id = $1 AND status = 'booked'`,
			activityID,
		).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings for activity: %w", err)
	}
	return count, nil
}

// CountActive counts all bookings currently in the booked state.
func (r *BookingRepo) CountActive(ctx context.Context) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM bookings WHERE status = 'booked'`,
		).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}

const bookingGetByIDQuery = `
	SELECT id, member_id, activity_id, status, booked_at, created_at, updated_at
	FROM bookings
	WHERE id = $1`
