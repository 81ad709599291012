package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gymdesk/gym-ui-api/internal/core"
	"github.com/gymdesk/gym-ui-api/internal/data/pgxutil"
	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
)

var _ core.UserRepository = (*UserRepo)(nil)

// UserRepo provides database operations for login accounts and their tokens.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// userRow mirrors the users table for scanning.
type userRow struct {
	ID           string  `db:"id"`
	DisplayName  string  `db:"display_name"`
	Email        string  `db:"email"`
	Role         string  `db:"role"`
	Verified     bool    `db:"verified"`
	AvatarURL    *string `db:"avatar_url"`
	PasswordHash string  `db:"password_hash"`
}

func (u userRow) identity() domainauth.Identity {
	role, _ := domainauth.ParseRole(u.Role)
	ident := domainauth.Identity{
		UserID:      u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        role,
		Verified:    u.Verified,
	}
	if u.AvatarURL != nil {
		ident.AvatarURL = *u.AvatarURL
	}
	return ident
}

// GetByEmail retrieves a login account with its password hash.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*core.UserCredentials, error) {
	var row userRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, display_name, email, role, verified, avatar_url, password_hash
			FROM users
			WHERE email = LOWER($1)
		`, email)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &core.UserCredentials{Identity: row.identity(), PasswordHash: row.PasswordHash}, nil
}

// GetByToken resolves the identity behind an unexpired token.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (*domainauth.Identity, error) {
	var row userRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT u.id, u.display_name, u.email, u.role, u.verified, u.avatar_url, u.password_hash
			FROM users u
			JOIN auth_tokens t ON t.user_id = u.id
			WHERE t.token = $1 AND t.expires_at > $2
		`, token, r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}
	ident := row.identity()
	return &ident, nil
}

// StoreToken records an issued token for a user.
func (r *UserRepo) StoreToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO auth_tokens (token, user_id, expires_at, created_at)
			VALUES ($1, $2, $3, $4)
		`, token, userID, expiresAt.UTC(), r.timeProvider.Now().UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// DeleteToken revokes a token. Deleting an unknown token is not an error.
func (r *UserRepo) DeleteToken(ctx context.Context, token string) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `DELETE FROM auth_tokens WHERE token = $1`, token)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// UpsertUser creates a login account or refreshes an existing one by email.
// Outside the core port on purpose: only the development seeder writes users.
func (r *UserRepo) UpsertUser(ctx context.Context, ident domainauth.Identity, passwordHash string) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		now := r.timeProvider.Now().UTC()
		_, err := conn.Exec(ctx, `
			INSERT INTO users (display_name, email, role, verified, avatar_url, password_hash, created_at, updated_at)
			VALUES ($1, LOWER($2), $3, $4, NULLIF($5, ''), $6, $7, $7)
			ON CONFLICT (email) DO UPDATE SET
				display_name = EXCLUDED.display_name,
				role = EXCLUDED.role,
				verified = EXCLUDED.verified,
				password_hash = EXCLUDED.password_hash,
				updated_at = EXCLUDED.updated_at
		`, ident.DisplayName, ident.Email, string(ident.Role), ident.Verified, ident.AvatarURL, passwordHash, now)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// PurgeExpiredTokens removes tokens past their expiry. Called opportunistically
// from bootstrap at startup.
func (r *UserRepo) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	var removed int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM auth_tokens WHERE expires_at <= $1`, r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		removed = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired tokens: %w", err)
	}
	return removed, nil
}
