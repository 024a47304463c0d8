package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, timeout time.Duration) *Repository {
	return &Repository{pool: pool, timeout: timeout}
}

const userColumns = `id, email, phone_number, username, password_hash, image, skill, created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PhoneNumber,
		&u.Username,
		&u.PasswordHash,
		&u.Image,
		&u.Skill,
		&u.CreatedAt,
	)
	return u, err
}

func (r *Repository) InsertUser(ctx context.Context, user User) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.pool.QueryRow(ctx,
		`INSERT INTO opencourt.users (email, phone_number, username, password_hash, image, skill)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		user.Email,
		user.PhoneNumber,
		user.Username,
		user.PasswordHash,
		user.Image,
		user.Skill,
	).Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return User{}, ErrEmailTaken
		}

		return User{}, ErrPhoneTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByPhone(ctx context.Context, phoneNumber string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql := `SELECT ` + userColumns + ` FROM opencourt.users WHERE phone_number = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, sql, phoneNumber))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user by phone: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql := `SELECT ` + userColumns + ` FROM opencourt.users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return user, nil
}

// UpsertSession stores the active refresh token for the user,
// overwriting any previous one. Last token wins.
func (r *Repository) UpsertSession(ctx context.Context, session Session) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO opencourt.sessions (user_id, refresh_token_id, issued_at, expires_at)
         VALUES ($1, $2, $3, $4)
         ON CONFLICT (user_id) DO UPDATE
         SET refresh_token_id = EXCLUDED.refresh_token_id,
             issued_at = EXCLUDED.issued_at,
             expires_at = EXCLUDED.expires_at`,
		session.UserID,
		session.RefreshTokenID,
		session.IssuedAt,
		session.ExpiresAt,
	)

	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// RotateSession replaces the stored refresh token only if it still
// matches the one being rotated. A lost race means another rotation
// already landed; the caller's token is dead and the swap reports
// ErrTokenRevoked.
func (r *Repository) RotateSession(ctx context.Context, session Session, previousTokenID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.pool.Exec(ctx,
		`UPDATE opencourt.sessions
         SET refresh_token_id = $2, issued_at = $3, expires_at = $4
         WHERE user_id = $1 AND refresh_token_id = $5`,
		session.UserID,
		session.RefreshTokenID,
		session.IssuedAt,
		session.ExpiresAt,
		previousTokenID,
	)

	if err != nil {
		return fmt.Errorf("failed to rotate session: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrTokenRevoked
	}

	return nil
}

func (r *Repository) GetSession(ctx context.Context, userID string) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var session Session
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, refresh_token_id, issued_at, expires_at
         FROM opencourt.sessions WHERE user_id = $1`,
		userID,
	).Scan(&session.UserID, &session.RefreshTokenID, &session.IssuedAt, &session.ExpiresAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}

	if err != nil {
		return Session{}, fmt.Errorf("failed to fetch session: %w", err)
	}

	return session, nil
}

// DeleteSession clears the stored refresh token. Deleting a session
// that does not exist is a no-op.
func (r *Repository) DeleteSession(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`DELETE FROM opencourt.sessions WHERE user_id = $1`,
		userID,
	)

	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
