package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUserNotFound reports a lookup for an account that doesn't exist.
var ErrUserNotFound = errors.New("user not found")

// GetUserByEmail looks up an account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := s.db.Rebind(`
		SELECT id, email, display_name, password_hash, points, last_active_at
		FROM users WHERE email = ?`)

	var u User
	if err := s.db.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, &RepositoryError{Op: "get user by email", Err: err}
	}
	return &u, nil
}

// GetUserByID looks up an account by id.
func (s *Store) GetUserByID(ctx context.Context, id string) (*User, error) {
	query := s.db.Rebind(`
		SELECT id, email, display_name, password_hash, points, last_active_at
		FROM users WHERE id = ?`)

	var u User
	if err := s.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, &RepositoryError{Op: "get user by id", Err: err}
	}
	return &u, nil
}

// AddPoints accumulates earned points and bumps last_active_at.
func (s *Store) AddPoints(ctx context.Context, userID string, points int) error {
	query := s.db.Rebind(`
		UPDATE users SET points = points + ?, last_active_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, query, points, time.Now().UTC(), userID); err != nil {
		return &RepositoryError{Op: "add points", Err: err}
	}
	return nil
}

// CreateUser inserts a new account. Used by the seed command to provision
// local accounts; the hosted store manages accounts itself.
func (s *Store) CreateUser(ctx context.Context, email, displayName, passwordHash string) (*User, error) {
	u := User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
	}
	query := s.db.Rebind(`
		INSERT INTO users (id, email, display_name, password_hash, points)
		VALUES (?, ?, ?, ?, 0)`)
	if _, err := s.db.ExecContext(ctx, query, u.ID, u.Email, u.DisplayName, u.PasswordHash); err != nil {
		return nil, &RepositoryError{Op: "create user", Err: err}
	}
	return &u, nil
}
