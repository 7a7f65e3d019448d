package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/ssantos/wordkids/internal/catalog"
)

// RepositoryError wraps a failure of the hosted data store. Callers surface
// it as a retryable error state; it is never thrown past the UI.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// ActivityLogEntry is an append-only record of one user activity. The core
// only constructs and submits entries; the store owns them.
type ActivityLogEntry struct {
	ID           string            `db:"id"`
	UserID       string            `db:"user_id"`
	ActivityType string            `db:"activity_type"`
	ActivityName string            `db:"activity_name"`
	PointsEarned int               `db:"points_earned"`
	Metadata     map[string]string `db:"-"`
	CreatedAt    time.Time         `db:"created_at"`
}

// ActivitySummary aggregates logged activity for the stats command.
type ActivitySummary struct {
	ActivityType string `db:"activity_type"`
	Count        int    `db:"count"`
	TotalPoints  int    `db:"total_points"`
}

// User is a learner account with its cached profile fields.
type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	DisplayName  string     `db:"display_name"`
	PasswordHash string     `db:"password_hash"`
	Points       int        `db:"points"`
	LastActiveAt *time.Time `db:"last_active_at"`
}

// ItemRepository is the only network-reading dependency of the learning
// core: it fetches ordered item lists and accepts activity log inserts.
type ItemRepository interface {
	// ListItemsByCategory returns the category's items ordered by order_index.
	ListItemsByCategory(ctx context.Context, category catalog.CategoryKey) ([]catalog.LearningItem, error)

	// ListCategoriesWithLessons returns the class categories with their
	// lessons, audios and videos grouped hierarchically.
	ListCategoriesWithLessons(ctx context.Context) ([]catalog.ClassCategoryWithLessons, error)

	// InsertActivityLog appends one activity record.
	InsertActivityLog(ctx context.Context, entry ActivityLogEntry) error
}

// UserRepository resolves and refreshes learner accounts.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)

	// AddPoints accumulates earned points and bumps last_active_at.
	AddPoints(ctx context.Context, userID string, points int) error
}
