package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// InsertActivityLog appends one activity record. Append-only; the entry's
// ID and CreatedAt are filled in when unset.
func (s *Store) InsertActivityLog(ctx context.Context, entry ActivityLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	meta := entry.Metadata
	if meta == nil {
		meta = map[string]string{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return &RepositoryError{Op: "encode metadata", Err: err}
	}

	query := s.db.Rebind(`
		INSERT INTO user_activity_logs
			(id, user_id, activity_type, activity_name, points_earned, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err = s.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.ActivityType, entry.ActivityName,
		entry.PointsEarned, string(metaJSON), entry.CreatedAt)
	if err != nil {
		return &RepositoryError{Op: "insert activity log", Err: err}
	}
	return nil
}

// ActivitySummaries aggregates a user's logged activity by type.
func (s *Store) ActivitySummaries(ctx context.Context, userID string) ([]ActivitySummary, error) {
	query := s.db.Rebind(`
		SELECT activity_type, COUNT(*) AS count, COALESCE(SUM(points_earned), 0) AS total_points
		FROM user_activity_logs
		WHERE user_id = ?
		GROUP BY activity_type
		ORDER BY activity_type`)

	var summaries []ActivitySummary
	if err := s.db.SelectContext(ctx, &summaries, query, userID); err != nil {
		return nil, &RepositoryError{Op: "activity summaries", Err: err}
	}
	return summaries, nil
}

// ClearActivityLogs deletes a user's activity history. Used by the reset
// command only.
func (s *Store) ClearActivityLogs(ctx context.Context, userID string) error {
	query := s.db.Rebind(`DELETE FROM user_activity_logs WHERE user_id = ?`)
	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return &RepositoryError{Op: "clear activity logs", Err: err}
	}
	return nil
}
