// Package activity records learning events: lesson views, game starts
// and completions, video watches. Logging is fire-and-forget so the
// interface never blocks or fails the caller.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/repo"
)

// Sink is the slice of the repository the logger writes through.
type Sink interface {
	InsertActivityLog(ctx context.Context, entry repo.ActivityLogEntry) error
}

// PointsSink credits earned points to the user's running total.
type PointsSink interface {
	AddPoints(ctx context.Context, userID string, points int) error
}

// Logger writes activity events for one signed-in user. A Logger with
// no user is a no-op, so screens can log unconditionally.
type Logger struct {
	sink   Sink
	points PointsSink
	userID string

	timeout time.Duration

	wg sync.WaitGroup
}

// NewLogger creates a logger for the given user. userID may be empty,
// in which case every Log call is a no-op.
func NewLogger(sink Sink, points PointsSink, userID string) *Logger {
	return &Logger{
		sink:    sink,
		points:  points,
		userID:  userID,
		timeout: 5 * time.Second,
	}
}

// Log records one event in the background. Persistence errors are
// swallowed: a failed log write never disturbs the session.
func (l *Logger) Log(activityType catalog.ActivityType, activityName string, pointsEarned int, metadata map[string]string) {
	if l == nil || l.userID == "" || l.sink == nil {
		return
	}
	entry := repo.ActivityLogEntry{
		UserID:       l.userID,
		ActivityType: string(activityType),
		ActivityName: activityName,
		PointsEarned: pointsEarned,
		Metadata:     metadata,
		CreatedAt:    time.Now().UTC(),
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		_ = l.sink.InsertActivityLog(ctx, entry)
		if pointsEarned > 0 && l.points != nil {
			_ = l.points.AddPoints(ctx, l.userID, pointsEarned)
		}
	}()
}

// Wait blocks until all in-flight writes finish. Used on shutdown and
// in tests.
func (l *Logger) Wait() {
	if l == nil {
		return
	}
	l.wg.Wait()
}
