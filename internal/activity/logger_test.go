package activity

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/repo"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []repo.ActivityLogEntry
	err     error
}

func (r *recordingSink) InsertActivityLog(_ context.Context, entry repo.ActivityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return r.err
}

func (r *recordingSink) logged() []repo.ActivityLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]repo.ActivityLogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

type recordingPoints struct {
	mu    sync.Mutex
	total int
	calls int
}

func (r *recordingPoints) AddPoints(_ context.Context, _ string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total += points
	r.calls++
	return nil
}

func TestLogWritesEntryAndPoints(t *testing.T) {
	sink := &recordingSink{}
	points := &recordingPoints{}
	l := NewLogger(sink, points, "user-1")

	l.Log(catalog.ActivityGameComplete, "quiz", 300, map[string]string{"category": "colors"})
	l.Wait()

	entries := sink.logged()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.UserID != "user-1" || e.ActivityType != "game_complete" || e.PointsEarned != 300 {
		t.Errorf("entry = %+v", e)
	}
	if e.Metadata["category"] != "colors" {
		t.Errorf("metadata = %v", e.Metadata)
	}
	if e.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	points.mu.Lock()
	defer points.mu.Unlock()
	if points.total != 300 || points.calls != 1 {
		t.Errorf("points total=%d calls=%d, want 300/1", points.total, points.calls)
	}
}

func TestZeroPointEventSkipsPointsSink(t *testing.T) {
	sink := &recordingSink{}
	points := &recordingPoints{}
	l := NewLogger(sink, points, "user-1")

	l.Log(catalog.ActivityLessonView, "Cores", 0, nil)
	l.Wait()

	points.mu.Lock()
	defer points.mu.Unlock()
	if points.calls != 0 {
		t.Errorf("points sink called %d times for a zero-point event", points.calls)
	}
}

func TestNoUserIsNoOp(t *testing.T) {
	sink := &recordingSink{}
	l := NewLogger(sink, nil, "")

	l.Log(catalog.ActivityGameStart, "memory", 0, nil)
	l.Wait()

	if len(sink.logged()) != 0 {
		t.Error("logged without a signed-in user")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log(catalog.ActivityGameStart, "memory", 0, nil) // must not panic
	l.Wait()
}

func TestSinkErrorsAreSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	l := NewLogger(sink, nil, "user-1")

	l.Log(catalog.ActivityGameComplete, "quiz", 100, nil)
	l.Wait() // no panic, no error surfaced
}
