package modes

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ssantos/wordkids/internal/assets"
	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/screens"
	"github.com/ssantos/wordkids/internal/session"
)

// flakyFetcher fails the first calls, then serves one item.
type flakyFetcher struct {
	calls     int
	failFirst int
}

func (f *flakyFetcher) ListItemsByCategory(_ context.Context, category catalog.CategoryKey) ([]catalog.LearningItem, error) {
	f.calls++
	if f.calls <= f.failFirst {
		return nil, errors.New("offline")
	}
	return []catalog.LearningItem{
		{ID: "1", Category: category, EnglishWord: "red", PortugueseWord: "vermelho"},
	}, nil
}

func testDeps(f *flakyFetcher) *screens.Deps {
	deps := &screens.Deps{
		Cache:   assets.NewCache(f, nil),
		Gate:    assets.NewGate(),
		Session: session.NewState(),
	}
	session.SelectCategory(deps.Session, catalog.CategoryColors)
	return deps
}

func TestFetchFailureShowsRetryableError(t *testing.T) {
	m := New(testDeps(&flakyFetcher{failFirst: 1}))

	cmd := m.Init()
	m.Update(cmd())

	if m.loading {
		t.Error("still loading after failed fetch")
	}
	if m.errText == "" {
		t.Fatal("no error state after failed fetch")
	}
}

func TestRetryKeyRefetches(t *testing.T) {
	f := &flakyFetcher{failFirst: 1}
	m := New(testDeps(f))

	cmd := m.Init()
	m.Update(cmd())
	if m.errText == "" {
		t.Fatal("no error state to retry from")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("retry key produced no fetch command")
	}
	if !m.loading || m.errText != "" {
		t.Fatalf("loading=%v errText=%q after retry", m.loading, m.errText)
	}

	_, cmd = m.Update(cmd())
	if m.errText != "" {
		t.Fatalf("second fetch failed: %q", m.errText)
	}
	if cmd == nil {
		t.Fatal("no preload command after successful fetch")
	}

	m.Update(cmd())
	if m.loading {
		t.Error("still loading after assets settled")
	}
	if f.calls != 2 {
		t.Errorf("fetch calls = %d, want 2", f.calls)
	}
}

func TestRetryKeyIgnoredWithoutError(t *testing.T) {
	m := New(testDeps(&flakyFetcher{}))
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd != nil {
		t.Error("retry command issued with no error state")
	}
}
