package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ssantos/wordkids/internal/catalog"
)

type countingFetcher struct {
	mu    sync.Mutex
	calls int
	items []catalog.LearningItem
	err   error
}

func (f *countingFetcher) ListItemsByCategory(_ context.Context, _ catalog.CategoryKey) ([]catalog.LearningItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.items, f.err
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func awaitHandle(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("handle never settled")
	}
}

func TestGetOrFetchMemoizesPerCategory(t *testing.T) {
	fetcher := &countingFetcher{items: []catalog.LearningItem{{ID: "1", EnglishWord: "red"}}}
	c := NewCache(fetcher, nil)
	ctx := context.Background()

	first, err := c.GetOrFetch(ctx, catalog.CategoryColors)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := c.GetOrFetch(ctx, catalog.CategoryColors)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if fetcher.callCount() != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.callCount())
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("item lists = %d/%d, want 1/1", len(first), len(second))
	}

	// A different category fetches again.
	if _, err := c.GetOrFetch(ctx, catalog.CategoryAnimals); err != nil {
		t.Fatalf("other category: %v", err)
	}
	if fetcher.callCount() != 2 {
		t.Errorf("fetcher called %d times, want 2", fetcher.callCount())
	}
}

func TestCached(t *testing.T) {
	fetcher := &countingFetcher{items: []catalog.LearningItem{{ID: "1"}}}
	c := NewCache(fetcher, nil)

	if _, ok := c.Cached(catalog.CategoryColors); ok {
		t.Error("cache hit before any fetch")
	}
	if _, err := c.GetOrFetch(context.Background(), catalog.CategoryColors); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Cached(catalog.CategoryColors); !ok {
		t.Error("cache miss after fetch")
	}
}

func TestPreloadDownloadsOnce(t *testing.T) {
	var hits int
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := NewCache(&countingFetcher{}, srv.Client())

	h1 := c.Preload(srv.URL + "/red.png")
	h2 := c.Preload(srv.URL + "/red.png")
	if h1 != h2 {
		t.Error("same URL produced distinct handles")
	}
	awaitHandle(t, h1)

	if h1.Err() != nil {
		t.Fatalf("preload: %v", h1.Err())
	}
	if string(h1.Bytes()) != "png-bytes" {
		t.Errorf("bytes = %q", h1.Bytes())
	}
	mu.Lock()
	defer mu.Unlock()
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestPreloadFailureStillSettles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewCache(&countingFetcher{}, srv.Client())
	h := c.Preload(srv.URL + "/missing.png")
	awaitHandle(t, h)

	if h.Err() == nil {
		t.Error("expected error for 404 asset")
	}
	if h.Bytes() != nil {
		t.Error("bytes set for failed download")
	}
}

func TestPreloadEmptyURLSettlesImmediately(t *testing.T) {
	c := NewCache(&countingFetcher{}, nil)
	h := c.Preload("")
	if !h.Settled() {
		t.Error("empty URL handle not settled")
	}
}

func TestGateCommitsCurrentGeneration(t *testing.T) {
	c := NewCache(&countingFetcher{}, nil)
	g := NewGate()

	token := g.Begin()
	handles := []*Handle{c.Preload(""), c.Preload("")}

	if !g.AwaitReady(context.Background(), token, handles) {
		t.Fatal("commit refused for current generation")
	}
	if !g.Ready() {
		t.Error("gate not ready after commit")
	}
}

func TestGateRefusesStaleGeneration(t *testing.T) {
	c := NewCache(&countingFetcher{}, nil)
	g := NewGate()

	stale := g.Begin()
	g.Begin() // category switched; stale token superseded

	handles := []*Handle{c.Preload("")}
	if g.AwaitReady(context.Background(), stale, handles) {
		t.Fatal("stale token committed")
	}
	if g.Ready() {
		t.Error("gate flipped ready by a stale computation")
	}
}

func TestGateBeginClearsReady(t *testing.T) {
	g := NewGate()
	token := g.Begin()
	g.AwaitReady(context.Background(), token, nil)
	if !g.Ready() {
		t.Fatal("setup: gate should be ready")
	}
	g.Begin()
	if g.Ready() {
		t.Error("Begin left the gate ready")
	}
}

func TestAwaitReadyHonorsContext(t *testing.T) {
	g := NewGate()
	token := g.Begin()

	// A handle that never settles.
	h := &Handle{URL: "hung", done: make(chan struct{})}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if g.AwaitReady(ctx, token, []*Handle{h}) {
		t.Error("AwaitReady committed despite unsettled handle")
	}
}
