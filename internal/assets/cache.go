package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/ssantos/wordkids/internal/catalog"
)

// Fetcher is the slice of the item repository the cache needs.
type Fetcher interface {
	ListItemsByCategory(ctx context.Context, category catalog.CategoryKey) ([]catalog.LearningItem, error)
}

// Handle tracks one image download. It settles on both success and
// failure so a broken asset never blocks the readiness gate; the UI
// substitutes a placeholder for failed ones.
type Handle struct {
	URL string

	done chan struct{}

	mu   sync.Mutex
	data []byte
	err  error
}

// Done is closed once the download has settled, either way.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Settled reports whether the download has finished (success or failure).
func (h *Handle) Settled() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Bytes returns the fetched asset, or nil if the download failed or has
// not settled yet.
func (h *Handle) Bytes() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.data
}

// Err returns the download error, if any.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Handle) settle(data []byte, err error) {
	h.mu.Lock()
	h.data = data
	h.err = err
	h.mu.Unlock()
	close(h.done)
}

// Cache memoizes fetched item lists per category key and image downloads
// per URL for the process lifetime. It is constructed once at application
// start and passed to consumers; tests get fresh instances.
type Cache struct {
	fetcher Fetcher
	client  *http.Client

	mu       sync.Mutex
	items    map[catalog.CategoryKey][]catalog.LearningItem
	preloads map[string]*Handle
}

// NewCache creates an empty cache over the given fetcher. A nil client
// gets a default with a conservative timeout.
func NewCache(fetcher Fetcher, client *http.Client) *Cache {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Cache{
		fetcher:  fetcher,
		client:   client,
		items:    make(map[catalog.CategoryKey][]catalog.LearningItem),
		preloads: make(map[string]*Handle),
	}
}

// GetOrFetch returns the memoized item list for category, fetching it
// from the repository on first use. Entries never expire; a concurrent
// refresh is last-write-wins per key, which is safe because entries are
// immutable once stored.
func (c *Cache) GetOrFetch(ctx context.Context, category catalog.CategoryKey) ([]catalog.LearningItem, error) {
	c.mu.Lock()
	if items, ok := c.items[category]; ok {
		c.mu.Unlock()
		return items, nil
	}
	c.mu.Unlock()

	items, err := c.fetcher.ListItemsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items[category] = items
	c.mu.Unlock()
	return items, nil
}

// Cached returns the memoized list for category without fetching.
func (c *Cache) Cached(category catalog.CategoryKey) ([]catalog.LearningItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, ok := c.items[category]
	return items, ok
}

// Preload starts (or joins) the download for url and returns its handle.
// Concurrent calls for the same URL share one underlying download. An
// empty URL yields an already-settled handle.
func (c *Cache) Preload(url string) *Handle {
	c.mu.Lock()
	if h, ok := c.preloads[url]; ok {
		c.mu.Unlock()
		return h
	}

	h := &Handle{URL: url, done: make(chan struct{})}
	c.preloads[url] = h
	c.mu.Unlock()

	if url == "" {
		h.settle(nil, nil)
		return h
	}

	go func() {
		data, err := c.download(url)
		h.settle(data, err)
	}()
	return h
}

// PreloadAll starts downloads for every item's image and returns the
// handles in item order.
func (c *Cache) PreloadAll(items []catalog.LearningItem) []*Handle {
	handles := make([]*Handle, len(items))
	for i, item := range items {
		handles[i] = c.Preload(item.ImageURL)
	}
	return handles
}

func (c *Cache) download(url string) ([]byte, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
