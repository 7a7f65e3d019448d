package assets

import (
	"context"
	"sync"
)

// Token identifies one readiness computation. A category switch bumps the
// gate's generation, invalidating tokens handed out before it.
type Token uint64

// Gate blocks presentation of a category's content until every item's
// image preload has settled. The generation counter guards against
// out-of-order resolution: a slow preload from an abandoned category
// settling late must not flip readiness for the current one.
type Gate struct {
	mu         sync.Mutex
	generation Token
	ready      bool
}

// NewGate creates a gate with no active computation.
func NewGate() *Gate {
	return &Gate{}
}

// Begin starts a new readiness computation, clearing the ready flag and
// invalidating any in-flight one. Called on every category switch.
func (g *Gate) Begin() Token {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generation++
	g.ready = false
	return g.generation
}

// AwaitReady blocks until every handle has settled or ctx is done, then
// commits the ready flag only if token still names the active
// computation. It reports whether the commit happened.
func (g *Gate) AwaitReady(ctx context.Context, token Token, handles []*Handle) bool {
	for _, h := range handles {
		select {
		case <-h.Done():
		case <-ctx.Done():
			return false
		}
	}
	return g.commit(token)
}

func (g *Gate) commit(token Token) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if token != g.generation {
		// Stale computation from a superseded category.
		return false
	}
	g.ready = true
	return true
}

// Ready reports whether the active item set's assets have all settled.
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}
