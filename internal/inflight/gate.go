// Package inflight tracks which claims have a stage-advance request running,
// so the dashboard does not issue a second one on top of it.
package inflight

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Gate interface {
	// Acquire marks key as busy for at most ttl. It reports false when the
	// key is already held. The returned token identifies this holder.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Release clears key only while it is still held under token.
	Release(ctx context.Context, key, token string) error
}

type hold struct {
	token string
	until time.Time
}

// MemoryGate is the single-process Gate used when Redis is not configured.
type MemoryGate struct {
	mu       sync.Mutex
	held     map[string]hold
	nowFn    func() time.Time
	newToken func() string
}

func NewMemoryGate() *MemoryGate {
	return &MemoryGate{
		held:     make(map[string]hold),
		nowFn:    time.Now,
		newToken: uuid.NewString,
	}
}

func (g *MemoryGate) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.nowFn()
	if h, ok := g.held[key]; ok && now.Before(h.until) {
		return "", false, nil
	}
	token := g.newToken()
	g.held[key] = hold{token: token, until: now.Add(ttl)}
	return token, true, nil
}

func (g *MemoryGate) Release(ctx context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if h, ok := g.held[key]; ok && h.token == token {
		delete(g.held, key)
	}
	return nil
}
