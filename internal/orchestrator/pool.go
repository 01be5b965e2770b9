package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "multilingual-chatbot/pkg/log"
)

// SeedFunc loads the transcript of a session, oldest first. It is called only
// when an orchestrator is created for that session, without the pool lock
// held, so it may read from the store.
type SeedFunc func(ctx context.Context) ([]Turn, error)

// PoolConfig sizes the pool and the orchestrators it creates.
type PoolConfig struct {
	Capacity    int
	TTL         time.Duration
	MemoryTurns int
	Model       *ModelConfig // nil selects fallback mode
}

// Pool maps session ids to orchestrators.
type Pool struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Orchestrator]
	cfg   PoolConfig
	l     pkgLog.Logger
}

// NewPool creates an orchestrator pool. Entries expire cfg.TTL after their
// last use.
func NewPool(l pkgLog.Logger, cfg PoolConfig) *Pool {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 10000
	}
	if cfg.MemoryTurns <= 0 {
		cfg.MemoryTurns = DefaultMemoryTurns
	}
	return &Pool{
		cache: expirable.NewLRU[string, *Orchestrator](cfg.Capacity, nil, cfg.TTL),
		cfg:   cfg,
		l:     l,
	}
}

// Get returns the orchestrator of sessionID, creating it on first use. A new
// orchestrator has its memory seeded with the last MemoryTurns turns of seed.
// When two callers race to create the same session, the first insert wins.
func (p *Pool) Get(ctx context.Context, sessionID string, seed SeedFunc) (*Orchestrator, error) {
	if o, ok := p.lookup(sessionID); ok {
		return o, nil
	}

	var turns []Turn
	if seed != nil {
		var err error
		turns, err = seed(ctx)
		if err != nil {
			return nil, err
		}
		if len(turns) > p.cfg.MemoryTurns {
			turns = turns[len(turns)-p.cfg.MemoryTurns:]
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if o, ok := p.cache.Get(sessionID); ok {
		p.cache.Add(sessionID, o)
		return o, nil
	}

	o := New(p.l, p.cfg.Model, p.cfg.MemoryTurns, turns)
	p.cache.Add(sessionID, o)
	p.l.Debugf(ctx, "%s: created %s orchestrator for session %s (seeded %d turns)",
		LogPrefixPool, o.Mode(), sessionID, len(turns))
	return o, nil
}

// lookup returns a cached orchestrator and refreshes its TTL.
func (p *Pool) lookup(sessionID string) (*Orchestrator, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	o, ok := p.cache.Get(sessionID)
	if ok {
		p.cache.Add(sessionID, o)
	}
	return o, ok
}

// Peek returns the orchestrator of sessionID without creating or refreshing it.
func (p *Pool) Peek(sessionID string) (*Orchestrator, bool) {
	return p.cache.Peek(sessionID)
}

// Remove discards the orchestrator of sessionID. Unknown ids are ignored.
func (p *Pool) Remove(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.Remove(sessionID)
}

// Len reports the number of live orchestrators.
func (p *Pool) Len() int {
	return p.cache.Len()
}

// Mode reports the mode of orchestrators created by this pool.
func (p *Pool) Mode() Mode {
	if p.cfg.Model != nil && p.cfg.Model.Generator != nil {
		return ModeModelBacked
	}
	return ModeFallback
}
