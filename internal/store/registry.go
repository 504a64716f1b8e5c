package store

import (
	"context"
	"sync"
	"time"

	"ticketvue/internal/monitoring"

	"github.com/sirupsen/logrus"
)

const DefaultIdleTTL = 2 * time.Hour

// DefaultSweepInterval is used by Run when no positive interval is given
const DefaultSweepInterval = time.Minute

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry owns one Store per browser session id and evicts stores that
// have been idle longer than the TTL.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	opts    Options
	idleTTL time.Duration
	now     func() time.Time
}

func NewRegistry(opts Options, idleTTL time.Duration) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Registry{
		entries: make(map[string]*entry),
		opts:    opts,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Get returns the store for a session, creating it on first use
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{store: New(r.opts)}
		r.entries[sessionID] = e
		monitoring.SessionOpened()
	}
	e.lastSeen = r.now()
	return e.store
}

// Len is the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep closes and drops every store idle for longer than the TTL
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.idleTTL)
	evicted := 0
	for id, e := range r.entries {
		if e.lastSeen.After(cutoff) {
			continue
		}
		e.store.Close()
		delete(r.entries, id)
		monitoring.SessionClosed()
		evicted++
	}
	return evicted
}

// Run sweeps on every tick until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logrus.WithField("evicted", n).Debug("Evicted idle sessions")
			}
		}
	}
}

// Close shuts every store down
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		e.store.Close()
		delete(r.entries, id)
		monitoring.SessionClosed()
	}
}
