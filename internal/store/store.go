package store

import (
	"sync"
	"time"
)

const (
	DefaultMessageTimeout       = 3 * time.Second
	DefaultAddedFeedbackTimeout = 2 * time.Second
)

// Options tunes the delayed resets owned by a store
type Options struct {
	MessageTimeout       time.Duration
	AddedFeedbackTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MessageTimeout <= 0 {
		o.MessageTimeout = DefaultMessageTimeout
	}
	if o.AddedFeedbackTimeout <= 0 {
		o.AddedFeedbackTimeout = DefaultAddedFeedbackTimeout
	}
	return o
}

// Store is the single owner of one session's State. Dispatch is
// serialized; readers get deep copies.
type Store struct {
	mu     sync.Mutex
	state  State
	opts   Options
	timers map[string]*time.Timer
	closed bool
}

func New(opts Options) *Store {
	return &Store{
		state:  initialState(),
		opts:   opts.withDefaults(),
		timers: make(map[string]*time.Timer),
	}
}

// Dispatch applies actions in order. Actions dispatched after Close are
// dropped.
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for _, action := range actions {
		reduce(&s.state, action)
		if t, ok := action.(timed); ok {
			s.schedule(t)
		}
	}
}

// schedule must be called with mu held
func (s *Store) schedule(t timed) {
	key, delay, next, ok := t.followUp(s.opts, s.state)
	if prev, exists := s.timers[key]; exists {
		prev.Stop()
		delete(s.timers, key)
	}
	if !ok {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.timers[key] != timer {
			return
		}
		delete(s.timers, key)
		reduce(&s.state, next)
	})
	s.timers[key] = timer
}

// State returns a snapshot that is safe to read without holding the lock
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Close cancels all pending timers. The store ignores further actions.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *Store) pendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
