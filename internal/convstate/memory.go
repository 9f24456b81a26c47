package convstate

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps contexts in process memory. Expiry is lazy: a context
// older than the TTL is deleted on the Get that observes it, so no sweeper
// goroutine is needed for the traffic volumes a single salon chain sees.
type MemoryStore struct {
	mu       sync.Mutex
	contexts map[string]*Context
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore creates an in-memory store with the given TTL; zero means
// DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		contexts: make(map[string]*Context),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the user's live context, or nil when absent or expired.
func (s *MemoryStore) Get(_ context.Context, phone string) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.contexts[phone]
	if !ok {
		return nil, nil
	}
	if s.now().Sub(state.UpdatedAt) > s.ttl {
		delete(s.contexts, phone)
		return nil, nil
	}
	cp := *state
	return &cp, nil
}

// Set stores the context, stamping UpdatedAt and, for new contexts,
// CreatedAt.
func (s *MemoryStore) Set(_ context.Context, state *Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cp := *state
	cp.UpdatedAt = now
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	s.contexts[cp.Phone] = &cp
	return nil
}

// Clear removes the user's context.
func (s *MemoryStore) Clear(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, phone)
	return nil
}

// Len reports how many contexts are held, including any not yet reaped.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}
