package itinerary

import (
	"sync"
	"time"

	"trotter/trip"
)

// Store keeps the live builders, one per (user, trip). Builders are purely
// session-scoped editing state; an untouched builder is evicted after a
// while and the page simply starts fresh from the backend's data.

type Store struct {
	mu       sync.Mutex
	builders map[string]*Builder
	budgets  BudgetFetcher
	ttl      time.Duration
}

const builderTTL = 2 * time.Hour

func NewStore(budgets BudgetFetcher) *Store {
	s := &Store{
		builders: map[string]*Builder{},
		budgets:  budgets,
		ttl:      builderTTL,
	}
	go s.sweep()
	return s
}

func key(userID, tripID string) string { return userID + "|" + tripID }

// Get returns the user's builder for a trip, creating one if needed.
func (s *Store) Get(userID string, t trip.Trip) *Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(userID, t.ID)
	if b, ok := s.builders[k]; ok {
		return b
	}
	b := NewBuilder(t, s.budgets)
	s.builders[k] = b
	return b
}

// Find returns an existing builder without creating one.
func (s *Store) Find(userID, tripID string) (*Builder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builders[key(userID, tripID)]
	return b, ok
}

// Drop closes and forgets a builder, typically after a successful save.
func (s *Store) Drop(userID, tripID string) {
	s.mu.Lock()
	b, ok := s.builders[key(userID, tripID)]
	if ok {
		delete(s.builders, key(userID, tripID))
	}
	s.mu.Unlock()
	if ok {
		b.Close()
	}
}

// LookupPick finds the builder holding a pick token. Tokens are UUIDs, so a
// linear scan over the handful of live builders is fine.
func (s *Store) LookupPick(token string) (*Builder, PendingPick, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.builders {
		if p, ok := b.Pick(token); ok {
			return b, p, true
		}
	}
	return nil, PendingPick{}, false
}

func (s *Store) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		var stale []*Builder
		for k, b := range s.builders {
			b.mu.Lock()
			old := b.touched.Before(cutoff)
			b.mu.Unlock()
			if old {
				stale = append(stale, b)
				delete(s.builders, k)
			}
		}
		s.mu.Unlock()
		for _, b := range stale {
			b.Close()
		}
	}
}
