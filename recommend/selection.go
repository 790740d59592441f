package recommend

import (
	"sync"
	"time"
)

// Selection is the activity set a user is assembling on the
// recommendations page. Toggling an id in and out is idempotent; the cost
// recorded at toggle time sticks, so an id that later drops out of the
// rendered catalog still counts toward the total.
type Selection struct {
	mu      sync.Mutex
	order   []string
	costs   map[string]float64
	created time.Time
}

func NewSelection() *Selection {
	return &Selection{costs: map[string]float64{}, created: time.Now()}
}

// Seed pre-loads a selection, used when a stop already has activities.
func (s *Selection) Seed(ids []string, costs map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if _, ok := s.costs[id]; ok || id == "" {
			continue
		}
		s.order = append(s.order, id)
		s.costs[id] = costs[id]
	}
}

// Toggle adds the id if absent, removes it if present.
func (s *Selection) Toggle(id string, cost float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.costs[id]; ok {
		delete(s.costs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.order = append(s.order, id)
	s.costs[id] = cost
}

func (s *Selection) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.costs[id]
	return ok
}

// IDs returns the selected ids in the order they were first picked.
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

func (s *Selection) Costs() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(s.costs))
	for k, v := range s.costs {
		out[k] = v
	}
	return out
}

func (s *Selection) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Total sums the recorded cost of every selected id.
func (s *Selection) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, v := range s.costs {
		sum += v
	}
	return sum
}
