package conference

import (
	"sort"
	"sync"
)

// Store is an in-memory conference registry. The lifecycle system (or
// the mock generator) writes conference state into it; the stats
// service reads it back through the Registry interface.
type Store struct {
	mu          sync.RWMutex
	conferences map[string]*State
}

func NewStore() *Store {
	return &Store{
		conferences: make(map[string]*State),
	}
}

func (s *Store) Get(id string) (*State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.conferences[id]
	if !ok {
		return nil, false
	}
	return st.Clone(), true
}

func (s *Store) GetAll() []*State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*State, 0, len(s.conferences))
	for _, st := range s.conferences {
		result = append(result, st.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *Store) Update(state *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conferences[state.ID] = state.Clone()
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conferences, id)
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conferences)
}

// Conferences implements Registry.
func (s *Store) Conferences() []Conference {
	states := s.GetAll()
	result := make([]Conference, len(states))
	for i, st := range states {
		result[i] = st
	}
	return result
}
