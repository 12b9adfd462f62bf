package collector

import (
	"container/list"
	"context"
	"slices"
	"sync"
)

// DefaultCapacity is the number of profiles a MemoryStore keeps by default.
const DefaultCapacity = 100

// MemoryStore keeps the most recently used profiles in memory.
type MemoryStore struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

// NewMemoryStore creates a store holding up to capacity profiles.
// A non-positive capacity uses DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

func (s *MemoryStore) Save(_ context.Context, p Profile) error {
	if p.Token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[p.Token]; ok {
		elem.Value = p
		s.eviction.MoveToFront(elem)
		return nil
	}

	s.items[p.Token] = s.eviction.PushFront(p)
	if s.eviction.Len() > s.capacity {
		oldest := s.eviction.Back()
		s.eviction.Remove(oldest)
		delete(s.items, oldest.Value.(Profile).Token)
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[token]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	s.eviction.MoveToFront(elem)
	return elem.Value.(Profile), nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]Profile, error) {
	s.mu.Lock()
	profiles := make([]Profile, 0, s.eviction.Len())
	for elem := s.eviction.Front(); elem != nil; elem = elem.Next() {
		profiles = append(profiles, elem.Value.(Profile))
	}
	s.mu.Unlock()

	slices.SortStableFunc(profiles, func(a, b Profile) int { return b.Time.Compare(a.Time) })
	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}

// Len returns the number of stored profiles.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eviction.Len()
}
