package permission

import (
	"context"
	"slices"
	"sync"
)

// memoryStore is an in-memory Store for tests and local development. It is
// thread-safe and deep-copies groups on the way in and out, matching the
// independent-copy contract of real document stores.
type memoryStore struct {
	mu     sync.RWMutex
	groups map[string]Group
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{groups: make(map[string]Group)}
}

func (s *memoryStore) CreateGroup(ctx context.Context, group Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.Name]; ok {
		return ErrAlreadyExists
	}
	s.groups[group.Name] = cloneGroup(group)
	return nil
}

func (s *memoryStore) GetGroupByName(ctx context.Context, name string) (Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, ok := s.groups[name]
	if !ok {
		return Group{}, ErrNotFound
	}
	return cloneGroup(group), nil
}

func (s *memoryStore) ListGroups(ctx context.Context) ([]Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]Group, 0, len(s.groups))
	for _, group := range s.groups {
		groups = append(groups, cloneGroup(group))
	}
	slices.SortFunc(groups, func(a, b Group) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return groups, nil
}

func (s *memoryStore) ReplaceGroup(ctx context.Context, group Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[group.Name]; !ok {
		return ErrNotFound
	}
	s.groups[group.Name] = cloneGroup(group)
	return nil
}

func (s *memoryStore) DeleteGroup(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[name]; !ok {
		return ErrNotFound
	}
	delete(s.groups, name)
	return nil
}
