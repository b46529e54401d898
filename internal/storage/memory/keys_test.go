package memory

import (
	"context"
	"maps"
	"slices"
)

// Keys lists every stored key in order. Only tests inspect the whole map.
func (s *Store) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.data)), nil
}
