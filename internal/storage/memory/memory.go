// Package memory provides an in-process storage.Store. Contents are lost
// when the process exits.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrijs2005/academicnav/internal/storage"
)

type Store struct {
	mu   sync.Mutex
	data map[string]string
}

var _ storage.Store = (*Store)(nil)
var _ storage.Transactional = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// InTx runs fn against a staged copy and publishes it only if fn succeeds.
// Writes made to s by others while fn runs are overwritten on commit.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx storage.Store) error) error {
	s.mu.Lock()
	staged := &Store{data: maps.Clone(s.data)}
	s.mu.Unlock()

	if err := fn(ctx, staged); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = staged.data
	s.mu.Unlock()
	return nil
}
