package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a string-keyed, string-valued persistent map.
//
// Get reports a missing key as ("", false, nil). Remove of a missing key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Transactional is implemented by stores that can apply several writes as
// one unit. fn receives a Store whose writes become visible only if fn
// returns nil.
type Transactional interface {
	InTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

// Atomically runs fn inside a transaction when s supports one, and directly
// against s otherwise.
func Atomically(ctx context.Context, s Store, fn func(ctx context.Context, tx Store) error) error {
	if t, ok := s.(Transactional); ok {
		return t.InTx(ctx, fn)
	}
	return fn(ctx, s)
}

// GetJSON decodes the value under key into v. It reports false without
// touching v when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores the JSON encoding of v under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
