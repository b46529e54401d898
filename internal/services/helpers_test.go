package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/academicnav/internal/cryptox"
	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/storage"
	"github.com/dmitrijs2005/academicnav/internal/storage/memory"
)

var errStoreDown = errors.New("store down")

// faultyStore fails writes to keys with the given prefix and can fail reads.
type faultyStore struct {
	inner       storage.Store
	failSetPfx  string
	failGetPfx  string
	setAttempts []string
}

func (f *faultyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGetPfx != "" && strings.HasPrefix(key, f.failGetPfx) {
		return "", false, errStoreDown
	}
	return f.inner.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key, value string) error {
	f.setAttempts = append(f.setAttempts, key)
	if f.failSetPfx != "" && strings.HasPrefix(key, f.failSetPfx) {
		return errStoreDown
	}
	return f.inner.Set(ctx, key, value)
}

func (f *faultyStore) Remove(ctx context.Context, key string) error {
	return f.inner.Remove(ctx, key)
}

// InTx keeps the fault injection active inside the transaction.
func (f *faultyStore) InTx(ctx context.Context, fn func(ctx context.Context, tx storage.Store) error) error {
	return storage.Atomically(ctx, f.inner, func(ctx context.Context, tx storage.Store) error {
		return fn(ctx, &faultyStore{inner: tx, failSetPfx: f.failSetPfx, failGetPfx: f.failGetPfx})
	})
}

var testHashParams = cryptox.Params{Time: 1, MemoryKiB: 1024, Threads: 1, KeyLen: 32}

type env struct {
	store    storage.Store
	accounts AccountService
	sessions SessionService
	records  RecordService
	progress ProgressService
	tracker  TrackerService
}

func newEnv(t *testing.T, store storage.Store) *env {
	t.Helper()
	if store == nil {
		store = memory.New()
	}
	logger := logging.Discard()
	records := NewRecordService(store, logger)
	return &env{
		store:    store,
		accounts: NewAccountService(store, cryptox.NewHasher(testHashParams), logger),
		sessions: NewSessionService(store, logger),
		records:  records,
		progress: NewProgressService(records),
		tracker:  NewTrackerService(store, logger),
	}
}
