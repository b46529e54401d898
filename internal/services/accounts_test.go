package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/models"
	"github.com/dmitrijs2005/academicnav/internal/storage"
	"github.com/dmitrijs2005/academicnav/internal/storage/memory"
)

func TestRegister_ThenAuthenticate(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	people := []struct{ name, email, secret string }{
		{"Ada Lovelace", "ada@uni.edu", "engine"},
		{"Alan Turing", "alan@uni.edu", "enigma"},
	}
	ids := map[string]string{}
	for _, p := range people {
		acc, err := e.accounts.Register(ctx, p.name, p.email, []byte(p.secret), models.RoleStudent)
		require.NoError(t, err)
		ids[p.email] = acc.ID
	}

	for _, p := range people {
		acc, err := e.accounts.Authenticate(ctx, p.email, []byte(p.secret))
		require.NoError(t, err)
		assert.Equal(t, ids[p.email], acc.ID)
		assert.Equal(t, p.name, acc.Name)

		_, err = e.accounts.Authenticate(ctx, p.email, []byte(p.secret+"x"))
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	}
}

func TestRegister_StoresHashNotSecret(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	acc, err := e.accounts.Register(ctx, "  Ada  ", " ada@uni.edu ", []byte("engine"), models.RoleInstructor)
	require.NoError(t, err)

	assert.Equal(t, "Ada", acc.Name)
	assert.Equal(t, "ada@uni.edu", acc.Email)
	assert.Equal(t, models.RoleInstructor, acc.Role)
	assert.NotEmpty(t, acc.Salt)
	assert.Len(t, acc.SecretHash, 64)
	assert.NotContains(t, acc.SecretHash, "engine")

	raw, ok, err := e.store.Get(ctx, storage.UsersKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, `"engine"`)
}

func TestRegister_AssignsTimeOrderedID(t *testing.T) {
	e := newEnv(t, nil)
	acc, err := e.accounts.Register(context.Background(), "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)

	id, err := uuid.Parse(acc.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestRegister_UsesClock(t *testing.T) {
	e := newEnv(t, nil)
	svc := e.accounts.(*accountService)
	fixed := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	acc, err := svc.Register(context.Background(), "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, fixed, acc.CreatedAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.accounts.Register(ctx, "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)

	_, err = e.accounts.Register(ctx, "Other Ada", "ada@uni.edu", []byte("different"), models.RoleStudent)
	require.ErrorIs(t, err, common.ErrDuplicateAccount)

	accounts, err := e.accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.accounts.Register(ctx, "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)
	_, err = e.accounts.Register(ctx, "ADA", "ADA@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)

	_, err = e.accounts.Authenticate(ctx, "Ada@uni.edu", []byte("engine"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_ValidationLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name, email, secret string
		role                models.Role
	}{
		{"", "a@b.c", "abcd", models.RoleStudent},
		{"Ada", "", "abcd", models.RoleStudent},
		{"Ada", "a@b.c", "", models.RoleStudent},
		{"Ada", "not-an-email", "abcd", models.RoleStudent},
		{"Ada", "a@b.c", "abc", models.RoleStudent},
		{"Ada", "a@b.c", "abcd", models.Role("")},
	}
	for _, tt := range tests {
		t.Run(tt.name+"|"+tt.email+"|"+tt.secret, func(t *testing.T) {
			fs := &faultyStore{inner: memory.New()}
			e := newEnv(t, fs)
			ctx := context.Background()

			_, err := e.accounts.Register(ctx, tt.name, tt.email, []byte(tt.secret), tt.role)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Empty(t, fs.setAttempts, "nothing is written on invalid input")
		})
	}
}

func TestRegister_InitializesRecord(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	acc, err := e.accounts.Register(ctx, "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)

	_, ok, err := e.store.Get(ctx, storage.UserDataKey(acc.ID))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_RecordWriteFailureRollsBackAccount(t *testing.T) {
	fs := &faultyStore{inner: memory.New(), failSetPfx: "userData_"}
	e := newEnv(t, fs)
	ctx := context.Background()

	_, err := e.accounts.Register(ctx, "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.ErrorIs(t, err, errStoreDown)

	accounts, err := e.accounts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts, "account must not be stored without its record")
}

func TestRegister_IDGeneratorFailure(t *testing.T) {
	e := newEnv(t, nil)
	svc := e.accounts.(*accountService)
	svc.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("clock") }

	_, err := svc.Register(context.Background(), "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.ErrorContains(t, err, "generate account id")
}

func TestAuthenticate_UnknownEmailLooksLikeWrongSecret(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	_, err := e.accounts.Register(ctx, "Ada", "ada@uni.edu", []byte("engine"), models.RoleStudent)
	require.NoError(t, err)

	_, errUnknown := e.accounts.Authenticate(ctx, "nobody@uni.edu", []byte("engine"))
	_, errWrong := e.accounts.Authenticate(ctx, "ada@uni.edu", []byte("wrong"))

	require.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, common.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthenticate_EmptyInput(t *testing.T) {
	e := newEnv(t, nil)

	_, err := e.accounts.Authenticate(context.Background(), "  ", []byte("engine"))
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = e.accounts.Authenticate(context.Background(), "ada@uni.edu", nil)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestAuthenticate_StoreErrorPropagates(t *testing.T) {
	fs := &faultyStore{inner: memory.New(), failGetPfx: storage.UsersKey}
	e := newEnv(t, fs)

	_, err := e.accounts.Authenticate(context.Background(), "ada@uni.edu", []byte("engine"))
	require.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}
