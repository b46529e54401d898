package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/cryptox"
	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/models"
	"github.com/dmitrijs2005/academicnav/internal/storage"
	"github.com/dmitrijs2005/academicnav/internal/validation"
)

// AccountService is the credential store.
//
// Contract:
//   - Register: validate input, reject a taken email, hash the secret, append
//     the account and initialize its record in one atomic write.
//   - Authenticate: return the account whose email and secret both match.
//     Unknown email and wrong secret yield the same ErrInvalidCredentials.
type AccountService interface {
	Register(ctx context.Context, name, email string, secret []byte, role models.Role) (*models.Account, error)
	Authenticate(ctx context.Context, email string, secret []byte) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
}

type accountService struct {
	store   storage.Store
	hasher  *cryptox.Hasher
	logger  logging.Logger
	records func(s storage.Store) RecordService
	now     func() time.Time
	newID   func() (uuid.UUID, error)
}

// NewAccountService returns the credential store backed by store.
func NewAccountService(store storage.Store, hasher *cryptox.Hasher, logger logging.Logger) AccountService {
	return &accountService{
		store:  store,
		hasher: hasher,
		logger: logger,
		records: func(s storage.Store) RecordService {
			return NewRecordService(s, logger)
		},
		now:   time.Now,
		newID: uuid.NewV7,
	}
}

func (a *accountService) List(ctx context.Context) ([]models.Account, error) {
	return loadAccounts(ctx, a.store)
}

func (a *accountService) Register(ctx context.Context, name, email string, secret []byte, role models.Role) (*models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validation.Check(validation.Registration{
		Name: name, Email: email, Secret: string(secret), Role: string(role),
	}); err != nil {
		return nil, err
	}

	accounts, err := loadAccounts(ctx, a.store)
	if err != nil {
		return nil, err
	}
	if _, ok := findByEmail(accounts, email); ok {
		return nil, fmt.Errorf("%w: %s", common.ErrDuplicateAccount, email)
	}

	id, err := a.newID()
	if err != nil {
		return nil, fmt.Errorf("generate account id: %w", err)
	}
	salt, err := a.hasher.NewSalt()
	if err != nil {
		return nil, err
	}
	hash, err := a.hasher.Hash(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	account := models.Account{
		ID:         id.String(),
		Name:       name,
		Email:      email,
		SecretHash: hash,
		Salt:       salt,
		Role:       role,
		CreatedAt:  a.now().UTC(),
	}

	err = storage.Atomically(ctx, a.store, func(ctx context.Context, tx storage.Store) error {
		current, err := loadAccounts(ctx, tx)
		if err != nil {
			return err
		}
		if _, ok := findByEmail(current, email); ok {
			return fmt.Errorf("%w: %s", common.ErrDuplicateAccount, email)
		}
		if err := storage.SetJSON(ctx, tx, storage.UsersKey, append(current, account)); err != nil {
			return err
		}
		_, err = a.records(tx).Initialize(ctx, account.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "account registered", "account_id", account.ID, "role", account.Role)
	return &account, nil
}

func (a *accountService) Authenticate(ctx context.Context, email string, secret []byte) (*models.Account, error) {
	email = strings.TrimSpace(email)
	if err := validation.Check(validation.Login{Email: email, Secret: string(secret)}); err != nil {
		return nil, err
	}

	accounts, err := loadAccounts(ctx, a.store)
	if err != nil {
		return nil, err
	}

	account, ok := findByEmail(accounts, email)
	if !ok {
		// burn the same hashing cost so timing does not reveal unknown emails
		if salt, err := a.hasher.NewSalt(); err == nil {
			_, _ = a.hasher.Hash(secret, salt)
		}
		return nil, common.ErrInvalidCredentials
	}
	if !a.hasher.Verify(secret, account.Salt, account.SecretHash) {
		return nil, common.ErrInvalidCredentials
	}

	a.logger.Info(ctx, "account authenticated", "account_id", account.ID)
	return &account, nil
}

func loadAccounts(ctx context.Context, s storage.Store) ([]models.Account, error) {
	var accounts []models.Account
	if _, err := storage.GetJSON(ctx, s, storage.UsersKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// findByEmail matches emails exactly, case included.
func findByEmail(accounts []models.Account, email string) (models.Account, bool) {
	for _, acc := range accounts {
		if acc.Email == email {
			return acc, true
		}
	}
	return models.Account{}, false
}
