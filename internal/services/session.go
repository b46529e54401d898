package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/models"
	"github.com/dmitrijs2005/academicnav/internal/storage"
)

// SessionService tracks the one authenticated identity of the process and
// mirrors it to storage so it survives a restart.
type SessionService interface {
	Start(ctx context.Context, account models.Account) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	End(ctx context.Context) error
	Current() *models.Session
}

type sessionService struct {
	store   storage.Store
	logger  logging.Logger
	current *models.Session
}

func NewSessionService(store storage.Store, logger logging.Logger) SessionService {
	return &sessionService{store: store, logger: logger}
}

// Start replaces any active session with one for account.
func (s *sessionService) Start(ctx context.Context, account models.Account) (*models.Session, error) {
	if err := storage.SetJSON(ctx, s.store, storage.SessionKey, account); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.current = &models.Session{Account: account}
	s.logger.Info(ctx, "session started", "account_id", account.ID)
	return s.current, nil
}

// Restore re-activates a persisted session. It returns (nil, nil) when none
// is stored.
func (s *sessionService) Restore(ctx context.Context) (*models.Session, error) {
	var account models.Account
	ok, err := storage.GetJSON(ctx, s.store, storage.SessionKey, &account)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	s.current = &models.Session{Account: account}
	s.logger.Info(ctx, "session restored", "account_id", account.ID)
	return s.current, nil
}

// End clears the active session and its persisted copy. Ending without a
// session is not an error.
func (s *sessionService) End(ctx context.Context) error {
	if err := s.store.Remove(ctx, storage.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if s.current != nil {
		s.logger.Info(ctx, "session ended", "account_id", s.current.Account.ID)
	}
	s.current = nil
	return nil
}

func (s *sessionService) Current() *models.Session {
	return s.current
}
