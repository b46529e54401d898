package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/models"
	"github.com/dmitrijs2005/academicnav/internal/services"
)

// Services bundles the domain services the App drives.
type Services struct {
	Accounts services.AccountService
	Sessions services.SessionService
	Records  services.RecordService
	Progress services.ProgressService
	Tracker  services.TrackerService
}

type App struct {
	accounts services.AccountService
	sessions services.SessionService
	records  services.RecordService
	progress services.ProgressService
	tracker  services.TrackerService
	logger   logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// record is the working copy of the logged-in user's record.
	record *models.UserRecord
}

func NewApp(svc Services, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		accounts: svc.Accounts,
		sessions: svc.Sessions,
		records:  svc.Records,
		progress: svc.Progress,
		tracker:  svc.Tracker,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run restores a persisted session, if any, and serves commands until the
// user exits or input ends. A session that cannot be restored is discarded
// and the user starts logged out.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Academic Navigator (type 'help' for commands)")

	if err := a.restore(ctx); err != nil {
		a.logger.Warn(ctx, "discarding unusable session", "error", err)
		a.record = nil
		if err := a.sessions.End(ctx); err != nil {
			a.logger.Error(ctx, "clear session", "error", err)
		}
		fmt.Fprintln(a.out, "Your previous session could not be restored. Please log in again.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	a.logger.Debug(ctx, "repl finished")
	return nil
}

func (a *App) restore(ctx context.Context) error {
	sess, err := a.sessions.Restore(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}
	rec, err := a.records.Load(ctx, sess.AccountID())
	if err != nil {
		return err
	}
	a.record = rec
	fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.Account.FirstName())
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil && a.record != nil
}

// current returns the active session or ErrNotLoggedIn.
func (a *App) current() (*models.Session, error) {
	sess := a.sessions.Current()
	if sess == nil || a.record == nil {
		return nil, common.ErrNotLoggedIn
	}
	return sess, nil
}

func (a *App) getStatus() string {
	sess := a.sessions.Current()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", sess.Account.FirstName())
}
