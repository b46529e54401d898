package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var titleCaser = cases.Title(language.English)

// Register prompts for name, email, password and role and creates the
// account. An empty role answer means student. The user still has to log in
// afterwards.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (student/instructor) [student]", a.out)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleStudent)
	}

	if _, err := a.accounts.Register(ctx, name, email, password, models.Role(role)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return nil
}

// Login prompts for credentials, starts a session and loads the user's
// record, then shows the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	rec, err := a.records.Load(ctx, account.ID)
	if err != nil {
		return err
	}
	if _, err := a.sessions.Start(ctx, *account); err != nil {
		return err
	}
	a.record = rec

	fmt.Fprintf(a.out, "Welcome, %s!\n", account.FirstName())
	return a.Dashboard(ctx)
}

// Logout ends the session. Logging out without a session is not an error.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.End(ctx); err != nil {
		return err
	}
	a.record = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Roster lists every registered account. Only instructors may use it.
func (a *App) Roster(ctx context.Context) error {
	sess, err := a.current()
	if err != nil {
		return err
	}
	if sess.Account.Role != models.RoleInstructor {
		return common.ErrForbidden
	}
	accounts, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tROLE\tJOINED")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", acc.Name, acc.Email, titleCaser.String(string(acc.Role)), acc.CreatedAt.Format(time.DateOnly))
	}
	return tw.Flush()
}

func (a *App) WhoAmI(_ context.Context) error {
	sess, err := a.current()
	if err != nil {
		return err
	}
	acc := sess.Account
	fmt.Fprintf(a.out, "%s <%s>, %s\n", acc.Name, acc.Email, titleCaser.String(string(acc.Role)))
	return nil
}
