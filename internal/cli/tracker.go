package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mitchellh/go-wordwrap"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/models"
)

const (
	barWidth  = 10
	wrapWidth = 72
)

// Dashboard prints the progress report of the logged-in user.
func (a *App) Dashboard(ctx context.Context) error {
	sess, err := a.current()
	if err != nil {
		return err
	}
	report, err := a.progress.Compute(ctx, sess.AccountID(), a.record.Assignments)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Dashboard for %s\n", sess.Account.FirstName())
	fmt.Fprintf(a.out, "  Modules completed:     %d/%d\n", report.CompletedReflections, report.TotalReflections)
	fmt.Fprintf(a.out, "  Assignments completed: %d/%d\n", report.CompletedAssignments, report.TotalAssignments)
	fmt.Fprintf(a.out, "  Verifications:         %d/%d\n", report.CompletedReflections, report.TotalReflections)
	fmt.Fprintf(a.out, "  Overall progress:      %d%% (%.0f deg)\n", report.Overall, report.Degrees())
	for _, w := range report.Weeks {
		fmt.Fprintf(a.out, "  Week %d %s %3d%%\n", w.Week, bar(w.Percent), w.Percent)
	}
	fmt.Fprintln(a.out, report.Message())
	return nil
}

func bar(percent int) string {
	filled := percent * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

// Reflect collects the reflection text for the week named in args and
// submits it. An existing submission is shown first and is overwritten.
func (a *App) Reflect(ctx context.Context, args []string) error {
	sess, err := a.current()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: reflect <week>", common.ErrValidation)
	}
	week, err := strconv.Atoi(args[0])
	if err != nil || !models.ValidWeek(week) {
		return fmt.Errorf("%w: week must be between %d and %d", common.ErrValidation, models.FirstWeek, models.LastWeek)
	}

	prev, ok, err := a.records.Reflection(ctx, sess.AccountID(), week)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(a.out, "Current reflection for Week %d:\n%s\n", week, wordwrap.WrapString(prev, wrapWidth))
	}

	text, err := GetMultiline(a.reader, fmt.Sprintf("Enter your reflection for Week %d", week), a.out)
	if err != nil {
		return err
	}
	if err := a.tracker.SubmitReflection(ctx, sess.AccountID(), a.record, week, text); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Verification for Week %d submitted successfully!\n", week)
	return nil
}

// Reflections prints the submitted reflection of every week.
func (a *App) Reflections(ctx context.Context) error {
	sess, err := a.current()
	if err != nil {
		return err
	}
	texts, err := a.records.Reflections(ctx, sess.AccountID())
	if err != nil {
		return err
	}

	for week := models.FirstWeek; week <= models.LastWeek; week++ {
		text, ok := texts[week]
		if !ok {
			fmt.Fprintf(a.out, "Week %d: (not submitted)\n", week)
			continue
		}
		fmt.Fprintf(a.out, "Week %d:\n%s\n", week, indent(wordwrap.WrapString(text, wrapWidth), "  "))
	}
	return nil
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// Assignments prints the assignment table. Rows are numbered from 1.
func (a *App) Assignments(_ context.Context) error {
	if _, err := a.current(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tASSIGNMENT\tWEEK\tDUE\tSTATUS")
	for i, as := range a.record.Assignments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s [%s]\n", i+1, as.Name, as.Week, as.DueDate, as.Status, as.Status.Slug())
	}
	return tw.Flush()
}

// SetStatus updates assignment args[0] (1-based) to the status given by the
// remaining args. Input matching a known status case-insensitively is
// normalized to it.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	sess, err := a.current()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: usage: status <n> <status>", common.ErrValidation)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: assignment number must be an integer", common.ErrValidation)
	}
	status := normalizeStatus(strings.Join(args[1:], " "))

	if err := a.tracker.UpdateStatus(ctx, sess.AccountID(), a.record, n-1, status); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s is now %s.\n", a.record.Assignments[n-1].Name, status)
	return nil
}

func normalizeStatus(s string) models.Status {
	for _, k := range models.KnownStatuses {
		if strings.EqualFold(s, string(k)) {
			return k
		}
	}
	return models.Status(s)
}
