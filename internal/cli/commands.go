package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/views"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing; they point at the interactive input helpers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

func (a *App) isLoggedIn() bool {
	return a.sessions.IsActive()
}

func (a *App) Touch() {
	a.sessions.Touch()
}

// Login prompts for credentials and authenticates against the service.
// Failures keep the user on the login prompt with an inline message; no
// session is saved.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if email == "" || password == "" {
		fmt.Fprintln(a.out, "Email and password are required.")
		return views.ErrValidation
	}

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, loginErrorMessage(err, a.cfg.BaseURL))
		return err
	}

	sess := models.NewSession(user)
	if err := a.sessions.Save(ctx, sess); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
		return err
	}

	a.dir.Refresh(ctx)
	a.notifier.Success("Login successful!")
	a.rtr.Navigate(models.PageDashboard)
	return nil
}

// loginErrorMessage mirrors the login form's inline error composition:
// protocol errors surface the extracted detail, transport errors name the
// configured backend address. The trailing hint is appended to every
// variant.
func loginErrorMessage(err error, baseURL string) string {
	const hint = " Please check your credentials and ensure the backend is running."
	if errors.Is(err, gateway.ErrUnreachable) {
		return "Cannot connect to backend. Make sure the server is running on " + baseURL + hint
	}
	return err.Error() + hint
}

// Logout explicitly ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Show navigates to the named page. The page-change listener re-renders.
func (a *App) Show(ctx context.Context, page string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}
	if !a.rtr.Navigate(models.Page(page)) {
		fmt.Fprintln(a.out, "Unknown page:", page)
	}
	return nil
}

// Refresh re-renders the current page without navigating.
func (a *App) Refresh(ctx context.Context) error {
	sess := a.sessions.Current()
	if sess == nil {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}
	a.dispatcher.Dispatch(ctx, *sess)
	return nil
}

// Submit prompts for a new complaint and files it.
func (a *App) Submit(ctx context.Context) error {
	sess := a.sessions.Current()
	if sess == nil {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Complaint title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Describe your complaint", a.out)
	if err != nil {
		return err
	}

	in := views.ComplaintInput{Title: title, Description: description}
	if err := a.actions.Submit(ctx, *sess, in); err != nil {
		return err
	}

	a.refreshAfterAction(ctx)
	return nil
}

// Resolve marks the given issue verified and closed.
func (a *App) Resolve(ctx context.Context, arg string) error {
	return a.issueAction(ctx, arg, "resolve", a.actions.Resolve)
}

// Escalate forwards the given issue to the next level.
func (a *App) Escalate(ctx context.Context, arg string) error {
	return a.issueAction(ctx, arg, "escalate", a.actions.Escalate)
}

// Reclassify asks the service to recompute category and priority.
func (a *App) Reclassify(ctx context.Context, arg string) error {
	return a.issueAction(ctx, arg, "reclassify", a.actions.Reclassify)
}

func (a *App) issueAction(ctx context.Context, arg, name string, fn func(context.Context, models.Session, int) error) error {
	sess := a.sessions.Current()
	if sess == nil {
		fmt.Fprintln(a.out, "Please login first.")
		return nil
	}

	issueID, err := strconv.Atoi(arg)
	if err != nil || issueID <= 0 {
		fmt.Fprintf(a.out, "Usage: %s <issue id>\n", name)
		return views.ErrNoIssueSelected
	}

	if err := fn(ctx, *sess, issueID); err != nil {
		return err
	}

	a.refreshAfterAction(ctx)
	return nil
}

// refreshAfterAction re-renders the active view after the configured
// delay, giving the service's side effects (re-assignment, status
// transitions) time to settle.
func (a *App) refreshAfterAction(ctx context.Context) {
	a.sleep(a.cfg.RefreshDelay)
	if sess := a.sessions.Current(); sess != nil {
		a.dispatcher.Dispatch(ctx, *sess)
	}
}
