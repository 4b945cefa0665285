package views

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/logging"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/notify"
)

var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrNoIssueSelected marks an action invoked without a target issue.
	ErrNoIssueSelected = errors.New("no issue selected")
	// ErrNotPermitted marks an action outside the viewer's role.
	ErrNotPermitted = errors.New("action not available for this role")
)

// permitted is the role→action matrix. Submit is student-only; resolve
// belongs to every escalation tier; forwarding and reclassification stop
// below the VC.
var permitted = map[models.Role]map[Action]struct{}{
	models.RoleStudent: {ActionSubmit: {}},
	models.RoleProctor: {ActionResolve: {}, ActionEscalate: {}, ActionReclassify: {}},
	models.RoleHOD:     {ActionResolve: {}, ActionEscalate: {}, ActionReclassify: {}},
	models.RoleVC:      {ActionResolve: {}},
	models.RoleAdmin:   {},
}

// Allowed reports whether the role may perform the action.
func Allowed(role models.Role, action Action) bool {
	_, ok := permitted[role][action]
	return ok
}

// ComplaintInput is the student submission form. Both fields are required;
// an empty submission is rejected client-side with no network call.
type ComplaintInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

// Actions executes the mutating operations of the role views. Every method
// validates its input, calls the gateway, and reports the outcome through
// the notification surface; on failure the remote state is left untouched.
type Actions struct {
	api      gateway.API
	validate *validator.Validate
	notifier notify.Notifier
	log      logging.Logger
}

func NewActions(api gateway.API, notifier notify.Notifier, log logging.Logger) *Actions {
	return &Actions{
		api:      api,
		validate: validator.New(),
		notifier: notifier,
		log:      log,
	}
}

func (a *Actions) guard(role models.Role, action Action, issueID int) error {
	if !Allowed(role, action) {
		a.notifier.Error("This action is not available for your role")
		return ErrNotPermitted
	}
	if action != ActionSubmit && issueID <= 0 {
		a.notifier.Error("Select an issue first")
		return ErrNoIssueSelected
	}
	return nil
}

// Resolve marks the issue verified and closed by the current user.
func (a *Actions) Resolve(ctx context.Context, sess models.Session, issueID int) error {
	if err := a.guard(sess.Role, ActionResolve, issueID); err != nil {
		return err
	}
	if _, err := a.api.VerifyIssue(ctx, issueID, sess.UserID, true); err != nil {
		a.log.Error(ctx, "resolve failed", "issue", issueID, "error", err)
		a.notifier.Error("Failed to resolve issue")
		return err
	}
	a.notifier.Success("Issue resolved successfully!")
	return nil
}

// Escalate forwards the issue to the next level, recorded as forwarded by
// the current user.
func (a *Actions) Escalate(ctx context.Context, sess models.Session, issueID int) error {
	if err := a.guard(sess.Role, ActionEscalate, issueID); err != nil {
		return err
	}
	if _, err := a.api.ForwardIssue(ctx, issueID, sess.UserID); err != nil {
		a.log.Error(ctx, "escalate failed", "issue", issueID, "error", err)
		a.notifier.Error("Failed to escalate issue")
		return err
	}
	a.notifier.Success("Issue escalated successfully!")
	return nil
}

// Reclassify asks the service to recompute the issue's category and
// priority.
func (a *Actions) Reclassify(ctx context.Context, sess models.Session, issueID int) error {
	if err := a.guard(sess.Role, ActionReclassify, issueID); err != nil {
		return err
	}
	if _, err := a.api.ClassifyIssue(ctx, issueID); err != nil {
		a.log.Error(ctx, "reclassify failed", "issue", issueID, "error", err)
		a.notifier.Error("Failed to re-classify issue")
		return err
	}
	a.notifier.Success("Issue re-classified successfully!")
	return nil
}

// Submit creates a new issue for the student. Validation failures surface
// inline and never reach the network.
func (a *Actions) Submit(ctx context.Context, sess models.Session, in ComplaintInput) error {
	if err := a.guard(sess.Role, ActionSubmit, 0); err != nil {
		return err
	}
	if err := a.validate.Struct(in); err != nil {
		a.notifier.Error("Title and description are required")
		return errors.Join(ErrValidation, err)
	}
	if _, err := a.api.CreateIssue(ctx, sess.UserID, in.Title, in.Description); err != nil {
		a.log.Error(ctx, "submit failed", "error", err)
		a.notifier.Error("Failed to submit complaint")
		return err
	}
	a.notifier.Success("Complaint submitted successfully!")
	return nil
}
