// Package dispatch resolves (current page, session role) to a render
// action. It is the error boundary for page loads: any fetch or build
// failure becomes a visible error state for that page and nothing else.
package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/logging"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/router"
	"github.com/campusmind/client/internal/views"
)

// Renderer is the drawing collaborator. It consumes plain view models;
// dispatch never cares how they end up on screen.
type Renderer interface {
	RenderDashboard(d *views.Dashboard)
	RenderIssues(t views.Table)
	RenderProfile(p *Profile)
	RenderError(page models.Page, msg string)
}

// Profile is the read-only profile page view model. Department and Section
// are already resolved to names ("-" when absent, "ID:<id>" when the
// lookup failed).
type Profile struct {
	Name       string
	Email      string
	Role       string
	Department string
	Section    string
}

// Dispatcher selects and invokes the correct role view for the current
// page.
type Dispatcher struct {
	api      gateway.API
	dir      *directory.Cache
	router   *router.Router
	renderer Renderer
	registry map[models.Role]views.View
	log      logging.Logger
}

func New(api gateway.API, dir *directory.Cache, r *router.Router, renderer Renderer, log logging.Logger) *Dispatcher {
	return &Dispatcher{
		api:      api,
		dir:      dir,
		router:   r,
		renderer: renderer,
		registry: views.Registry(api, dir),
		log:      log,
	}
}

// Dispatch renders the current page for the given session. It never
// returns an error: failures are contained as per-page error states.
func (d *Dispatcher) Dispatch(ctx context.Context, sess models.Session) {
	// Sessions persisted before role normalization may carry mixed case;
	// the registry and the admin gate both match on the canonical form.
	sess.Role = models.NormalizeRole(sess.Role)
	page := d.router.Current()

	switch page {
	case models.PageDashboard:
		d.renderRoleDashboard(ctx, sess)
	case models.PageIssues:
		d.renderIssuesPage(ctx, sess)
	case models.PageProfile:
		d.renderProfilePage(ctx, sess)
	case models.PageAdmin:
		// Unreachable for anyone but the admin, no matter how they got here.
		if sess.Role != models.RoleAdmin {
			d.log.Warn(ctx, "blocked admin page access", "role", sess.Role)
			return
		}
		d.renderRoleDashboard(ctx, sess)
	}
}

func (d *Dispatcher) renderRoleDashboard(ctx context.Context, sess models.Session) {
	view, ok := d.registry[sess.Role]
	if !ok {
		d.log.Error(ctx, "no view registered for role", "role", sess.Role)
		d.renderer.RenderError(d.router.Current(), "Failed to load dashboard")
		return
	}

	vm, err := view.Build(ctx, sess)
	if err != nil {
		d.log.Error(ctx, "dashboard build failed", "role", sess.Role, "error", err)
		d.renderer.RenderError(d.router.Current(), "Failed to load dashboard")
		return
	}
	d.renderer.RenderDashboard(vm)
}

func (d *Dispatcher) renderIssuesPage(ctx context.Context, sess models.Session) {
	issues, err := d.api.IssuesForUser(ctx, sess.UserID, true)
	if err != nil {
		d.log.Error(ctx, "issues page load failed", "error", err)
		d.renderer.RenderError(models.PageIssues, "Failed to load issues")
		return
	}
	d.renderer.RenderIssues(views.FlatIssueTable("All Issues", issues))
}

func (d *Dispatcher) renderProfilePage(ctx context.Context, sess models.Session) {
	var deptName, sectName string

	// Both lookups are fired together; each degrades to a placeholder on
	// its own, so the join never fails.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deptName = d.dir.DepartmentName(gctx, sess.DepartmentID)
		return nil
	})
	g.Go(func() error {
		sectName = d.dir.SectionName(gctx, sess.SectionID)
		return nil
	})
	_ = g.Wait()

	d.renderer.RenderProfile(&Profile{
		Name:       sess.Name,
		Email:      sess.Email,
		Role:       string(sess.Role),
		Department: deptName,
		Section:    sectName,
	})
}
