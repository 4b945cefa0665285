package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

// StudentView shows a student their own complaints and the submission
// form. The student's supervisor is looked up directly when the session
// carries a reports_to reference.
type StudentView struct {
	api gateway.API
	dir *directory.Cache
}

func (v *StudentView) Role() models.Role { return models.RoleStudent }

func (v *StudentView) Build(ctx context.Context, sess models.Session) (*Dashboard, error) {
	var (
		open       []models.Issue
		history    []models.Issue
		supervisor models.User
		hasSuper   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		open, err = v.api.IssuesForUser(gctx, sess.UserID, false)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = v.api.IssuesForUser(gctx, sess.UserID, true)
		return err
	})
	if sess.ReportsTo != nil {
		reportsTo := *sess.ReportsTo
		g.Go(func() error {
			var err error
			supervisor, err = v.api.User(gctx, reportsTo)
			hasSuper = err == nil
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := Partition(open, history, sess.UserID)

	d := &Dashboard{
		Role:  models.RoleStudent,
		Title: models.RoleStudent.DashboardTitle(),
		Stats: []Stat{
			{Label: "Active Complaints", Value: len(buckets.Active)},
			{Label: "Resolved", Value: len(buckets.Resolved)},
		},
		Actions:          []Action{ActionSubmit},
		HasComplaintForm: true,
	}
	if hasSuper {
		d.Supervisor = supervisor.Name
	}

	d.Tables = append(d.Tables, IssueTable("Your Complaints", kindActive, buckets.Active, v.dir))
	if len(buckets.Resolved) > 0 {
		d.Tables = append(d.Tables, IssueTable("Resolved Complaints", kindResolved, buckets.Resolved, v.dir))
	}

	return d, nil
}
