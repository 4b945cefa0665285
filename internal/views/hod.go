package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

// HODView is the department-level escalation tier. Same queue mechanics as
// the proctor, without the student roster.
type HODView struct {
	api gateway.API
	dir *directory.Cache
}

func (v *HODView) Role() models.Role { return models.RoleHOD }

func (v *HODView) Build(ctx context.Context, sess models.Session) (*Dashboard, error) {
	var open, history []models.Issue

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
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := Partition(open, history, sess.UserID)

	d := &Dashboard{
		Role:  models.RoleHOD,
		Title: models.RoleHOD.DashboardTitle(),
		Stats: []Stat{
			{Label: "Active Complaints", Value: len(buckets.Active)},
			{Label: "Escalated", Value: len(buckets.Escalated)},
			{Label: "Resolved", Value: len(buckets.Resolved)},
		},
		Actions:       []Action{ActionResolve, ActionEscalate, ActionReclassify},
		ActionableIDs: issueIDs(buckets.Active),
	}

	d.Tables = append(d.Tables, IssueTable("Active Complaints", kindActive, buckets.Active, v.dir))
	if len(buckets.Escalated) > 0 {
		d.Tables = append(d.Tables, IssueTable("Escalated Complaints", kindEscalated, buckets.Escalated, v.dir))
	}
	if len(buckets.Resolved) > 0 {
		d.Tables = append(d.Tables, IssueTable("Resolved Complaints", kindResolved, buckets.Resolved, v.dir))
	}

	return d, nil
}
