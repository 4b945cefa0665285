package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

// ProctorView is the first escalation level: it works the active queue,
// tracks what it already pushed upward, and counts the students reporting
// to the viewer.
type ProctorView struct {
	api gateway.API
	dir *directory.Cache
}

func (v *ProctorView) Role() models.Role { return models.RoleProctor }

func (v *ProctorView) Build(ctx context.Context, sess models.Session) (*Dashboard, error) {
	var open, history []models.Issue

	// Issue fetches and the directory refresh are issued together; the
	// dashboard renders once, when all inputs are ready.
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
	g.Go(func() error {
		v.dir.Refresh(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := Partition(open, history, sess.UserID)

	students := 0
	for _, u := range v.dir.All() {
		if u.Role == models.RoleStudent && u.ReportsTo != nil && *u.ReportsTo == sess.UserID {
			students++
		}
	}

	d := &Dashboard{
		Role:  models.RoleProctor,
		Title: models.RoleProctor.DashboardTitle(),
		Stats: []Stat{
			{Label: "Active Complaints", Value: len(buckets.Active)},
			{Label: "Escalated", Value: len(buckets.Escalated)},
			{Label: "Resolved", Value: len(buckets.Resolved)},
			{Label: "Students", Value: students},
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
