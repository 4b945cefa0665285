package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

// VCView is the final escalation tier. Everything in its queue was pushed
// up from below, so the active bucket is presented as escalated complaints
// and resolve is the only action.
type VCView struct {
	api gateway.API
	dir *directory.Cache
}

func (v *VCView) Role() models.Role { return models.RoleVC }

func (v *VCView) Build(ctx context.Context, sess models.Session) (*Dashboard, error) {
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

	// The VC queue is the whole non-resolved fetch, in fetch order. There
	// is no level above to forward to, so the forwarded-by split the lower
	// tiers use does not apply here.
	var queue []models.Issue
	for _, is := range open {
		if is.StatusOrDefault() != models.StatusClosed {
			queue = append(queue, is)
		}
	}
	buckets := Partition(open, history, sess.UserID)

	d := &Dashboard{
		Role:  models.RoleVC,
		Title: models.RoleVC.DashboardTitle(),
		Stats: []Stat{
			{Label: "Escalated Complaints", Value: len(queue)},
			{Label: "Resolved", Value: len(buckets.Resolved)},
		},
		Actions:       []Action{ActionResolve},
		ActionableIDs: issueIDs(queue),
	}

	d.Tables = append(d.Tables, IssueTable("Escalated Complaints", kindActive, queue, v.dir))
	if len(buckets.Resolved) > 0 {
		d.Tables = append(d.Tables, IssueTable("Resolved Complaints", kindResolved, buckets.Resolved, v.dir))
	}

	return d, nil
}
