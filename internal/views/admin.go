package views

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

// AdminView aggregates global statistics and the full issue list. It has
// no mutating actions.
type AdminView struct {
	api gateway.API
	dir *directory.Cache
}

func (v *AdminView) Role() models.Role { return models.RoleAdmin }

func (v *AdminView) Build(ctx context.Context, sess models.Session) (*Dashboard, error) {
	var (
		stats  models.AdminStats
		issues []models.Issue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = v.api.AdminStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = v.api.AdminIssues(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &Dashboard{
		Role:  models.RoleAdmin,
		Title: models.RoleAdmin.DashboardTitle(),
		Stats: []Stat{
			{Label: "Total Issues", Value: stats.Total},
			{Label: "Active Issues", Value: stats.Active},
			{Label: "Resolved Issues", Value: stats.Resolved},
		},
	}

	if len(stats.ByDepartment) > 0 {
		breakdown := Table{
			Title:   "Department Breakdown",
			Columns: []string{"Department", "Total", "Active", "Resolved"},
		}
		for _, dept := range stats.ByDepartment {
			breakdown.Rows = append(breakdown.Rows, []string{
				dept.DepartmentName,
				strconv.Itoa(dept.Total),
				strconv.Itoa(dept.Active),
				strconv.Itoa(dept.Resolved),
			})
		}
		d.Tables = append(d.Tables, breakdown)
	}

	d.Tables = append(d.Tables, IssueTable("All Issues", kindAdmin, issues, v.dir))

	return d, nil
}
