// Package views holds the per-role dashboard logic: fetching the issue set
// relevant to a role, partitioning it into active/escalated/resolved
// buckets and exposing the mutating actions available to that role. The
// output is a plain view model; drawing it is the renderer's problem.
package views

import (
	"context"
	"fmt"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

// Stat is one headline counter on a dashboard.
type Stat struct {
	Label string
	Value int
}

// Table is one titled table of already-decorated rows.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Action identifies a mutating operation a role may perform.
type Action string

const (
	ActionResolve    Action = "resolve"
	ActionEscalate   Action = "escalate"
	ActionReclassify Action = "reclassify"
	ActionSubmit     Action = "submit"
)

// Dashboard is the view model a role view produces for one render cycle.
type Dashboard struct {
	Role  models.Role
	Title string
	Stats []Stat

	// Tables in display order; empty buckets contribute no table.
	Tables []Table

	// Actions available to the viewer, and the issue ids they may target.
	Actions       []Action
	ActionableIDs []int

	// HasComplaintForm marks the student submission form.
	HasComplaintForm bool

	// Supervisor is the resolved name of the student's proctor, when known.
	Supervisor string
}

// View is one role-bound dashboard builder.
type View interface {
	Role() models.Role
	Build(ctx context.Context, sess models.Session) (*Dashboard, error)
}

// ForRole returns the View bound to the given role. Matching is
// case-insensitive; the switch is exhaustive over the closed role set.
func ForRole(role models.Role, api gateway.API, dir *directory.Cache) (View, error) {
	switch models.NormalizeRole(role) {
	case models.RoleStudent:
		return &StudentView{api: api, dir: dir}, nil
	case models.RoleProctor:
		return &ProctorView{api: api, dir: dir}, nil
	case models.RoleHOD:
		return &HODView{api: api, dir: dir}, nil
	case models.RoleVC:
		return &VCView{api: api, dir: dir}, nil
	case models.RoleAdmin:
		return &AdminView{api: api, dir: dir}, nil
	}
	return nil, fmt.Errorf("no view for role %q", role)
}

// Registry builds the full role→view map up front so dispatch never has to
// handle a missing view at render time.
func Registry(api gateway.API, dir *directory.Cache) map[models.Role]View {
	roles := []models.Role{models.RoleStudent, models.RoleProctor, models.RoleHOD, models.RoleVC, models.RoleAdmin}
	reg := make(map[models.Role]View, len(roles))
	for _, r := range roles {
		v, err := ForRole(r, api, dir)
		if err != nil {
			// The role set is closed; a miss here is a programming error.
			panic(err)
		}
		reg[r] = v
	}
	return reg
}

func issueIDs(issues []models.Issue) []int {
	ids := make([]int, 0, len(issues))
	for _, is := range issues {
		ids = append(ids, is.ID)
	}
	return ids
}
