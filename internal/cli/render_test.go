package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusmind/client/internal/dispatch"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/views"
)

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.RenderDashboard(&views.Dashboard{
		Role:  models.RoleProctor,
		Title: "Proctor Dashboard",
		Stats: []views.Stat{{Label: "Active Complaints", Value: 2}},
		Tables: []views.Table{{
			Title:   "Active Complaints",
			Columns: []string{"ID", "Title"},
			Rows:    [][]string{{"1", "Broken projector"}},
		}},
		Actions: []views.Action{views.ActionResolve, views.ActionEscalate},
	})

	out := buf.String()
	assert.Contains(t, out, "== Proctor Dashboard ==")
	assert.Contains(t, out, "Active Complaints: 2")
	assert.Contains(t, out, "Broken projector")
	assert.Contains(t, out, "resolve <id> | escalate <id>")
	assert.NotContains(t, out, "submit")
}

func TestRenderDashboard_StudentFormHint(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.RenderDashboard(&views.Dashboard{
		Role:             models.RoleStudent,
		Title:            "Student Dashboard",
		Actions:          []views.Action{views.ActionSubmit},
		HasComplaintForm: true,
		Supervisor:       "Prof. Dale",
	})

	out := buf.String()
	assert.Contains(t, out, "Your proctor: Prof. Dale")
	assert.Contains(t, out, "Use 'submit' to raise a new complaint.")
	assert.NotContains(t, out, "submit <id>")
}

func TestRenderEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.RenderIssues(views.Table{Title: "All Issues", Columns: []string{"ID"}})

	out := buf.String()
	assert.Contains(t, out, "-- All Issues --")
	assert.Contains(t, out, "(none)")
}

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.RenderProfile(&dispatch.Profile{
		Name:       "Ana",
		Email:      "ana@campus.edu",
		Role:       "student",
		Department: "Engineering",
		Section:    "-",
	})

	out := buf.String()
	assert.Contains(t, out, "== Profile Information ==")
	assert.Contains(t, out, "STUDENT")
	assert.Contains(t, out, "Engineering")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.RenderError(models.PageDashboard, "Failed to load dashboard")

	assert.Equal(t, "\n[error] dashboard: Failed to load dashboard\n", buf.String())
}
