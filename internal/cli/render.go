package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/campusmind/client/internal/dispatch"
	"github.com/campusmind/client/internal/models"
	"github.com/campusmind/client/internal/views"
)

// TerminalRenderer draws view models as plain-text tables. It is the only
// rendering collaborator in the CLI; swapping it out does not touch any
// view logic.
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

var _ dispatch.Renderer = (*TerminalRenderer)(nil)

func (r *TerminalRenderer) RenderDashboard(d *views.Dashboard) {
	fmt.Fprintf(r.out, "\n== %s ==\n", d.Title)

	if d.Supervisor != "" {
		fmt.Fprintf(r.out, "Your proctor: %s\n", d.Supervisor)
	}

	for _, s := range d.Stats {
		fmt.Fprintf(r.out, "%s: %d\n", s.Label, s.Value)
	}

	for _, t := range d.Tables {
		r.printTable(t)
	}

	if len(d.Actions) > 0 && !d.HasComplaintForm {
		names := make([]string, 0, len(d.Actions))
		for _, action := range d.Actions {
			names = append(names, string(action)+" <id>")
		}
		fmt.Fprintf(r.out, "\nActions: %s\n", strings.Join(names, " | "))
	}
	if d.HasComplaintForm {
		fmt.Fprintln(r.out, "\nUse 'submit' to raise a new complaint.")
	}
}

func (r *TerminalRenderer) RenderIssues(t views.Table) {
	fmt.Fprintln(r.out)
	r.printTable(t)
}

func (r *TerminalRenderer) RenderProfile(p *dispatch.Profile) {
	fmt.Fprintln(r.out, "\n== Profile Information ==")
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", p.Name)
	fmt.Fprintf(w, "Email:\t%s\n", p.Email)
	fmt.Fprintf(w, "Role:\t%s\n", strings.ToUpper(p.Role))
	fmt.Fprintf(w, "Department:\t%s\n", p.Department)
	fmt.Fprintf(w, "Section:\t%s\n", p.Section)
	w.Flush()
}

func (r *TerminalRenderer) RenderError(page models.Page, msg string) {
	fmt.Fprintf(r.out, "\n[error] %s: %s\n", page, msg)
}

func (r *TerminalRenderer) printTable(t views.Table) {
	fmt.Fprintf(r.out, "\n-- %s --\n", t.Title)
	if len(t.Rows) == 0 {
		fmt.Fprintln(r.out, "(none)")
		return
	}
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
