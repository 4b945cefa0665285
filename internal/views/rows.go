package views

import (
	"strconv"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/models"
)

// tableKind selects the column set for an issue table. The sets mirror the
// dashboards: active rows show the assignee, escalated rows show where the
// issue went, resolved rows show who verified it and when.
type tableKind int

const (
	kindActive tableKind = iota
	kindEscalated
	kindResolved
	kindFlat
	kindAdmin
)

func columnsFor(kind tableKind) []string {
	switch kind {
	case kindResolved:
		return []string{"ID", "Title", "Category", "Priority", "Status", "Raised By", "Verified By", "Verified At"}
	case kindEscalated:
		return []string{"ID", "Title", "Category", "Priority", "Status", "Raised By", "Forwarded To", "Created At"}
	case kindFlat:
		return []string{"ID", "Title", "Category", "Priority", "Status", "Created At"}
	case kindAdmin:
		return []string{"ID", "Title", "Status", "Raised By", "Created At"}
	default:
		return []string{"ID", "Title", "Category", "Priority", "Status", "Raised By", "Assigned To", "Created At"}
	}
}

func rowFor(kind tableKind, issue models.Issue, dir *directory.Cache) []string {
	id := strconv.Itoa(issue.ID)
	status := string(issue.StatusOrDefault())

	switch kind {
	case kindResolved:
		return []string{
			id, issue.Title, issue.CategoryOrDefault(), issue.PriorityOrDefault(), status,
			dir.Name(issue.StudentID, "Unknown"), dir.Name(issue.VerifiedBy, "-"), issue.VerifiedAt.Display(),
		}
	case kindEscalated:
		return []string{
			id, issue.Title, issue.CategoryOrDefault(), issue.PriorityOrDefault(), status,
			dir.Name(issue.StudentID, "Unknown"), dir.Name(issue.AssignedTo, "Unassigned"), issue.CreatedAt.Display(),
		}
	case kindFlat:
		return []string{
			id, issue.Title, issue.CategoryOrDefault(), issue.PriorityOrDefault(), status,
			issue.CreatedAt.Display(),
		}
	case kindAdmin:
		return []string{id, issue.Title, status, dir.Name(issue.StudentID, "Unknown"), issue.CreatedAt.Display()}
	default:
		return []string{
			id, issue.Title, issue.CategoryOrDefault(), issue.PriorityOrDefault(), status,
			dir.Name(issue.StudentID, "Unknown"), dir.Name(issue.AssignedTo, "Unassigned"), issue.CreatedAt.Display(),
		}
	}
}

// IssueTable decorates a bucket of issues into one renderable table,
// resolving user references to names through the directory cache.
func IssueTable(title string, kind tableKind, issues []models.Issue, dir *directory.Cache) Table {
	t := Table{Title: title, Columns: columnsFor(kind)}
	for _, issue := range issues {
		t.Rows = append(t.Rows, rowFor(kind, issue, dir))
	}
	return t
}

// FlatIssueTable is the undecorated listing used by the issues page.
func FlatIssueTable(title string, issues []models.Issue) Table {
	t := Table{Title: title, Columns: columnsFor(kindFlat)}
	for _, issue := range issues {
		t.Rows = append(t.Rows, rowFor(kindFlat, issue, nil))
	}
	return t
}
