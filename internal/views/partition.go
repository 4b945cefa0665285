package views

import (
	"github.com/campusmind/client/internal/models"
)

// Buckets is the client-side partitioning of a viewer's issues. For a
// fixed viewer every fetched issue lands in exactly one bucket.
type Buckets struct {
	// Active: not closed and not forwarded upward by the viewer.
	Active []models.Issue
	// Escalated: forwarded upward by the viewer and awaiting the next level.
	Escalated []models.Issue
	// Resolved: closed, taken from the include-resolved fetch.
	Resolved []models.Issue
}

// Partition buckets the two fetches a role view performs: open is the
// non-resolved set, history the include-resolved set for the same viewer.
// The escalation marker is purely the forwarded_by field matching the
// viewer; status transitions themselves are the service's business.
func Partition(open, history []models.Issue, viewerID int) Buckets {
	var b Buckets

	seen := make(map[int]struct{}, len(open))
	for _, issue := range open {
		seen[issue.ID] = struct{}{}
		switch {
		case issue.ForwardedByUser(viewerID):
			b.Escalated = append(b.Escalated, issue)
		case issue.StatusOrDefault() != models.StatusClosed:
			b.Active = append(b.Active, issue)
		default:
			// The non-resolved fetch should not contain closed issues,
			// but a closed one still needs a bucket.
			b.Resolved = append(b.Resolved, issue)
		}
	}

	for _, issue := range history {
		if issue.StatusOrDefault() != models.StatusClosed {
			continue
		}
		if _, dup := seen[issue.ID]; dup {
			continue
		}
		b.Resolved = append(b.Resolved, issue)
	}

	return b
}
