package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmind/client/internal/models"
)

func intPtr(v int) *int { return &v }

func issue(id int, status models.IssueStatus, forwardedBy *int) models.Issue {
	return models.Issue{ID: id, Title: "t", Status: status, ForwardedBy: forwardedBy}
}

func TestPartition_Buckets(t *testing.T) {
	viewer := 7
	open := []models.Issue{
		issue(1, models.StatusOpen, nil),
		issue(2, models.StatusAssigned, intPtr(viewer)),
		issue(3, models.StatusEscalated, intPtr(99)),
		issue(4, models.StatusAssigned, nil),
	}
	history := []models.Issue{
		issue(1, models.StatusOpen, nil),
		issue(5, models.StatusClosed, nil),
		issue(6, models.StatusClosed, intPtr(viewer)),
	}

	b := Partition(open, history, viewer)

	assert.Equal(t, []int{1, 3, 4}, ids(b.Active))
	assert.Equal(t, []int{2}, ids(b.Escalated))
	assert.Equal(t, []int{5, 6}, ids(b.Resolved))
}

// Every fetched issue lands in exactly one bucket under a fixed viewer.
func TestPartition_ExhaustiveAndDisjoint(t *testing.T) {
	viewer := 3
	open := []models.Issue{
		issue(1, models.StatusOpen, nil),
		issue(2, models.StatusAssigned, intPtr(viewer)),
		issue(3, models.StatusEscalated, intPtr(8)),
		issue(4, models.StatusClosed, nil), // defensive: closed leaking into the open fetch
		issue(5, models.StatusResolved, nil),
	}
	history := []models.Issue{
		issue(1, models.StatusOpen, nil), // non-closed history rows are ignored
		issue(6, models.StatusClosed, nil),
		issue(4, models.StatusClosed, nil), // duplicate of an open row
	}

	b := Partition(open, history, viewer)

	seen := map[int]int{}
	for _, is := range b.Active {
		seen[is.ID]++
	}
	for _, is := range b.Escalated {
		seen[is.ID]++
	}
	for _, is := range b.Resolved {
		seen[is.ID]++
	}

	wantIDs := []int{1, 2, 3, 4, 5, 6}
	require.Len(t, seen, len(wantIDs))
	for _, id := range wantIDs {
		assert.Equal(t, 1, seen[id], "issue %d must land in exactly one bucket", id)
	}
}

func TestPartition_EscalationIsViewerSpecific(t *testing.T) {
	open := []models.Issue{issue(1, models.StatusEscalated, intPtr(7))}

	asForwarder := Partition(open, nil, 7)
	assert.Empty(t, asForwarder.Active)
	assert.Equal(t, []int{1}, ids(asForwarder.Escalated))

	asReceiver := Partition(open, nil, 8)
	assert.Equal(t, []int{1}, ids(asReceiver.Active))
	assert.Empty(t, asReceiver.Escalated)
}

func TestPartition_Empty(t *testing.T) {
	b := Partition(nil, nil, 1)
	assert.Empty(t, b.Active)
	assert.Empty(t, b.Escalated)
	assert.Empty(t, b.Resolved)
}

func ids(issues []models.Issue) []int {
	out := make([]int, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.ID)
	}
	return out
}
