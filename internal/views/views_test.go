package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmind/client/internal/directory"
	"github.com/campusmind/client/internal/gateway/gatewaytest"
	"github.com/campusmind/client/internal/logging"
	"github.com/campusmind/client/internal/models"
)

func newDir(fake *gatewaytest.Fake) *directory.Cache {
	return directory.NewCache(fake, logging.Nop{})
}

func bucketsFake(open, history []models.Issue) *gatewaytest.Fake {
	return &gatewaytest.Fake{
		IssuesForUserFn: func(_ int, showResolved bool) ([]models.Issue, error) {
			if showResolved {
				return history, nil
			}
			return open, nil
		},
	}
}

func tableTitles(d *Dashboard) []string {
	out := make([]string, 0, len(d.Tables))
	for _, tbl := range d.Tables {
		out = append(out, tbl.Title)
	}
	return out
}

func TestStudentView_Build(t *testing.T) {
	proctorID := 11
	fake := bucketsFake(
		[]models.Issue{issue(1, models.StatusOpen, nil)},
		[]models.Issue{issue(2, models.StatusClosed, nil)},
	)
	fake.UserFn = func(id int) (models.User, error) {
		assert.Equal(t, proctorID, id)
		return models.User{ID: id, Name: "Prof. Dale", Role: models.RoleProctor}, nil
	}

	view := &StudentView{api: fake, dir: newDir(fake)}
	sess := models.Session{UserID: 3, Role: models.RoleStudent, ReportsTo: &proctorID}

	d, err := view.Build(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, "Student Dashboard", d.Title)
	assert.True(t, d.HasComplaintForm)
	assert.Equal(t, "Prof. Dale", d.Supervisor)
	assert.Equal(t, []Action{ActionSubmit}, d.Actions)
	assert.Equal(t, []Stat{
		{Label: "Active Complaints", Value: 1},
		{Label: "Resolved", Value: 1},
	}, d.Stats)
	assert.Equal(t, []string{"Your Complaints", "Resolved Complaints"}, tableTitles(d))
}

func TestStudentView_NoSupervisor(t *testing.T) {
	fake := bucketsFake(nil, nil)
	view := &StudentView{api: fake, dir: newDir(fake)}

	d, err := view.Build(context.Background(), models.Session{UserID: 3, Role: models.RoleStudent})
	require.NoError(t, err)

	assert.Empty(t, d.Supervisor)
	assert.NotContains(t, fake.Recorded(), "user(0)")
	assert.Equal(t, []string{"Your Complaints"}, tableTitles(d), "empty resolved bucket contributes no table")
}

func TestProctorView_Build(t *testing.T) {
	me := 11
	fake := bucketsFake(
		[]models.Issue{
			issue(1, models.StatusAssigned, nil),
			issue(2, models.StatusEscalated, &me),
		},
		[]models.Issue{issue(3, models.StatusClosed, nil)},
	)
	fake.UsersFn = func() ([]models.User, error) {
		return []models.User{
			{ID: 1, Name: "Ana", Role: models.RoleStudent, ReportsTo: &me},
			{ID: 2, Name: "Ben", Role: models.RoleStudent, ReportsTo: intPtr(99)},
			{ID: me, Name: "Pia", Role: models.RoleProctor},
		}, nil
	}

	view := &ProctorView{api: fake, dir: newDir(fake)}
	d, err := view.Build(context.Background(), models.Session{UserID: me, Role: models.RoleProctor})
	require.NoError(t, err)

	assert.Equal(t, []Stat{
		{Label: "Active Complaints", Value: 1},
		{Label: "Escalated", Value: 1},
		{Label: "Resolved", Value: 1},
		{Label: "Students", Value: 1},
	}, d.Stats)
	assert.Equal(t, []Action{ActionResolve, ActionEscalate, ActionReclassify}, d.Actions)
	assert.Equal(t, []int{1}, d.ActionableIDs, "escalated issues are not actionable")
	assert.Equal(t, []string{"Active Complaints", "Escalated Complaints", "Resolved Complaints"}, tableTitles(d))
}

func TestHODView_Build(t *testing.T) {
	me := 21
	fake := bucketsFake(
		[]models.Issue{issue(5, models.StatusEscalated, intPtr(11))},
		nil,
	)

	view := &HODView{api: fake, dir: newDir(fake)}
	d, err := view.Build(context.Background(), models.Session{UserID: me, Role: models.RoleHOD})
	require.NoError(t, err)

	assert.Equal(t, "HOD Dashboard", d.Title)
	assert.Equal(t, []int{5}, d.ActionableIDs, "issues forwarded by others are active here")
	assert.Equal(t, []Action{ActionResolve, ActionEscalate, ActionReclassify}, d.Actions)
}

func TestVCView_WholeQueueShownAsEscalated(t *testing.T) {
	vcID := 31
	fake := bucketsFake(
		[]models.Issue{
			issue(9, models.StatusEscalated, intPtr(21)),
			// Already forwarded by the VC themselves; the top tier still
			// shows it in the queue.
			issue(10, models.StatusEscalated, intPtr(vcID)),
		},
		nil,
	)

	view := &VCView{api: fake, dir: newDir(fake)}
	d, err := view.Build(context.Background(), models.Session{UserID: vcID, Role: models.RoleVC})
	require.NoError(t, err)

	assert.Equal(t, []Action{ActionResolve}, d.Actions)
	assert.Equal(t, []int{9, 10}, d.ActionableIDs)
	require.NotEmpty(t, d.Tables)
	assert.Equal(t, "Escalated Complaints", d.Tables[0].Title)
	assert.Len(t, d.Tables[0].Rows, 2)
	assert.Equal(t, []Stat{
		{Label: "Escalated Complaints", Value: 2},
		{Label: "Resolved", Value: 0},
	}, d.Stats)
}

func TestAdminView_Build(t *testing.T) {
	fake := &gatewaytest.Fake{
		AdminStatsFn: func() (models.AdminStats, error) {
			return models.AdminStats{
				Total:    10,
				Active:   4,
				Resolved: 6,
				ByDepartment: []models.DepartmentStats{
					{DepartmentName: "Engineering", Total: 7, Active: 3, Resolved: 4},
				},
			}, nil
		},
		AdminIssuesFn: func() ([]models.Issue, error) {
			return []models.Issue{issue(1, models.StatusOpen, nil)}, nil
		},
	}

	view := &AdminView{api: fake, dir: newDir(fake)}
	d, err := view.Build(context.Background(), models.Session{UserID: 99, Role: models.RoleAdmin})
	require.NoError(t, err)

	assert.Empty(t, d.Actions, "admin observes, never mutates")
	assert.Equal(t, []Stat{
		{Label: "Total Issues", Value: 10},
		{Label: "Active Issues", Value: 4},
		{Label: "Resolved Issues", Value: 6},
	}, d.Stats)
	require.Equal(t, []string{"Department Breakdown", "All Issues"}, tableTitles(d))
	assert.Equal(t, [][]string{{"Engineering", "7", "3", "4"}}, d.Tables[0].Rows)
}

func TestBuild_FetchFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	fake := &gatewaytest.Fake{
		IssuesForUserFn: func(int, bool) ([]models.Issue, error) {
			return nil, boom
		},
	}

	view := &VCView{api: fake, dir: newDir(fake)}
	_, err := view.Build(context.Background(), models.Session{UserID: 31, Role: models.RoleVC})
	assert.ErrorIs(t, err, boom)
}

func TestForRole(t *testing.T) {
	fake := &gatewaytest.Fake{}
	dir := newDir(fake)

	for _, role := range []models.Role{models.RoleStudent, models.RoleProctor, models.RoleHOD, models.RoleVC, models.RoleAdmin} {
		v, err := ForRole(role, fake, dir)
		require.NoError(t, err, role)
		assert.Equal(t, role, v.Role())
	}

	_, err := ForRole("dean", fake, dir)
	assert.Error(t, err)
}

func TestForRole_CaseInsensitive(t *testing.T) {
	fake := &gatewaytest.Fake{}
	dir := newDir(fake)

	for raw, want := range map[models.Role]models.Role{
		"Student": models.RoleStudent,
		"PROCTOR": models.RoleProctor,
		"Hod":     models.RoleHOD,
		"Vc":      models.RoleVC,
		"Admin":   models.RoleAdmin,
	} {
		v, err := ForRole(raw, fake, dir)
		require.NoError(t, err, raw)
		assert.Equal(t, want, v.Role(), raw)
	}

	sess := models.NewSession(models.User{ID: 3, Role: "Student"})
	v, err := ForRole(sess.Role, fake, dir)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, v.Role())
}

func TestRegistry_CoversEveryRole(t *testing.T) {
	fake := &gatewaytest.Fake{}
	reg := Registry(fake, newDir(fake))

	require.Len(t, reg, 5)
	for role, v := range reg {
		require.NotNil(t, v, role)
		assert.Equal(t, role, v.Role())
	}
}

func TestIssueTableDecoration(t *testing.T) {
	fake := &gatewaytest.Fake{
		UsersFn: func() ([]models.User, error) {
			return []models.User{{ID: 3, Name: "Ana"}}, nil
		},
	}
	dir := newDir(fake)
	dir.Refresh(context.Background())

	is := issue(7, models.StatusAssigned, nil)
	is.StudentID = intPtr(3)

	tbl := IssueTable("Active Complaints", kindActive, []models.Issue{is}, dir)
	require.Len(t, tbl.Rows, 1)
	row := tbl.Rows[0]
	assert.Equal(t, "7", row[0])
	assert.Equal(t, "N/A", row[2], "unclassified category shows the placeholder")
	assert.Equal(t, "Ana", row[5])
	assert.Equal(t, "Unassigned", row[6])
	assert.Equal(t, "-", row[7], "missing timestamp never blocks the row")
}
