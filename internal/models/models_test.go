package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"student", RoleStudent, false},
		{"Proctor", RoleProctor, false},
		{"HOD", RoleHOD, false},
		{"  vc ", RoleVC, false},
		{"ADMIN", RoleAdmin, false},
		{"dean", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestRoleDecode_NormalizesCase(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "name": "Ana", "role": "Student"}`), &u))
	assert.Equal(t, RoleStudent, u.Role)

	var v User
	require.NoError(t, json.Unmarshal([]byte(`{"id": 4, "role": "dean"}`), &v))
	assert.Equal(t, Role("dean"), v.Role, "unknown roles pass through for the error path")
}

func TestNewSession_NormalizesRoleCase(t *testing.T) {
	s := NewSession(User{ID: 3, Name: "Ana", Role: "Student"})
	assert.Equal(t, RoleStudent, s.Role)
}

func TestTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"naive", `"2024-05-01T09:30:00"`, true},
		{"naive with fraction", `"2024-05-01T09:30:00.123456"`, true},
		{"rfc3339", `"2024-05-01T09:30:00Z"`, true},
		{"null", `null`, true},
		{"garbage", `"yesterday"`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Time
			err := json.Unmarshal([]byte(tc.in), &ts)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestIssueDecode(t *testing.T) {
	raw := `{
		"id": 7,
		"title": "Broken projector",
		"description": "Room 12",
		"student_id": 3,
		"assigned_to": null,
		"verified_by": null,
		"verified_at": null,
		"forwarded_by": 5,
		"department_id": 1,
		"section_id": null,
		"category": null,
		"priority": "High",
		"status": "assigned",
		"created_at": "2024-05-01T09:30:00.000001"
	}`

	var issue Issue
	require.NoError(t, json.Unmarshal([]byte(raw), &issue))

	assert.Equal(t, 7, issue.ID)
	assert.Equal(t, StatusAssigned, issue.Status)
	assert.True(t, issue.ForwardedByUser(5))
	assert.False(t, issue.ForwardedByUser(3))
	assert.Equal(t, "N/A", issue.CategoryOrDefault())
	assert.Equal(t, "High", issue.PriorityOrDefault())
	assert.Nil(t, issue.AssignedTo)
	require.NotNil(t, issue.CreatedAt)
	assert.False(t, issue.CreatedAt.IsZero())
}

func TestNewSession(t *testing.T) {
	deptID := 2
	u := User{ID: 9, Name: "Avery", Email: "a@campus.edu", Role: RoleProctor, DepartmentID: &deptID}
	s := NewSession(u)

	assert.Equal(t, 9, s.UserID)
	assert.Equal(t, "Avery", s.Name)
	assert.Equal(t, RoleProctor, s.Role)
	require.NotNil(t, s.DepartmentID)
	assert.Equal(t, 2, *s.DepartmentID)
	assert.Nil(t, s.SectionID)
}

func TestStatusOrDefault(t *testing.T) {
	assert.Equal(t, StatusOpen, Issue{}.StatusOrDefault())
	assert.Equal(t, StatusClosed, Issue{Status: StatusClosed}.StatusOrDefault())
}
