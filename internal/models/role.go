// Package models holds the wire and domain types shared across the client:
// users, sessions, issues and the closed role and page enumerations.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the closed set of user roles the service knows about.
type Role string

const (
	RoleStudent Role = "student"
	RoleProctor Role = "proctor"
	RoleHOD     Role = "hod"
	RoleVC      Role = "vc"
	RoleAdmin   Role = "admin"
)

// ParseRole normalizes a role string from the service. Matching is
// case-insensitive; anything outside the known set is an error.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleProctor:
		return RoleProctor, nil
	case RoleHOD:
		return RoleHOD, nil
	case RoleVC:
		return RoleVC, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// NormalizeRole maps any casing of a known role to its canonical lowercase
// form. Unknown values pass through unchanged so the caller's error path
// sees what the service actually sent.
func NormalizeRole(r Role) Role {
	if parsed, err := ParseRole(string(r)); err == nil {
		return parsed
	}
	return r
}

// UnmarshalJSON decodes a role and normalizes its case. The service is not
// consistent about casing in role fields; matching must not depend on it.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = NormalizeRole(Role(s))
	return nil
}

// DashboardTitle is the heading shown above the role's dashboard.
func (r Role) DashboardTitle() string {
	switch r {
	case RoleStudent:
		return "Student Dashboard"
	case RoleProctor:
		return "Proctor Dashboard"
	case RoleHOD:
		return "HOD Dashboard"
	case RoleVC:
		return "VC Dashboard"
	case RoleAdmin:
		return "Admin Dashboard"
	}
	return "Dashboard"
}

// Page is a logical page of the client shell.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageIssues    Page = "issues"
	PageProfile   Page = "profile"
	PageAdmin     Page = "admin"
)
