package models

// IssueStatus is the lifecycle state of an issue. The client only ever
// observes these; transitions are computed by the service.
type IssueStatus string

const (
	StatusOpen      IssueStatus = "open"
	StatusAssigned  IssueStatus = "assigned"
	StatusEscalated IssueStatus = "escalated"
	StatusResolved  IssueStatus = "resolved"
	StatusClosed    IssueStatus = "closed"
)

// Issue is the service's issue record. The client holds a read-only,
// possibly stale copy for the duration of one render cycle.
type Issue struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     *string     `json:"category"`
	Priority     *string     `json:"priority"`
	Status       IssueStatus `json:"status"`
	StudentID    *int        `json:"student_id"`
	AssignedTo   *int        `json:"assigned_to"`
	ForwardedBy  *int        `json:"forwarded_by"`
	VerifiedBy   *int        `json:"verified_by"`
	VerifiedAt   *Time       `json:"verified_at"`
	DepartmentID *int        `json:"department_id"`
	SectionID    *int        `json:"section_id"`
	CreatedAt    *Time       `json:"created_at"`
}

// ForwardedByUser reports whether userID escalated this issue upward.
func (i Issue) ForwardedByUser(userID int) bool {
	return i.ForwardedBy != nil && *i.ForwardedBy == userID
}

// CategoryOrDefault returns the classified category, or a placeholder while
// classification is still pending.
func (i Issue) CategoryOrDefault() string {
	if i.Category == nil || *i.Category == "" {
		return "N/A"
	}
	return *i.Category
}

// PriorityOrDefault returns the assigned priority, or a placeholder while
// classification is still pending.
func (i Issue) PriorityOrDefault() string {
	if i.Priority == nil || *i.Priority == "" {
		return "N/A"
	}
	return *i.Priority
}

// StatusOrDefault treats a missing status as open so partitioning always
// has a concrete state to work with.
func (i Issue) StatusOrDefault() IssueStatus {
	if i.Status == "" {
		return StatusOpen
	}
	return i.Status
}

// AdminStats is the aggregate report behind the admin dashboard.
type AdminStats struct {
	Total        int               `json:"total"`
	Active       int               `json:"active"`
	Resolved     int               `json:"resolved"`
	ByDepartment []DepartmentStats `json:"by_department"`
}

// DepartmentStats is one per-department row of the admin breakdown.
type DepartmentStats struct {
	DepartmentName string `json:"department_name"`
	Total          int    `json:"total"`
	Active         int    `json:"active"`
	Resolved       int    `json:"resolved"`
}
