package models

// User is the service's user record as returned by the auth and directory
// endpoints. Optional relations come back as null and stay nil here.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	DepartmentID *int   `json:"department_id"`
	SectionID    *int   `json:"section_id"`
	ReportsTo    *int   `json:"reports_to"`
}

// Session is the persisted identity of the logged-in user. It carries the
// subset of the user record the client needs between restarts; the
// last-activity clock lives in the session store, not here.
type Session struct {
	UserID       int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	DepartmentID *int   `json:"department_id,omitempty"`
	SectionID    *int   `json:"section_id,omitempty"`
	ReportsTo    *int   `json:"reports_to,omitempty"`
}

// NewSession derives the persisted session from a freshly authenticated
// user record. The role is normalized here so everything downstream can
// match on the canonical form.
func NewSession(u User) Session {
	return Session{
		UserID:       u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         NormalizeRole(u.Role),
		DepartmentID: u.DepartmentID,
		SectionID:    u.SectionID,
		ReportsTo:    u.ReportsTo,
	}
}

// Department is a lookup record used to decorate profile views.
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Section is a lookup record used to decorate profile views.
type Section struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
