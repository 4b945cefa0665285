// Package gatewaytest provides a configurable fake of the gateway API
// contract for unit tests. Behaviors are function fields; unset ones
// return zero values. Every invocation is recorded in Calls.
package gatewaytest

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/campusmind/client/internal/gateway"
	"github.com/campusmind/client/internal/models"
)

type Fake struct {
	mu    sync.Mutex
	Calls []string

	LoginFn         func(email, password string) (models.User, error)
	UsersFn         func() ([]models.User, error)
	UserFn          func(id int) (models.User, error)
	IssuesFn        func(filter url.Values) ([]models.Issue, error)
	IssueFn         func(id int) (models.Issue, error)
	IssuesForUserFn func(userID int, showResolved bool) ([]models.Issue, error)
	CreateIssueFn   func(studentID int, title, description string) (models.Issue, error)
	ForwardIssueFn  func(issueID, byUserID int) (models.Issue, error)
	VerifyIssueFn   func(issueID, verifierID int, resolved bool) (models.Issue, error)
	ClassifyIssueFn func(issueID int) (models.Issue, error)
	AdminStatsFn    func() (models.AdminStats, error)
	AdminIssuesFn   func() ([]models.Issue, error)
	DepartmentFn    func(id int) (models.Department, error)
	SectionFn       func(id int) (models.Section, error)
}

var _ gateway.API = (*Fake)(nil)

func (f *Fake) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// CallCount returns how many calls were recorded so far.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// Recorded returns a copy of the call log.
func (f *Fake) Recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	copy(out, f.Calls)
	return out
}

func (f *Fake) Login(_ context.Context, email, password string) (models.User, error) {
	f.record("login(%s)", email)
	if f.LoginFn != nil {
		return f.LoginFn(email, password)
	}
	return models.User{}, nil
}

func (f *Fake) Users(_ context.Context) ([]models.User, error) {
	f.record("users()")
	if f.UsersFn != nil {
		return f.UsersFn()
	}
	return nil, nil
}

func (f *Fake) User(_ context.Context, id int) (models.User, error) {
	f.record("user(%d)", id)
	if f.UserFn != nil {
		return f.UserFn(id)
	}
	return models.User{}, nil
}

func (f *Fake) Issues(_ context.Context, filter url.Values) ([]models.Issue, error) {
	f.record("issues(%s)", filter.Encode())
	if f.IssuesFn != nil {
		return f.IssuesFn(filter)
	}
	return nil, nil
}

func (f *Fake) Issue(_ context.Context, id int) (models.Issue, error) {
	f.record("issue(%d)", id)
	if f.IssueFn != nil {
		return f.IssueFn(id)
	}
	return models.Issue{}, nil
}

func (f *Fake) IssuesForUser(_ context.Context, userID int, showResolved bool) ([]models.Issue, error) {
	f.record("issues_for_user(%d,%t)", userID, showResolved)
	if f.IssuesForUserFn != nil {
		return f.IssuesForUserFn(userID, showResolved)
	}
	return nil, nil
}

func (f *Fake) CreateIssue(_ context.Context, studentID int, title, description string) (models.Issue, error) {
	f.record("create_issue(%d,%s)", studentID, title)
	if f.CreateIssueFn != nil {
		return f.CreateIssueFn(studentID, title, description)
	}
	return models.Issue{}, nil
}

func (f *Fake) ForwardIssue(_ context.Context, issueID, byUserID int) (models.Issue, error) {
	f.record("forward_issue(%d,%d)", issueID, byUserID)
	if f.ForwardIssueFn != nil {
		return f.ForwardIssueFn(issueID, byUserID)
	}
	return models.Issue{}, nil
}

func (f *Fake) VerifyIssue(_ context.Context, issueID, verifierID int, resolved bool) (models.Issue, error) {
	f.record("verify_issue(%d,%d,%t)", issueID, verifierID, resolved)
	if f.VerifyIssueFn != nil {
		return f.VerifyIssueFn(issueID, verifierID, resolved)
	}
	return models.Issue{}, nil
}

func (f *Fake) ClassifyIssue(_ context.Context, issueID int) (models.Issue, error) {
	f.record("classify_issue(%d)", issueID)
	if f.ClassifyIssueFn != nil {
		return f.ClassifyIssueFn(issueID)
	}
	return models.Issue{}, nil
}

func (f *Fake) AdminStats(_ context.Context) (models.AdminStats, error) {
	f.record("admin_stats()")
	if f.AdminStatsFn != nil {
		return f.AdminStatsFn()
	}
	return models.AdminStats{}, nil
}

func (f *Fake) AdminIssues(_ context.Context) ([]models.Issue, error) {
	f.record("admin_issues()")
	if f.AdminIssuesFn != nil {
		return f.AdminIssuesFn()
	}
	return nil, nil
}

func (f *Fake) Department(_ context.Context, id int) (models.Department, error) {
	f.record("department(%d)", id)
	if f.DepartmentFn != nil {
		return f.DepartmentFn(id)
	}
	return models.Department{}, nil
}

func (f *Fake) Section(_ context.Context, id int) (models.Section, error) {
	f.record("section(%d)", id)
	if f.SectionFn != nil {
		return f.SectionFn(id)
	}
	return models.Section{}, nil
}
