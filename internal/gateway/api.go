package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/campusmind/client/internal/models"
)

// API is the remote contract consumed by the rest of the client. Tests
// substitute a fake recording calls; Gateway is the production
// implementation.
type API interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id int) (models.User, error)
	Issues(ctx context.Context, filter url.Values) ([]models.Issue, error)
	Issue(ctx context.Context, id int) (models.Issue, error)
	IssuesForUser(ctx context.Context, userID int, showResolved bool) ([]models.Issue, error)
	CreateIssue(ctx context.Context, studentID int, title, description string) (models.Issue, error)
	ForwardIssue(ctx context.Context, issueID, byUserID int) (models.Issue, error)
	VerifyIssue(ctx context.Context, issueID, verifierID int, resolved bool) (models.Issue, error)
	ClassifyIssue(ctx context.Context, issueID int) (models.Issue, error)
	AdminStats(ctx context.Context) (models.AdminStats, error)
	AdminIssues(ctx context.Context) ([]models.Issue, error)
	Department(ctx context.Context, id int) (models.Department, error)
	Section(ctx context.Context, id int) (models.Section, error)
}

var _ API = (*Gateway)(nil)

// Login authenticates with credentials passed as query parameters; the
// service expects no request body here.
func (g *Gateway) Login(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	query := url.Values{"email": {email}, "password": {password}}
	err := g.post(ctx, "/auth/login", nil, query, &user)
	return user, err
}

func (g *Gateway) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := g.get(ctx, "/users", nil, &users)
	return users, err
}

func (g *Gateway) User(ctx context.Context, id int) (models.User, error) {
	var user models.User
	err := g.get(ctx, "/users/"+strconv.Itoa(id), nil, &user)
	return user, err
}

func (g *Gateway) Issues(ctx context.Context, filter url.Values) ([]models.Issue, error) {
	var issues []models.Issue
	err := g.get(ctx, "/issues", filter, &issues)
	return issues, err
}

func (g *Gateway) Issue(ctx context.Context, id int) (models.Issue, error) {
	var issue models.Issue
	err := g.get(ctx, "/issues/"+strconv.Itoa(id), nil, &issue)
	return issue, err
}

func (g *Gateway) IssuesForUser(ctx context.Context, userID int, showResolved bool) ([]models.Issue, error) {
	var issues []models.Issue
	query := url.Values{"show_resolved": {strconv.FormatBool(showResolved)}}
	err := g.get(ctx, "/issues/for_user/"+strconv.Itoa(userID), query, &issues)
	return issues, err
}

func (g *Gateway) CreateIssue(ctx context.Context, studentID int, title, description string) (models.Issue, error) {
	var issue models.Issue
	body := map[string]any{
		"student_id":  studentID,
		"title":       title,
		"description": description,
	}
	err := g.post(ctx, "/issues", body, nil, &issue)
	return issue, err
}

func (g *Gateway) ForwardIssue(ctx context.Context, issueID, byUserID int) (models.Issue, error) {
	var issue models.Issue
	query := url.Values{"by_user_id": {strconv.Itoa(byUserID)}}
	err := g.post(ctx, "/issues/"+strconv.Itoa(issueID)+"/forward", nil, query, &issue)
	return issue, err
}

func (g *Gateway) VerifyIssue(ctx context.Context, issueID, verifierID int, resolved bool) (models.Issue, error) {
	var issue models.Issue
	query := url.Values{
		"verifier_id": {strconv.Itoa(verifierID)},
		"resolved":    {strconv.FormatBool(resolved)},
	}
	err := g.post(ctx, "/issues/"+strconv.Itoa(issueID)+"/verify", nil, query, &issue)
	return issue, err
}

func (g *Gateway) ClassifyIssue(ctx context.Context, issueID int) (models.Issue, error) {
	var issue models.Issue
	err := g.post(ctx, "/issues/"+strconv.Itoa(issueID)+"/classify", nil, nil, &issue)
	return issue, err
}

func (g *Gateway) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	err := g.get(ctx, "/admin/stats", nil, &stats)
	return stats, err
}

func (g *Gateway) AdminIssues(ctx context.Context) ([]models.Issue, error) {
	var issues []models.Issue
	err := g.get(ctx, "/admin/issues", nil, &issues)
	return issues, err
}

func (g *Gateway) Department(ctx context.Context, id int) (models.Department, error) {
	var department models.Department
	err := g.get(ctx, "/departments/"+strconv.Itoa(id), nil, &department)
	return department, err
}

func (g *Gateway) Section(ctx context.Context, id int) (models.Section, error) {
	var section models.Section
	err := g.get(ctx, "/sections/"+strconv.Itoa(id), nil, &section)
	return section, err
}
