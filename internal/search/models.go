package search

import (
	"strings"
	"time"
)

// Kind restricts which result types a query accepts. The search endpoint
// returns issues and pull requests through the same resource; a query
// declared for one kind discards results of the other before they reach
// the accumulator.
type Kind int

const (
	KindAny Kind = iota
	KindIssue
	KindPullRequest
)

// Query is one search expression plus the result kind it may yield.
type Query struct {
	Expr string
	Kind Kind
}

// Matches reports whether an item is acceptable for this kind.
func (k Kind) Matches(it Item) bool {
	switch k {
	case KindIssue:
		return !it.IsPullRequest()
	case KindPullRequest:
		return it.IsPullRequest()
	default:
		return true
	}
}

// Label is an issue label as returned by the search API.
type Label struct {
	Name string `json:"name"`
}

// User is a minimal account reference.
type User struct {
	Login string `json:"login"`
}

// PullRequestRef is the marker object distinguishing pull requests from
// issues in search results.
type PullRequestRef struct {
	HTMLURL string `json:"html_url"`
}

// Item is one issue or pull request from the search API. HTMLURL is the
// identity key: unique across all queries in a run, first occurrence wins.
// Timestamps stay as wire strings; a malformed value parses to the zero
// time rather than failing.
type Item struct {
	HTMLURL       string          `json:"html_url"`
	Title         string          `json:"title"`
	RepositoryURL string          `json:"repository_url"`
	Labels        []Label         `json:"labels"`
	Assignees     []User          `json:"assignees"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	PullRequest   *PullRequestRef `json:"pull_request,omitempty"`
}

// IsPullRequest reports whether the item carries the pull_request marker.
func (it Item) IsPullRequest() bool {
	return it.PullRequest != nil
}

// LabelNames returns the label names, case preserved for display.
func (it Item) LabelNames() []string {
	names := make([]string, 0, len(it.Labels))
	for _, l := range it.Labels {
		names = append(names, l.Name)
	}
	return names
}

// AssigneeLogins returns the assignee handles.
func (it Item) AssigneeLogins() []string {
	logins := make([]string, 0, len(it.Assignees))
	for _, a := range it.Assignees {
		logins = append(logins, a.Login)
	}
	return logins
}

// Repo derives "owner/name" from the API repository URL.
func (it Item) Repo() string {
	const marker = "/repos/"
	if i := strings.Index(it.RepositoryURL, marker); i >= 0 {
		return it.RepositoryURL[i+len(marker):]
	}
	return it.RepositoryURL
}

// UpdatedTime parses updated_at; zero when absent or malformed.
func (it Item) UpdatedTime() time.Time {
	return parseTime(it.UpdatedAt)
}

// CreatedTime parses created_at; zero when absent or malformed.
func (it Item) CreatedTime() time.Time {
	return parseTime(it.CreatedAt)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
