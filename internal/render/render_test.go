package render

import (
	"strings"
	"testing"
	"time"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/digest"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/search"
)

func fixtureDigest() digest.Digest {
	pr := search.Item{
		HTMLURL:       "https://github.com/acme/widget/pull/5",
		Title:         "Fix the frobnicator",
		RepositoryURL: "https://api.github.com/repos/acme/widget",
		Labels:        []search.Label{{Name: "priority:p0"}, {Name: "bug"}},
		CreatedAt:     "2024-01-01T00:00:00Z",
		UpdatedAt:     "2024-01-02T00:00:00Z",
		PullRequest:   &search.PullRequestRef{HTMLURL: "https://github.com/acme/widget/pull/5"},
	}
	issue := search.Item{
		HTMLURL:       "https://github.com/acme/widget/issues/9",
		Title:         "Widget crashes on load",
		RepositoryURL: "https://api.github.com/repos/acme/widget",
		Labels:        []search.Label{{Name: "P1"}},
		CreatedAt:     "2024-01-03T00:00:00Z",
		UpdatedAt:     "2024-01-04T00:00:00Z",
	}
	return digest.Digest{
		GeneratedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		Items:       []search.Item{pr, issue},
	}
}

func TestHTMLSections(t *testing.T) {
	html, err := HTML(fixtureDigest())
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	for _, want := range []string{
		"Pull Requests (1)",
		"Issues (1)",
		"Fix the frobnicator",
		"Widget crashes on load",
		"acme/widget",
		"priority-p0",
		"priority-p1",
		"Generated at 2024-02-01 09:30 UTC",
		"Created: 2024-01-01 · Updated: 2024-01-02",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHTMLEmptyState(t *testing.T) {
	html, err := HTML(digest.Digest{GeneratedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "No matching issues or PRs today") {
		t.Error("expected the empty state message")
	}
	if strings.Contains(html, "Pull Requests (") {
		t.Error("empty digest should have no sections")
	}
}

func TestHTMLEscapesTitles(t *testing.T) {
	d := digest.Digest{
		GeneratedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Items: []search.Item{{
			HTMLURL: "https://github.com/acme/widget/issues/1",
			Title:   `<script>alert("x")</script>`,
		}},
	}
	html, err := HTML(d)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(html, `<script>alert`) {
		t.Error("title must be escaped")
	}
}

func TestHTMLIdempotent(t *testing.T) {
	d := fixtureDigest()
	first, err := HTML(d)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	second, err := HTML(d)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if first != second {
		t.Error("rendering the same digest twice should be byte-identical")
	}
}

func TestHTMLMalformedTimestamp(t *testing.T) {
	d := digest.Digest{
		GeneratedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Items: []search.Item{{
			HTMLURL:   "https://github.com/acme/widget/issues/1",
			Title:     "No dates",
			UpdatedAt: "garbage",
		}},
	}
	html, err := HTML(d)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "Updated: unknown") {
		t.Error("malformed timestamp should render as unknown")
	}
}

func TestTerminal(t *testing.T) {
	out := Terminal(fixtureDigest())
	for _, want := range []string{
		"Daily GitHub Issues & PRs Digest",
		"Pull Requests",
		"Issues",
		"Fix the frobnicator",
		"acme/widget",
		"https://github.com/acme/widget/issues/9",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}

func TestTerminalEmpty(t *testing.T) {
	out := Terminal(digest.Digest{GeneratedAt: time.Now()})
	if !strings.Contains(out, "No matching issues or PRs today") {
		t.Error("expected the empty state message")
	}
}
