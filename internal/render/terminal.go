package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/digest"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/priority"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/search"
)

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginTop(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	repoStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	p0Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#DC3545")).
		Padding(0, 1)

	p1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FD7E14")).
		Padding(0, 1)

	p2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#FFC107")).
		Padding(0, 1)
)

// Terminal renders the digest for the preview command.
func Terminal(d digest.Digest) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Daily GitHub Issues & PRs Digest"))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("Generated at " + d.GeneratedAt.Format("2006-01-02 15:04 UTC")))
	b.WriteString("\n")

	if len(d.Items) == 0 {
		b.WriteString("\nNo matching issues or PRs today 🎉\n")
		return b.String()
	}

	writeSection(&b, "Pull Requests", d.PullRequests())
	writeSection(&b, "Issues", d.Issues())
	return b.String()
}

func writeSection(b *strings.Builder, name string, items []search.Item) {
	if len(items) == 0 {
		return
	}

	b.WriteString(sectionStyle.Render(name))
	b.WriteString(metaStyle.Render(" (" + strconv.Itoa(len(items)) + ")"))
	b.WriteString("\n")

	for _, it := range items {
		if badge := tierBadge(priority.FromLabels(it.LabelNames())); badge != "" {
			b.WriteString(badge)
			b.WriteString(" ")
		}
		b.WriteString(titleStyle.Render(it.Title))
		b.WriteString("\n  ")
		b.WriteString(repoStyle.Render(it.Repo()))
		if labels := it.LabelNames(); len(labels) > 0 {
			b.WriteString("  ")
			b.WriteString(metaStyle.Render("[" + strings.Join(labels, ", ") + "]"))
		}
		b.WriteString("\n  ")
		b.WriteString(metaStyle.Render("Created: " + formatDate(it.CreatedTime()) + " · Updated: " + formatDate(it.UpdatedTime())))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render("  " + it.HTMLURL))
		b.WriteString("\n")
	}
}

func tierBadge(t priority.Tier) string {
	switch t {
	case priority.P0:
		return p0Style.Render("P0")
	case priority.P1:
		return p1Style.Render("P1")
	case priority.P2:
		return p2Style.Render("P2")
	default:
		return ""
	}
}
