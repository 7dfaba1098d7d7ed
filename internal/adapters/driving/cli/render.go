package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/issue-fetcher/internal/core/domain"
)

// Theme defines the colour palette for text output.
type Theme struct {
	// Primary is the accent colour for titles.
	Primary lipgloss.Color

	// Open marks open issues.
	Open lipgloss.Color

	// Closed marks closed issues.
	Closed lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Open:    lipgloss.Color("#A6E3A1"), // Green
		Closed:  lipgloss.Color("#F38BA8"), // Red
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Border:  lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles for issue output.
type Styles struct {
	Title  lipgloss.Style
	Open   lipgloss.Style
	Closed lipgloss.Style
	Muted  lipgloss.Style
	Label  lipgloss.Style
	Body   lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Open: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Open),

		Closed: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Closed),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Label: lipgloss.NewStyle().
			Padding(0, 1),

		Body: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// renderIssue formats a fetch result for a terminal.
func renderIssue(s *Styles, resp *domain.IssueResponse) string {
	issue := resp.Issue
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", s.Muted.Render(fmt.Sprintf("#%d", issue.Number)), s.Title.Render(issue.Title))

	meta := []string{renderState(s, issue)}
	if issue.User != nil {
		meta = append(meta, issue.User.Login)
	}
	if issue.CreatedAt != nil {
		meta = append(meta, "opened "+issue.CreatedAt.Format("2006-01-02"))
	}
	meta = append(meta, fmt.Sprintf("%d comments", issue.Comments))
	b.WriteString(strings.Join(meta, s.Muted.Render(" · ")))
	b.WriteString("\n")

	if len(issue.Labels) > 0 {
		labels := make([]string, len(issue.Labels))
		for i, l := range issue.Labels {
			labels[i] = labelStyle(s, l).Render(l.Name)
		}
		b.WriteString(strings.Join(labels, " "))
		b.WriteString("\n")
	}

	if issue.HTMLURL != "" {
		b.WriteString(s.Muted.Render(issue.HTMLURL))
		b.WriteString("\n")
	}
	b.WriteString(s.Muted.Render("etag: " + resp.ETag))
	b.WriteString("\n")

	if issue.Body != nil && strings.TrimSpace(*issue.Body) != "" {
		b.WriteString(s.Body.Render(strings.TrimSpace(*issue.Body)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderState(s *Styles, issue *domain.Issue) string {
	state := issue.State
	if issue.IsPullRequest() {
		state += " (pull request)"
	}
	if issue.State == "closed" {
		return s.Closed.Render(state)
	}
	return s.Open.Render(state)
}

// labelStyle colours a label with the hex colour GitHub assigned it.
func labelStyle(s *Styles, l domain.Label) lipgloss.Style {
	if len(l.Color) != 6 {
		return s.Label
	}
	return s.Label.Background(lipgloss.Color("#" + l.Color))
}
