package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jzembower/balance/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	scoreGood = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	scoreMid  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreLow  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return scoreGood
	case score >= 40:
		return scoreMid
	default:
		return scoreLow
	}
}

// renderAnalysis formats a single analysis result for terminal output.
func renderAnalysis(a *domain.FocusAnalysis) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Focus Analysis"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Focus score: %s\n\n", scoreStyle(a.FocusScore).Render(fmt.Sprintf("%.0f/100", a.FocusScore)))

	b.WriteString(titleStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, r := range a.Recommendations {
		fmt.Fprintf(&b, "  • %s\n", r)
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(a.Summary)
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("id %s · %s", a.ID, a.Timestamp.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n")

	return b.String()
}

// renderHistory formats a list of past analyses, newest first.
func renderHistory(analyses []*domain.FocusAnalysis) string {
	if len(analyses) == 0 {
		return faintStyle.Render("No analyses recorded yet.") + "\n"
	}

	var b strings.Builder
	for _, a := range analyses {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			a.Timestamp.Local().Format("2006-01-02 15:04"),
			scoreStyle(a.FocusScore).Render(fmt.Sprintf("%3.0f", a.FocusScore)),
			firstLine(a.Summary),
		)
		b.WriteString(faintStyle.Render("  " + a.ID))
		b.WriteString("\n")
	}
	return b.String()
}

// firstLine returns the first non-empty line of s, truncated for display.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 60 {
			return line[:57] + "..."
		}
		return line
	}
	return ""
}
