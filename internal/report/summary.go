package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#14B8A6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	numberStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8FAFC"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))
)

// Summary renders the terminal view of one analysis run.
func Summary(d Data) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shell learning summary"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d commands (%d distinct) across %d session(s)",
		d.TotalOccurrences, len(d.Commands), d.SessionCount)))
	b.WriteString("\n\n")

	groups := d.Categories()
	if len(groups) == 0 {
		b.WriteString(dimStyle.Render("No commands found."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render("By category"))
	b.WriteString("\n")
	for _, g := range groups {
		total := 0
		for _, c := range g.Commands {
			total += c.Frequency
		}
		b.WriteString(fmt.Sprintf("  %-20s %s %s\n",
			g.Name,
			numberStyle.Render(fmt.Sprintf("%4d", total)),
			barStyle.Render(strings.Repeat("█", scale(total, 30)))))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Top commands"))
	b.WriteString("\n")
	for _, c := range d.TopCommands(10) {
		b.WriteString(fmt.Sprintf("  %s ×%d  %s\n",
			numberStyle.Render(fmt.Sprintf("%d/5", c.Complexity)),
			c.Frequency,
			commandStyle.Render(truncate(c.FirstSeen, 70))))
	}

	if d.Quiz != nil && len(d.Quiz.Questions) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Quiz"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s questions generated", numberStyle.Render(fmt.Sprintf("%d", len(d.Quiz.Questions)))))
		if d.Quiz.Shortfall > 0 {
			b.WriteString(warnStyle.Render(fmt.Sprintf(" (%d short of requested)", d.Quiz.Shortfall)))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  seed %d (rerun with --seed %d for the same set)", d.Seed, d.Seed)))
		b.WriteString("\n")
	}

	for _, w := range d.Warnings {
		b.WriteString(warnStyle.Render("  ! " + w))
		b.WriteString("\n")
	}
	return b.String()
}

// scale maps n onto a 1..max bar length, 0 staying 0.
func scale(n, max int) int {
	if n <= 0 {
		return 0
	}
	if n >= max {
		return max
	}
	return n
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
