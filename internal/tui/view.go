package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ibadah/internal/badges"
	"github.com/julianstephens/ibadah/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.today.View())
	case StateDhikr:
		content = docStyle.Render(m.dhikr.View())
	case StateJournal:
		content = docStyle.Render(m.journal.View())
	case StateProgress:
		content = docStyle.Render(m.viewProgress())
	case StateAddReflection:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewProgress() string {
	s := m.app.Summary()
	var b strings.Builder

	b.WriteString(headerStyle.Render("Prayers") + "\n")
	fmt.Fprintf(&b, "  Streak %d (best %d) · on time %.0f%%\n", s.Prayers.CurrentStreak, s.Prayers.BestStreak, s.Prayers.OnTimeRate*100)
	writeWeekly(&b, s.Prayers.Weekly)

	b.WriteString("\n" + headerStyle.Render("Reflections") + "\n")
	fmt.Fprintf(&b, "  Streak %d (best %d) · %d this week · %d total\n",
		s.Reflections.CurrentStreak, s.Reflections.BestStreak, s.Reflections.ThisWeekReflections, s.Reflections.Total)

	b.WriteString("\n" + headerStyle.Render("Dhikr") + "\n")
	fmt.Fprintf(&b, "  Streak %d (best %d) · %d sessions · %d repetitions\n",
		s.Dhikr.CurrentStreak, s.Dhikr.BestStreak, s.Dhikr.TotalSessions, s.Dhikr.TotalCount)

	earned := m.app.Badges.List()
	b.WriteString("\n" + headerStyle.Render(fmt.Sprintf("Badges %d/%d", len(earned), len(badges.Catalog))) + "\n")
	if len(earned) == 0 {
		b.WriteString("  None yet. Keep going!\n")
	}
	for _, badge := range earned {
		fmt.Fprintf(&b, "  %s %s\n", badge.Icon, badge.Title)
	}
	return b.String()
}

func writeWeekly(b *strings.Builder, weekly []stats.DayBucket) {
	for _, d := range weekly {
		done := min(max(d.Completed, 0), d.Total)
		fmt.Fprintf(b, "  %s %s%s %d/%d\n", d.Day, strings.Repeat("█", done), strings.Repeat("░", d.Total-done), d.Completed, d.Total)
	}
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this reflection?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
