// Package today renders the five prayers of the current day.
package today

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/prayertimes"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(7)
	nameStyle   = lipgloss.NewStyle().Width(9)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	nextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	statusStyles = map[constants.PrayerStatus]lipgloss.Style{
		constants.StatusOnTime:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		constants.StatusLate:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		constants.StatusMissed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		constants.StatusPending: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
)

// MarkMsg asks the parent to set a prayer's status.
type MarkMsg struct {
	Name   constants.PrayerName
	Status constants.PrayerStatus
}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	OnTime  key.Binding
	Late    key.Binding
	Missed  key.Binding
	Pending key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		OnTime:  key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "on time")),
		Late:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "late")),
		Missed:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "missed")),
		Pending: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
}

type Model struct {
	Keys      KeyMap
	cursor    int
	record    models.DayRecord
	schedule  prayertimes.Schedule
	now       time.Time
	streak    int
	motivator string
}

func New() Model {
	return Model{Keys: DefaultKeyMap(), record: models.NewDayRecord()}
}

// Set replaces the displayed day.
func (m *Model) Set(rec models.DayRecord, schedule prayertimes.Schedule, now time.Time, streak int, motivation string) {
	m.record = rec
	m.schedule = schedule
	m.now = now
	m.streak = streak
	m.motivator = motivation
}

// Selected is the prayer under the cursor.
func (m Model) Selected() constants.PrayerName {
	return constants.Prayers[m.cursor]
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var status constants.PrayerStatus
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.Down):
		if m.cursor < len(constants.Prayers)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.OnTime):
		status = constants.StatusOnTime
	case key.Matches(keyMsg, m.Keys.Late):
		status = constants.StatusLate
	case key.Matches(keyMsg, m.Keys.Missed):
		status = constants.StatusMissed
	case key.Matches(keyMsg, m.Keys.Pending):
		status = constants.StatusPending
	default:
		return m, nil
	}

	name := m.Selected()
	return m, func() tea.Msg { return MarkMsg{Name: name, Status: status} }
}

func (m Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.now.Format("Monday, 2 January 2006"))

	for i, name := range constants.Prayers {
		p := m.record[name]
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		style := statusStyles[p.Status]
		line := cursor + style.Render(models.StatusIcon(p.Status)) + " " +
			nameStyle.Render(string(name)) + timeStyle.Render(m.schedule.Get(name)) + style.Render(string(p.Status))
		if p.Note != "" {
			line += "  " + noteStyle.Render(p.Note)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if len(m.schedule.Entries) > 0 {
		next, tomorrow := prayertimes.NextPrayer(m.schedule, m.now)
		when := next.Time
		if tomorrow {
			when += " tomorrow"
		}
		b.WriteString(nextStyle.Render(fmt.Sprintf("Next: %s at %s", next.Name, when)) + "\n")
	}
	fmt.Fprintf(&b, "%d/%d prayed · streak %d\n", m.record.CompletedCount(), constants.PrayersPerDay, m.streak)
	if m.motivator != "" {
		b.WriteString(noteStyle.Render(m.motivator) + "\n")
	}
	return b.String()
}
