// Package counter lists dhikr routines and drives the active run.
package counter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
)

var (
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	arabicStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	routineStyle = lipgloss.NewStyle().Bold(true)
)

type (
	// StartMsg starts or resumes the routine.
	StartMsg struct{ ID string }
	// TapMsg counts one repetition.
	TapMsg struct{}
	// NextMsg skips to the next dhikr.
	NextMsg struct{}
	// PauseMsg toggles pause.
	PauseMsg struct{}
	// ResetMsg abandons the run.
	ResetMsg struct{}
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Tap   key.Binding
	Next  key.Binding
	Pause key.Binding
	Reset key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Start: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Tap:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "count")),
		Next:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next dhikr")),
		Pause: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	}
}

type Model struct {
	Keys     KeyMap
	routines []models.DhikrRoutine
	cursor   int
	run      models.RunState
	routine  models.DhikrRoutine
	active   bool
	bar      progress.Model
}

func New() Model {
	return Model{Keys: DefaultKeyMap(), bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))}
}

// Set replaces the routines and the active run.
func (m *Model) Set(routines []models.DhikrRoutine, run models.RunState, routine models.DhikrRoutine, active bool) {
	m.routines = routines
	m.run = run
	m.routine = routine
	m.active = active
	if m.cursor >= len(routines) {
		m.cursor = max(len(routines)-1, 0)
	}
}

func (m *Model) SetWidth(width int) {
	m.bar.Width = min(max(width-10, 10), 60)
}

// Active reports whether a run is in progress.
func (m Model) Active() bool {
	return m.active
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.active {
		switch {
		case key.Matches(keyMsg, m.Keys.Tap):
			return m, emit(TapMsg{})
		case key.Matches(keyMsg, m.Keys.Next):
			return m, emit(NextMsg{})
		case key.Matches(keyMsg, m.Keys.Pause):
			return m, emit(PauseMsg{})
		case key.Matches(keyMsg, m.Keys.Reset):
			return m, emit(ResetMsg{})
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.Keys.Down):
		if m.cursor < len(m.routines)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.Keys.Start):
		if len(m.routines) > 0 {
			return m, emit(StartMsg{ID: m.routines[m.cursor].ID})
		}
	}
	return m, nil
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) View() string {
	if m.active {
		return m.viewRun()
	}
	if len(m.routines) == 0 {
		return "\n  No routines yet.\n  Create one with 'ibadah dhikr create'."
	}

	var b strings.Builder
	b.WriteString("Routines\n\n")
	for i, r := range m.routines {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		reps := 0
		for _, item := range r.Items {
			reps += item.Count
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, routineStyle.Render(r.Name),
			dimStyle.Render(fmt.Sprintf("%d dhikr · %d reps · completed %d times", len(r.Items), reps, r.CompletedCount)))
	}
	return b.String()
}

func (m Model) viewRun() string {
	if m.run.Index >= len(m.routine.Items) {
		return ""
	}
	item := m.routine.Items[m.run.Index]

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", routineStyle.Render(m.routine.Name),
		dimStyle.Render(fmt.Sprintf("dhikr %d of %d", m.run.Index+1, len(m.routine.Items))))
	b.WriteString(arabicStyle.Render(item.Text) + "\n")
	b.WriteString(item.Transliteration + "\n")
	b.WriteString(dimStyle.Render(item.Translation) + "\n\n")

	fmt.Fprintf(&b, "%s / %d\n", countStyle.Render(fmt.Sprintf("%d", m.run.Count)), item.Count)
	b.WriteString(m.bar.ViewAs(float64(m.run.Count)/float64(max(item.Count, 1))) + "\n")
	if m.run.Status == constants.RunPaused {
		b.WriteString("\n" + pausedStyle.Render("Paused") + "\n")
	}
	return b.String()
}
