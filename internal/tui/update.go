package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/tui/components/counter"
	"github.com/julianstephens/ibadah/internal/tui/components/reflections"
	"github.com/julianstephens/ibadah/internal/tui/components/today"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.journal.SetSize(msg.Width-4, msg.Height-8)
		m.dhikr.SetWidth(msg.Width - 4)
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick()

	case today.MarkMsg:
		if err := m.app.Prayers.Mark(m.app.Today(), msg.Name, msg.Status); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("%s %s marked %s", models.StatusIcon(msg.Status), msg.Name, msg.Status)
		}
		return m.afterChange(), nil

	case counter.StartMsg:
		if !m.app.Dhikr.Start(msg.ID) {
			m.status = "Routine not found"
		}
		return m.afterChange(), nil
	case counter.TapMsg:
		if session := m.app.Dhikr.Increment(); session != nil {
			m.status = completed(session)
		}
		return m.afterChange(), nil
	case counter.NextMsg:
		if session := m.app.Dhikr.Next(); session != nil {
			m.status = completed(session)
		}
		return m.afterChange(), nil
	case counter.PauseMsg:
		if run, _, ok := m.app.Dhikr.Run(); ok && run.Running() {
			m.app.Dhikr.Pause()
		} else {
			m.app.Dhikr.Resume()
		}
		return m.afterChange(), nil
	case counter.ResetMsg:
		m.app.Dhikr.Reset()
		m.status = "Run reset"
		return m.afterChange(), nil

	case reflections.AddReflectionMsg:
		return m.startReflectionForm()
	case reflections.DeleteReflectionMsg:
		m.reflectionToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateAddReflection:
		return m.updateReflectionForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.journal.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.today, cmd = m.today.Update(msg)
	case StateDhikr:
		m.dhikr, cmd = m.dhikr.Update(msg)
	case StateJournal:
		m.journal, cmd = m.journal.Update(msg)
	}
	return m, cmd
}

// afterChange reloads components and announces badges earned by the change.
func (m Model) afterChange() Model {
	m.refresh()
	earned := m.app.Badges.List()
	if len(earned) > m.badgeCount {
		var titles []string
		for _, b := range earned[m.badgeCount:] {
			titles = append(titles, b.Icon+" "+b.Title)
		}
		m.status = "Badge earned: " + strings.Join(titles, ", ")
	}
	m.badgeCount = len(earned)
	return m
}

func completed(s *models.DhikrSession) string {
	return fmt.Sprintf("✓ Routine complete: %d repetitions in %s", s.TotalCount, s.Duration().Round(time.Second))
}

func (m Model) startReflectionForm() (tea.Model, tea.Cmd) {
	m.reflectionForm = &ReflectionFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.reflectionForm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					if len([]rune(s)) > constants.MaxReflectionTitle {
						return fmt.Errorf("title must be at most %d characters", constants.MaxReflectionTitle)
					}
					return nil
				}),
			huh.NewText().
				Title("Reflection").
				Value(&m.reflectionForm.Content),
		),
	)
	m.state = StateAddReflection
	return m, m.form.Init()
}

func (m Model) updateReflectionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateJournal
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m = m.submitReflection()
		m.state = StateJournal
	case huh.StateAborted:
		m.state = StateJournal
	}
	return m, cmd
}

// submitReflection saves the form contents.
func (m Model) submitReflection() Model {
	input := models.ReflectionInput{Title: m.reflectionForm.Title, Content: m.reflectionForm.Content}
	if _, err := m.app.Reflections.Create(input); err != nil {
		m.status = err.Error()
		return m
	}
	m.status = "✓ Reflection saved"
	return m.afterChange()
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if m.app.Reflections.Delete(m.reflectionToDeleteID) {
			m.status = "Reflection deleted"
		}
		m.reflectionToDeleteID = ""
		m.state = StateJournal
		return m.afterChange(), nil
	case key.Matches(keyMsg, m.keys.Cancel):
		m.reflectionToDeleteID = ""
		m.state = StateJournal
	}
	return m, nil
}
