package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ibadah/internal/badges"
	"github.com/julianstephens/ibadah/internal/prayertimes"
	"github.com/julianstephens/ibadah/internal/store"
	"github.com/julianstephens/ibadah/internal/tui/components/counter"
	"github.com/julianstephens/ibadah/internal/tui/components/reflections"
	"github.com/julianstephens/ibadah/internal/tui/components/today"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateDhikr
	StateJournal
	StateProgress
	StateAddReflection
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab.
const tabCount = 4

var tabTitles = [tabCount]string{"Today", "Dhikr", "Journal", "Progress"}

type ReflectionFormModel struct {
	Title   string
	Content string
}

type tickMsg time.Time

type Model struct {
	app                  *store.App
	times                *prayertimes.Service
	state                SessionState
	keys                 KeyMap
	help                 help.Model
	today                today.Model
	dhikr                counter.Model
	journal              reflections.Model
	form                 *huh.Form
	reflectionForm       *ReflectionFormModel
	reflectionToDeleteID string
	status               string // result of the last action
	badgeCount           int
	quitting             bool
	width                int
	height               int
}

func NewModel(app *store.App, times *prayertimes.Service) Model {
	if times == nil {
		times = prayertimes.NewService(nil)
	}
	m := Model{
		app:        app,
		times:      times,
		state:      StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		today:      today.New(),
		dhikr:      counter.New(),
		journal:    reflections.New(nil, 0, 0),
		badgeCount: len(app.Badges.List()),
	}
	m.refresh()
	return m
}

// refresh reloads every component from the store.
func (m *Model) refresh() {
	now := m.app.Now()
	rec := m.app.Prayers.EnsureToday()
	streak := m.app.Summary().Prayers.CurrentStreak
	m.today.Set(rec, m.times.ForDay(m.app.Settings.Get(), now), now, streak, badges.Motivation(streak, nil))

	run, routine, ok := m.app.Dhikr.Run()
	m.dhikr.Set(m.app.Dhikr.Routines(), run, routine, ok)
	m.journal.SetReflections(m.app.Reflections.List())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		tk := m.today.Keys
		keys = append(keys, tk.OnTime, tk.Late, tk.Missed, tk.Pending)
	case StateDhikr:
		ck := m.dhikr.Keys
		if m.dhikr.Active() {
			keys = append(keys, ck.Tap, ck.Next, ck.Pause, ck.Reset)
		} else {
			keys = append(keys, ck.Start)
		}
	case StateJournal:
		rk := reflections.DefaultKeyMap()
		keys = append(keys, rk.Add, rk.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	return [][]key.Binding{global, navigation, m.ShortHelp()[3:]}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// tick refreshes the next-prayer line and the date at midnight.
func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}
