package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateStats

	// Overlay states, not reachable by tab cycling.
	StateHabitForm
	StateConfirmDelete

	NumMainTabs = 3
)

// HabitFormModel backs the add/edit form. Everything is a string because huh
// inputs bind strings; conversion to the typed draft happens on submit.
type HabitFormModel struct {
	Title       string
	Description string
	Category    string
	Frequency   string
	Icon        string
}

type Model struct {
	store         *habits.Store
	ledger        *habits.Ledger
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	editingID     string // empty when the form is adding
	deleteID      string
	deleteTitle   string
	formError     string
	statsAsOf     time.Time
	quitting      bool
	width, height int
}

func NewModel(store *habits.Store, ledger *habits.Ledger) Model {
	list, err := store.List()
	if err != nil {
		list = nil
	}

	return Model{
		store:     store,
		ledger:    ledger,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(list, 0, 0),
		statsAsOf: time.Now(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-9", "toggle habit"),
		))
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHabits reloads the derived habit list after a mutation.
func (m *Model) refreshHabits() {
	list, err := m.store.List()
	if err != nil {
		return
	}
	m.habitList.SetHabits(list)
}
