package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Habit Form State
	if m.state == StateHabitForm {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			var err error
			if m.editingID == "" {
				_, err = m.store.Create(models.HabitDraft{
					Title:       m.habitForm.Title,
					Description: m.habitForm.Description,
					Category:    m.habitForm.Category,
					Frequency:   models.Frequency(m.habitForm.Frequency),
					Icon:        m.habitForm.Icon,
				})
			} else {
				freq := models.Frequency(m.habitForm.Frequency)
				_, err = m.store.Update(m.editingID, models.HabitPatch{
					Title:       &m.habitForm.Title,
					Description: &m.habitForm.Description,
					Category:    &m.habitForm.Category,
					Frequency:   &freq,
					Icon:        &m.habitForm.Icon,
				})
			}

			if err != nil {
				// Stay in the form so the user can correct the input.
				m.formError = fmt.Sprintf("Failed to save habit: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			m.formError = ""
			m.refreshHabits()
			m.state = StateHabits
		case huh.StateAborted:
			m.formError = ""
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.Delete(m.deleteID); err == nil {
					m.refreshHabits()
				}
				m.state = StateHabits
				m.deleteID = ""
				m.deleteTitle = ""
			case "n", "N", "esc", "q":
				m.state = StateHabits
				m.deleteID = ""
				m.deleteTitle = ""
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 4 // tabs + help

		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, listHeight-v)

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Frequency: string(models.FrequencyDaily),
		}
		m.editingID = ""
		m.form = NewHabitForm(m.habitForm)
		m.state = StateHabitForm
		return m, m.form.Init()

	case habitlist.EditHabitMsg:
		m.habitForm = &HabitFormModel{
			Title:       msg.Habit.Title,
			Description: msg.Habit.Description,
			Category:    msg.Habit.Category,
			Frequency:   string(msg.Habit.Frequency),
			Icon:        msg.Habit.Icon,
		}
		m.editingID = msg.Habit.ID
		m.form = NewHabitForm(m.habitForm)
		m.state = StateHabitForm
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		if _, err := m.store.Toggle(msg.ID); err == nil {
			m.refreshHabits()
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		if habit, err := m.store.Get(msg.ID); err == nil {
			m.deleteID = habit.ID
			m.deleteTitle = habit.Title
			m.state = StateConfirmDelete
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.state = (m.state + 1) % NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.state = (m.state - 1 + NumMainTabs) % NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		// Today tab: number keys toggle the Nth habit.
		if m.state == StateToday {
			s := msg.String()
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				idx := int(s[0] - '1')
				list, err := m.store.List()
				if err == nil && idx < len(list) {
					if _, err := m.store.Toggle(list[idx].ID); err == nil {
						m.refreshHabits()
					}
				}
				return m, nil
			}
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
