package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateToday:
		content = docStyle.Render(m.viewToday())
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateHabitForm:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Habits", "Stats"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	list, err := m.store.List()
	if err != nil || len(list) == 0 {
		return "\n  No habits yet.\n  Switch to the Habits tab and press 'a' to add one."
	}

	var b strings.Builder
	today := utils.FormatDate(time.Now())
	b.WriteString(fmt.Sprintf("Habits for %s\n\n", today))

	completed := 0
	for i, h := range list {
		marker := "○"
		line := h.Title
		if h.Completed {
			marker = "✓"
			line = completedStyle.Render(line)
			completed++
		}
		entry := fmt.Sprintf("  [%d] %s %s", i+1, marker, line)
		if h.Streak > 0 {
			entry += "  " + streakStyle.Render(fmt.Sprintf("🔥%d", h.Streak))
		}
		b.WriteString(entry + "\n")
	}

	b.WriteString(fmt.Sprintf("\nCompleted: %d/%d", completed, len(list)))
	b.WriteString(mutedStyle.Render("\nPress a habit's number to toggle it."))
	return b.String()
}

func (m Model) viewStats() string {
	list, err := m.store.List()
	if err != nil {
		return "Failed to load habits."
	}

	records := m.ledger.Records()
	window := habits.TrailingWindow(list, records, 7, m.statsAsOf)

	var b strings.Builder
	b.WriteString("Daily completion, last 7 days\n\n")
	for _, p := range window {
		day, _ := utils.ParseDate(p.Date)
		bar := strings.Repeat("█", int(p.Percent()/10))
		b.WriteString(fmt.Sprintf("  %s  %-10s %3.0f%%  (%d/%d)\n",
			day.Format("Mon"), bar, p.Percent(), p.CompletedCount, p.TotalCount))
	}

	b.WriteString(fmt.Sprintf("\nAverage completion: %d%%\n", habits.AverageCompletionRate(window)))

	marks := habits.CalendarMarks(records)
	start := utils.MonthStart(m.statsAsOf)
	end := utils.MonthEnd(m.statsAsOf)
	active := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if marks[utils.FormatDate(d)] {
			active++
		}
	}
	b.WriteString(fmt.Sprintf("Active days in %s: %d\n", start.Format("January"), active))
	return b.String()
}

func (m Model) viewForm() string {
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, dangerStyle.Render(m.formError), view)
	}
	return view
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q and its completion history?", m.deleteTitle)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
