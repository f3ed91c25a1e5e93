package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmills-dev/streaks/internal/backup"
	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/logger"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/session"
	"github.com/jmills-dev/streaks/internal/storage"
	"github.com/jmills-dev/streaks/internal/utils"
)

type Context struct {
	KV       storage.KV
	Store    *habits.Store
	Ledger   *habits.Ledger
	Sessions *session.Manager
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.KV.Path())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveHabit finds a habit by id or by title. Title matching is
// case-insensitive and must be unambiguous.
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	if h, err := c.Store.Get(ref); err == nil {
		return h, nil
	}

	list, err := c.Store.List()
	if err != nil {
		return models.Habit{}, err
	}

	var matches []models.Habit
	for _, h := range list {
		if strings.EqualFold(h.Title, ref) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, h := range matches {
			ids = append(ids, h.ID)
		}
		return models.Habit{}, fmt.Errorf("habit title %q is ambiguous, use an id: %s", ref, strings.Join(ids, ", "))
	}
}

// ParseDay resolves a --date flag value: empty means today, otherwise
// YYYY-MM-DD is required.
func ParseDay(s string) (string, error) {
	if s == "" {
		return utils.FormatDate(time.Now()), nil
	}
	if _, err := utils.ParseDate(s); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return utils.TruncateDate(s), nil
}

// FormatFrequency renders a habit's frequency for list output.
func FormatFrequency(f models.Frequency) string {
	if f == "" {
		return "untracked"
	}
	return string(f)
}

// StreakBadge renders a habit's streak counter, or "" when there is
// nothing to show.
func StreakBadge(h models.Habit) string {
	if h.Streak == 0 {
		return ""
	}
	unit := map[models.Frequency]string{
		models.FrequencyDaily:   "day",
		models.FrequencyWeekly:  "week",
		models.FrequencyMonthly: "month",
	}[h.Frequency]
	if unit == "" {
		return ""
	}
	if h.Streak > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s streak", h.Streak, unit)
}
