package habits

import (
	"time"

	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/utils"
)

// ComputeStreak derives a habit's current state from the full ledger:
// whether the period containing asOf is satisfied, and the count of
// consecutive satisfied periods ending at it.
//
// The streak is always recomputed from scratch rather than incrementally
// maintained. The lookback bounds are small constants and habit counts are
// user-scale, so the O(habits x lookback) cost buys freedom from staleness
// and drift in cached values.
func ComputeStreak(habit models.Habit, records []models.CompletionRecord, asOf time.Time) (satisfiedNow bool, streak int) {
	switch habit.Frequency {
	case models.FrequencyDaily:
		return dailyStreak(habit.ID, records, asOf)
	case models.FrequencyWeekly:
		return weeklyStreak(habit.ID, records, asOf)
	case models.FrequencyMonthly:
		return monthlyStreak(habit.ID, records, asOf)
	default:
		// Habits without a frequency are excluded from streak tracking.
		return false, 0
	}
}

// DeriveView returns the habit with its derived fields recomputed against
// the ledger at now. Applied after every load; persisted values of
// Completed/Streak are never trusted.
func DeriveView(habit models.Habit, records []models.CompletionRecord, now time.Time) models.Habit {
	habit.Completed, habit.Streak = ComputeStreak(habit, records, now)
	return habit
}

func dailyStreak(habitID string, records []models.CompletionRecord, asOf time.Time) (bool, int) {
	days := habitDays(habitID, records)
	if !days[utils.FormatDate(asOf)] {
		return false, 0
	}

	streak := 1
	check := utils.DayOf(asOf)
	for i := 1; i <= constants.MaxDailyLookback; i++ {
		check = check.AddDate(0, 0, -1)
		if !days[utils.FormatDate(check)] {
			break
		}
		streak++
	}
	return true, streak
}

func weeklyStreak(habitID string, records []models.CompletionRecord, asOf time.Time) (bool, int) {
	days := habitDayTimes(habitID, records)
	anchor := utils.WeekStart(asOf)
	if !anyInRange(days, anchor, anchor.AddDate(0, 0, 6)) {
		return false, 0
	}

	streak := 1
	for i := 1; i <= constants.MaxWeeklyLookback; i++ {
		anchor = anchor.AddDate(0, 0, -7)
		if !anyInRange(days, anchor, anchor.AddDate(0, 0, 6)) {
			break
		}
		streak++
	}
	return true, streak
}

func monthlyStreak(habitID string, records []models.CompletionRecord, asOf time.Time) (bool, int) {
	days := habitDayTimes(habitID, records)
	anchor := utils.MonthStart(asOf)
	if !anyInRange(days, anchor, utils.MonthEnd(anchor)) {
		return false, 0
	}

	streak := 1
	for i := 1; i <= constants.MaxMonthlyLookback; i++ {
		// AddDate handles variable month lengths and the Dec -> Jan rollover
		// because the anchor is always the first of a month.
		anchor = anchor.AddDate(0, -1, 0)
		if !anyInRange(days, anchor, utils.MonthEnd(anchor)) {
			break
		}
		streak++
	}
	return true, streak
}

// habitDays collects the habit's satisfied dates as a YYYY-MM-DD set.
// Malformed dates are skipped rather than raised so one bad record cannot
// poison the whole computation.
func habitDays(habitID string, records []models.CompletionRecord) map[string]bool {
	days := make(map[string]bool)
	for _, r := range records {
		if r.HabitID != habitID || !r.Completed {
			continue
		}
		day := utils.TruncateDate(r.Date)
		if _, err := utils.ParseDate(day); err != nil {
			continue
		}
		days[day] = true
	}
	return days
}

func habitDayTimes(habitID string, records []models.CompletionRecord) []time.Time {
	var days []time.Time
	for _, r := range records {
		if r.HabitID != habitID || !r.Completed {
			continue
		}
		day, err := utils.ParseDate(r.Date)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

func anyInRange(days []time.Time, start, end time.Time) bool {
	for _, d := range days {
		if utils.InRange(d, start, end) {
			return true
		}
	}
	return false
}
