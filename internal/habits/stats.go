package habits

import (
	"math"
	"time"

	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/utils"
)

// DailyProgress is one entry of a trailing completion window.
type DailyProgress struct {
	Date           string
	CompletedCount int
	TotalCount     int
}

// Percent returns the completion percentage for the day, or 0 when no daily
// habits exist (never divides by zero).
func (p DailyProgress) Percent() float64 {
	if p.TotalCount == 0 {
		return 0
	}
	return float64(p.CompletedCount) / float64(p.TotalCount) * 100
}

// TrailingWindow builds the per-day completion series for the last days
// calendar dates ending at asOf inclusive. Only daily-frequency habits
// participate: TotalCount is their number, CompletedCount how many of them
// have a satisfying record on that exact date. Ledger records referencing
// unknown habit ids are ignored.
func TrailingWindow(habitList []models.Habit, records []models.CompletionRecord, days int, asOf time.Time) []DailyProgress {
	daily := make(map[string]bool)
	total := 0
	for _, h := range habitList {
		if h.Frequency == models.FrequencyDaily {
			daily[h.ID] = true
			total++
		}
	}

	// date -> set of daily habit ids completed that day
	completedOn := make(map[string]map[string]bool)
	for _, r := range records {
		if !r.Completed || !daily[r.HabitID] {
			continue
		}
		day := utils.TruncateDate(r.Date)
		if completedOn[day] == nil {
			completedOn[day] = make(map[string]bool)
		}
		completedOn[day][r.HabitID] = true
	}

	window := make([]DailyProgress, 0, days)
	start := utils.DayOf(asOf).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		day := utils.FormatDate(start.AddDate(0, 0, i))
		window = append(window, DailyProgress{
			Date:           day,
			CompletedCount: len(completedOn[day]),
			TotalCount:     total,
		})
	}
	return window
}

// AverageCompletionRate returns the rounded mean of the window's per-day
// completion percentages.
func AverageCompletionRate(window []DailyProgress) int {
	if len(window) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range window {
		sum += p.Percent()
	}
	return int(math.Round(sum / float64(len(window))))
}

// CalendarMarks returns the set of distinct dates carrying at least one
// completion, keyed by YYYY-MM-DD. Used to mark the calendar heat-map.
func CalendarMarks(records []models.CompletionRecord) map[string]bool {
	marks := make(map[string]bool)
	for _, r := range records {
		if r.Completed {
			marks[utils.TruncateDate(r.Date)] = true
		}
	}
	return marks
}

// HabitsCompletedOn returns the habits with a completion record on exactly
// that date. This is deliberately an exact-date match even for weekly and
// monthly habits: the drill-down view reflects literal record dates, not
// period-expanded membership. Records for deleted habits are skipped.
func HabitsCompletedOn(date string, habitList []models.Habit, records []models.CompletionRecord) []models.Habit {
	day := utils.TruncateDate(date)
	done := make(map[string]bool)
	for _, r := range records {
		if r.Completed && utils.TruncateDate(r.Date) == day {
			done[r.HabitID] = true
		}
	}

	var completed []models.Habit
	for _, h := range habitList {
		if done[h.ID] {
			completed = append(completed, h)
		}
	}
	return completed
}
