package habits

import (
	"sort"
	"strings"

	"github.com/jmills-dev/streaks/internal/models"
)

// Filter narrows a habit list by category and free-text query. The query
// matches title, description, or category, case-insensitively. Empty
// arguments mean "no filter".
func Filter(habitList []models.Habit, query, category string) []models.Habit {
	result := habitList

	if category != "" {
		var byCategory []models.Habit
		for _, h := range result {
			if h.Category == category {
				byCategory = append(byCategory, h)
			}
		}
		result = byCategory
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		var byQuery []models.Habit
		for _, h := range result {
			if strings.Contains(strings.ToLower(h.Title), q) ||
				strings.Contains(strings.ToLower(h.Description), q) ||
				strings.Contains(strings.ToLower(h.Category), q) {
				byQuery = append(byQuery, h)
			}
		}
		result = byQuery
	}

	return result
}

// Categories returns the distinct non-empty categories present in the list,
// sorted, for building filter chips.
func Categories(habitList []models.Habit) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, h := range habitList {
		if h.Category != "" && !seen[h.Category] {
			seen[h.Category] = true
			categories = append(categories, h.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// ByFrequency splits habits into their frequency buckets. Habits without a
// frequency are excluded from all buckets.
func ByFrequency(habitList []models.Habit) (daily, weekly, monthly []models.Habit) {
	for _, h := range habitList {
		switch h.Frequency {
		case models.FrequencyDaily:
			daily = append(daily, h)
		case models.FrequencyWeekly:
			weekly = append(weekly, h)
		case models.FrequencyMonthly:
			monthly = append(monthly, h)
		}
	}
	return daily, weekly, monthly
}
