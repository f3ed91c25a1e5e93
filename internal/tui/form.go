package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/jmills-dev/streaks/internal/models"
)

// habitFormOptions builds the category and icon choices for the habit form.
// Categories are free strings and icons may be the default glyph, so a value
// already on the habit that is not among the fixed picker options is appended
// as a choice of its own; otherwise the select would snap to its first option
// and an unmodified save would blank the field.
func habitFormOptions(fm *HabitFormModel) (categories, icons []huh.Option[string]) {
	categories = []huh.Option[string]{
		huh.NewOption("None", ""),
		huh.NewOption("Health", models.CategoryHealth),
		huh.NewOption("Fitness", models.CategoryFitness),
		huh.NewOption("Productivity", models.CategoryProductivity),
		huh.NewOption("Mental health", models.CategoryMentalHealth),
		huh.NewOption("Learning", models.CategoryLearning),
	}
	if fm.Category != "" && !hasOption(categories, fm.Category) {
		categories = append(categories, huh.NewOption(fm.Category, fm.Category))
	}

	icons = make([]huh.Option[string], 0, len(models.IconOptions)+2)
	icons = append(icons, huh.NewOption("Default", ""))
	for _, icon := range models.IconOptions {
		icons = append(icons, huh.NewOption(icon, icon))
	}
	if fm.Icon != "" && !hasOption(icons, fm.Icon) {
		icons = append(icons, huh.NewOption(fm.Icon, fm.Icon))
	}

	return categories, icons
}

func hasOption(opts []huh.Option[string], value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// NewHabitForm builds the add/edit habit form bound to fm.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	categoryOptions, iconOptions := habitFormOptions(fm)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Monthly", string(models.FrequencyMonthly)),
				).
				Value(&fm.Frequency),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOptions...).
				Value(&fm.Icon),
		),
	)
}
