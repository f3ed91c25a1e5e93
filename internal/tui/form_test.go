package tui

import (
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/jmills-dev/streaks/internal/constants"
	"github.com/jmills-dev/streaks/internal/models"
)

func countOption(opts []huh.Option[string], value string) int {
	n := 0
	for _, o := range opts {
		if o.Value == value {
			n++
		}
	}
	return n
}

func TestHabitFormKeepsUnlistedValues(t *testing.T) {
	// A free-string category and the default icon are both valid on a habit
	// but absent from the fixed picker options; editing must not lose them.
	fm := &HabitFormModel{Category: "gardening", Icon: constants.DefaultIcon}

	categories, icons := habitFormOptions(fm)
	if !hasOption(categories, "gardening") {
		t.Error("free-string category should appear as a select option")
	}
	if !hasOption(icons, constants.DefaultIcon) {
		t.Error("the habit's current icon should appear as a select option")
	}
}

func TestHabitFormNoDuplicateOptions(t *testing.T) {
	fm := &HabitFormModel{Category: models.CategoryHealth, Icon: models.IconOptions[0]}

	categories, icons := habitFormOptions(fm)
	if got := countOption(categories, models.CategoryHealth); got != 1 {
		t.Errorf("category %q appears %d times, want 1", models.CategoryHealth, got)
	}
	if got := countOption(icons, models.IconOptions[0]); got != 1 {
		t.Errorf("icon %q appears %d times, want 1", models.IconOptions[0], got)
	}
}

func TestHabitFormEmptyValuesAddNoOptions(t *testing.T) {
	blank := &HabitFormModel{}
	categories, icons := habitFormOptions(blank)

	// "" is already the None/Default option; a blank form adds nothing.
	if got := countOption(categories, ""); got != 1 {
		t.Errorf("empty category option appears %d times, want 1", got)
	}
	if got := countOption(icons, ""); got != 1 {
		t.Errorf("empty icon option appears %d times, want 1", got)
	}
}
