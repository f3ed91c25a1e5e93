package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/models"
	"github.com/jmills-dev/streaks/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with streaks."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completion history."`
	Done   HabitDoneCmd   `cmd:"" help:"Toggle today's completion for a habit."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status."`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional description." default:""`
	Category    string `help:"Category (health, fitness, productivity, mental_health, learning, or free text)." default:""`
	Frequency   string `help:"Tracking frequency: daily, weekly, or monthly." default:"daily"`
	Icon        string `help:"Icon identifier." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.Create(models.HabitDraft{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Frequency:   models.Frequency(c.Frequency),
		Icon:        c.Icon,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, %s)\n", habit.Title, FormatFrequency(habit.Frequency), habit.ID)
	return nil
}

type HabitListCmd struct {
	Category string `help:"Only show habits in this category."`
	Search   string `help:"Filter by free-text query against title, description, and category."`
	Grouped  bool   `help:"Group output by frequency."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	list, err := ctx.Store.List()
	if err != nil {
		return err
	}

	list = habits.Filter(list, c.Search, c.Category)
	if len(list) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	if c.Grouped {
		daily, weekly, monthly := habits.ByFrequency(list)
		printGroup("Daily", daily)
		printGroup("Weekly", weekly)
		printGroup("Monthly", monthly)
		return nil
	}

	for _, h := range list {
		printHabitLine(h)
	}
	return nil
}

func printGroup(heading string, group []models.Habit) {
	if len(group) == 0 {
		return
	}
	fmt.Printf("%s:\n", heading)
	for _, h := range group {
		printHabitLine(h)
	}
	fmt.Println()
}

func printHabitLine(h models.Habit) {
	status := "[ ]"
	if h.Completed {
		status = "[x]"
	}
	line := fmt.Sprintf("%s %s", status, h.Title)
	if badge := StreakBadge(h); badge != "" {
		line += "  (" + badge + ")"
	}
	if h.Category != "" {
		line += "  #" + h.Category
	}
	fmt.Printf("%s  [%s]\n", line, h.ID)
}

type HabitEditCmd struct {
	Habit       string  `arg:"" help:"Habit id or title."`
	Title       *string `help:"New title."`
	Description *string `help:"New description."`
	Category    *string `help:"New category."`
	Frequency   *string `help:"New frequency: daily, weekly, or monthly."`
	Icon        *string `help:"New icon identifier."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	patch := models.HabitPatch{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Icon:        c.Icon,
	}
	if c.Frequency != nil {
		f := models.Frequency(*c.Frequency)
		patch.Frequency = &f
	}

	updated, err := ctx.Store.Update(habit.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", updated.Title)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
	Yes   bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete habit %q and all of its completion history? [y/N]: ", habit.Title)
		var response string
		fmt.Scanln(&response)
		if r := strings.ToLower(strings.TrimSpace(response)); r != "y" && r != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	// Deleting also prunes the habit's completion history, so keep a
	// recovery point around.
	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Delete(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Title)
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id or title."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	habit, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	updated, err := ctx.Store.Toggle(habit.ID)
	if err != nil {
		return err
	}

	day := utils.FormatDate(time.Now())
	if updated.Completed {
		msg := fmt.Sprintf("Marked %q done for %s", updated.Title, day)
		if badge := StreakBadge(updated); badge != "" {
			msg += "  (" + badge + ")"
		}
		fmt.Println(msg)
	} else {
		fmt.Printf("Unmarked %q for %s\n", updated.Title, day)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	list, err := ctx.Store.List()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.FormatDate(time.Now())
	fmt.Printf("Habits for %s:\n\n", today)

	completed := 0
	for _, h := range list {
		status := "[ ]"
		if h.Completed {
			status = "[x]"
			completed++
		}
		line := fmt.Sprintf("%s %s", status, h.Title)
		if badge := StreakBadge(h); badge != "" {
			line += "  (" + badge + ")"
		}
		fmt.Println(line)
	}

	fmt.Printf("\nCompleted: %d/%d\n", completed, len(list))
	return nil
}
