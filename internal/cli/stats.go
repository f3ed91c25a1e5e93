package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmills-dev/streaks/internal/habits"
	"github.com/jmills-dev/streaks/internal/utils"
)

type StatsCmd struct {
	Week     StatsWeekCmd     `cmd:"" help:"Show the trailing completion window for daily habits." default:"1"`
	Calendar StatsCalendarCmd `cmd:"" help:"Show a month calendar with completion marks."`
	Day      StatsDayCmd      `cmd:"" help:"Show the habits completed on a specific date."`
}

type StatsWeekCmd struct {
	Days int `help:"Window length in days." default:"7"`
}

func (c *StatsWeekCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("window must be at least 1 day")
	}

	list, err := ctx.Store.List()
	if err != nil {
		return err
	}

	window := habits.TrailingWindow(list, ctx.Ledger.Records(), c.Days, time.Now())

	fmt.Printf("Daily habit completion, last %d days:\n\n", c.Days)
	for _, p := range window {
		day, _ := utils.ParseDate(p.Date)
		bar := strings.Repeat("█", int(p.Percent()/10))
		fmt.Printf("  %s %s  %-10s %3.0f%%  (%d/%d)\n",
			day.Format("Mon"), p.Date, bar, p.Percent(), p.CompletedCount, p.TotalCount)
	}

	fmt.Printf("\nAverage completion: %d%%\n", habits.AverageCompletionRate(window))
	return nil
}

type StatsCalendarCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current month)." default:""`
}

func (c *StatsCalendarCmd) Run(ctx *Context) error {
	anchor := time.Now()
	if c.Month != "" {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
		anchor = parsed
	}

	marks := habits.CalendarMarks(ctx.Ledger.Records())

	start := utils.MonthStart(anchor)
	end := utils.MonthEnd(anchor)
	today := utils.FormatDate(time.Now())

	fmt.Printf("%s\n\n", start.Format("January 2006"))
	fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")

	// Pad the first week so day 1 lands on its weekday column.
	fmt.Print(strings.Repeat("    ", int(start.Weekday())))

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := utils.FormatDate(d)
		cell := fmt.Sprintf("%3d", d.Day())
		switch {
		case marks[date]:
			cell += "●"
		case date == today:
			cell += "·"
		default:
			cell += " "
		}
		fmt.Print(cell)
		if d.Weekday() == time.Saturday {
			fmt.Println()
		}
	}
	fmt.Println()

	marked := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if marks[utils.FormatDate(d)] {
			marked++
		}
	}
	fmt.Printf("\n%d active days this month (● = at least one completion)\n", marked)
	return nil
}

type StatsDayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *StatsDayCmd) Run(ctx *Context) error {
	day, err := ParseDay(c.Date)
	if err != nil {
		return err
	}

	list, err := ctx.Store.List()
	if err != nil {
		return err
	}

	completed := habits.HabitsCompletedOn(day, list, ctx.Ledger.Records())
	if len(completed) == 0 {
		fmt.Printf("No habits completed on %s.\n", day)
		return nil
	}

	fmt.Printf("Completed on %s:\n\n", day)
	for _, h := range completed {
		line := "  ✓ " + h.Title
		if h.Category != "" {
			line += "  #" + h.Category
		}
		fmt.Println(line)
	}
	return nil
}
