package cli

import (
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/view"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Show   HabitShowCmd   `cmd:"" help:"Show the habit grid."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Negative bool   `help:"Track a habit to avoid rather than to build."`
	Category string `help:"Category used to group habits (e.g. morning, work)."`
	Order    *int   `help:"Position within the category."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	n := models.NewHabit{
		Name:       c.Name,
		IsPositive: !c.Negative,
		Category:   models.Some(c.Category),
	}
	if c.Order != nil {
		n.Order = models.Some(*c.Order)
	}

	sctx, cancel := ctx.StoreContext()
	defer cancel()
	habit, err := tr.AddHabit(sctx, n)
	if err != nil {
		return err
	}

	ctx.Printf("✓ Added habit: %s (%s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habits := view.SortFlat(tr.Habits())
	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		kind := "+"
		if !h.IsPositive {
			kind = "-"
		}
		ctx.Printf("%s %-24s %-10s %s\n", kind, h.Name, view.CategoryOf(h), h.ID)
	}
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit name or ID."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habit, err := FindHabit(tr.Habits(), c.Habit)
	if err != nil {
		return err
	}

	day := tr.Now()
	if c.Date != "" {
		day, err = calendar.ParseStorageDate(c.Date, time.Local)
		if err != nil {
			return err
		}
	}

	sctx, cancel := ctx.StoreContext()
	defer cancel()
	rec, err := tr.ToggleCompletion(sctx, habit.ID, day)
	if err != nil {
		return err
	}

	if rec.Completed {
		ctx.Printf("✓ %s completed on %s\n", habit.Name, rec.Date)
	} else {
		ctx.Printf("○ %s cleared on %s\n", habit.Name, rec.Date)
	}
	return nil
}

type HabitShowCmd struct {
	Habit  string `arg:"" optional:"" help:"Habit name or ID (default: all habits)."`
	Expand bool   `help:"Show four weeks for every habit in the grouped view."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	tr, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if strings.TrimSpace(c.Habit) != "" {
		habit, err := FindHabit(tr.Habits(), c.Habit)
		if err != nil {
			return err
		}
		tr.Select(habit.ID)
	} else {
		tr.Select(constants.ViewAllID)
		if c.Expand {
			state := tr.State()
			for _, h := range tr.Habits() {
				if state.IsCollapsed(h.ID) {
					tr.ToggleCollapse(h.ID)
				}
			}
		}
	}

	RenderGrid(ctx.Stdout(), tr.Grid(tr.Now()))
	return nil
}
