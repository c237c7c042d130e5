package view

import (
	"time"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
)

// Mode is the layout the grid is rendered in.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeViewAll
	ModeSingle
)

// DayCell is one clickable day of a habit's calendar.
type DayCell struct {
	Date      time.Time
	Key       string // YYYY-MM-DD
	Completed bool
	IsToday   bool
}

type WeekRow struct {
	Monday time.Time
	Days   [7]DayCell
}

// HabitPanel is a habit with the weeks shown for it.
type HabitPanel struct {
	Habit     models.Habit
	Collapsed bool
	Weeks     []WeekRow
}

type GroupPanel struct {
	Name   string
	Habits []HabitPanel
}

// Grid is the render-ready structure. Groups is set in ModeViewAll and
// Single in ModeSingle.
type Grid struct {
	Mode   Mode
	Groups []GroupPanel
	Single *HabitPanel
}

// Option is an entry of the habit picker.
type Option struct {
	ID    string
	Label string
}

// Build derives the grid for the current state.
func Build(habits []models.Habit, idx CompletionIndex, s ViewState, now time.Time) Grid {
	if len(habits) == 0 {
		return Grid{Mode: ModeEmpty}
	}

	switch s.Selection.Kind {
	case ViewAll:
		groups := GroupByCategory(habits, now)
		out := Grid{Mode: ModeViewAll, Groups: make([]GroupPanel, 0, len(groups))}
		for _, g := range groups {
			gp := GroupPanel{Name: g.Name, Habits: make([]HabitPanel, 0, len(g.Habits))}
			for _, h := range g.Habits {
				gp.Habits = append(gp.Habits, HabitPanel{
					Habit:     h,
					Collapsed: s.IsCollapsed(h.ID),
					Weeks:     buildWeeks(h.ID, VisibleWeeks(s, h.ID, now), idx, now),
				})
			}
			out.Groups = append(out.Groups, gp)
		}
		return out

	case SingleHabit:
		for _, h := range habits {
			if h.ID != s.Selection.HabitID {
				continue
			}
			return Grid{
				Mode: ModeSingle,
				Single: &HabitPanel{
					Habit: h,
					Weeks: buildWeeks(h.ID, s.Weeks, idx, now),
				},
			}
		}
	}

	return Grid{Mode: ModeEmpty}
}

func buildWeeks(habitID string, weeks []calendar.Week, idx CompletionIndex, now time.Time) []WeekRow {
	rows := make([]WeekRow, len(weeks))
	for i, w := range weeks {
		rows[i].Monday = w.Monday()
		for d, date := range w {
			rows[i].Days[d] = DayCell{
				Date:      date,
				Key:       calendar.FormatForStorage(date),
				Completed: idx.Completed(habitID, date),
				IsToday:   calendar.IsCurrentDay(date, now),
			}
		}
	}
	return rows
}

// PickerOptions lists "View All" followed by the habits in flat order.
func PickerOptions(habits []models.Habit) []Option {
	opts := make([]Option, 0, len(habits)+1)
	opts = append(opts, Option{ID: constants.ViewAllID, Label: "View All"})
	for _, h := range SortFlat(habits) {
		opts = append(opts, Option{ID: h.ID, Label: h.Name})
	}
	return opts
}

// Panels flattens the grid into display order.
func (g Grid) Panels() []HabitPanel {
	switch g.Mode {
	case ModeSingle:
		return []HabitPanel{*g.Single}
	case ModeViewAll:
		var out []HabitPanel
		for _, gp := range g.Groups {
			out = append(out, gp.Habits...)
		}
		return out
	}
	return nil
}
