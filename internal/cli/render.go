package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/view"
)

const (
	markDone    = "■"
	markMissing = "·"
)

var weekdayHeader = "            " + strings.Join([]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, " ")

// RenderGrid writes a plain-text rendering of g. Today's cell is bracketed.
func RenderGrid(w io.Writer, g view.Grid) {
	switch g.Mode {
	case view.ModeEmpty:
		fmt.Fprintln(w, "No habits to show.")
	case view.ModeSingle:
		renderPanel(w, *g.Single, "")
	case view.ModeViewAll:
		for i, group := range g.Groups {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", strings.ToUpper(group.Name))
			for _, p := range group.Habits {
				renderPanel(w, p, "  ")
			}
		}
	}
}

func renderPanel(w io.Writer, p view.HabitPanel, indent string) {
	title := p.Habit.Name
	if !p.Habit.IsPositive {
		title += " (avoid)"
	}
	if p.Collapsed {
		title += " [collapsed]"
	}
	fmt.Fprintf(w, "%s%s\n", indent, title)
	fmt.Fprintf(w, "%s%s\n", indent, weekdayHeader)
	for _, row := range p.Weeks {
		var b strings.Builder
		b.WriteString(calendar.FormatForStorage(row.Monday))
		b.WriteString(" ")
		for _, day := range row.Days {
			b.WriteString(renderCell(day))
		}
		fmt.Fprintf(w, "%s%s\n", indent, strings.TrimRight(b.String(), " "))
	}
}

func renderCell(day view.DayCell) string {
	mark := markMissing
	if day.Completed {
		mark = markDone
	}
	if day.IsToday {
		return " [" + mark + "]"
	}
	return "  " + mark + " "
}
