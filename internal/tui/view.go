package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/view"
)

var weekdayHeader = strings.Repeat(" ", 11) + "Mon Tue Wed Thu Fri Sat Sun"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case !m.loaded:
		content = docStyle.Render("Loading habits...")
	case m.state == constants.StatePicker:
		content = m.picker.View()
	case m.state == constants.StateAddHabit:
		content = docStyle.Render(m.form.View())
	default:
		content = docStyle.Render(m.vp.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.viewStatus(),
		m.help.View(m.keys),
	)
}

func (m Model) viewHeader() string {
	title := headerStyle.Render("habitgrid")
	if !m.loaded {
		return title
	}
	return title + " " + m.selectionLabel()
}

// selectionLabel names what the grid shows, as the picker would.
func (m Model) selectionLabel() string {
	sel := m.tr.State().Selection
	switch sel.Kind {
	case view.ViewAll:
		return "View All"
	case view.SingleHabit:
		for _, h := range m.tr.Habits() {
			if h.ID == sel.HabitID {
				return h.Name
			}
		}
	}
	return mutedStyle.Render("no selection")
}

func (m Model) viewStatus() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return ""
}

// renderGrid lays g out line by line and returns the text together with
// the week rows in display order, so the cursor can address them.
func renderGrid(g view.Grid, cur cursor) (string, []rowRef) {
	var (
		lines []string
		rows  []rowRef
	)

	addPanel := func(p view.HabitPanel, indent string, collapsible bool) {
		title := p.Habit.Name
		if !p.Habit.IsPositive {
			title += mutedStyle.Render(" (avoid)")
		}
		if collapsible {
			arrow := "▾ "
			if p.Collapsed {
				arrow = "▸ "
			}
			title = arrow + title
		}
		lines = append(lines, indent+habitStyle.Render(title))
		lines = append(lines, indent+mutedStyle.Render(weekdayHeader))

		for _, week := range p.Weeks {
			ref := rowRef{habitID: p.Habit.ID, name: p.Habit.Name, line: len(lines)}
			var b strings.Builder
			b.WriteString(calendar.FormatForStorage(week.Monday))
			b.WriteString(" ")
			for d, day := range week.Days {
				ref.days[d] = day.Date
				focused := len(rows) == cur.row && d == cur.day
				b.WriteString(renderCell(day, p.Habit.IsPositive, focused))
				if d < len(week.Days)-1 {
					b.WriteString(" ")
				}
			}
			lines = append(lines, indent+b.String())
			rows = append(rows, ref)
		}
	}

	switch g.Mode {
	case view.ModeEmpty:
		lines = append(lines, "", "No habits yet.", "Press 'a' to add one.")
	case view.ModeSingle:
		addPanel(*g.Single, "", false)
	case view.ModeViewAll:
		for i, group := range g.Groups {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, groupStyle.Render(strings.ToUpper(group.Name)))
			for _, p := range group.Habits {
				addPanel(p, "  ", true)
			}
		}
	}

	return strings.Join(lines, "\n"), rows
}

func renderCell(day view.DayCell, positive, focused bool) string {
	mark, st := "·", mutedStyle
	if day.Completed {
		mark, st = "■", doneStyle
		if !positive {
			st = lapseStyle
		}
	}
	if day.IsToday {
		st = st.Inherit(todayStyle)
	}
	if focused {
		st = cursorStyle
	}
	return st.Render(" " + mark + " ")
}
