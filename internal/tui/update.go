package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/view"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.refresh()
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.err = nil
		if msg.err != nil {
			m.err = fmt.Errorf("some data failed to load: %w", msg.err)
		}
		m.refresh()
		m.focusToday()
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("could not save %s: %w", msg.habitName, msg.err)
			m.status = ""
		} else {
			m.err = nil
			if msg.completion.Completed {
				m.status = fmt.Sprintf("✓ %s completed on %s", msg.habitName, msg.completion.Date)
			} else {
				m.status = fmt.Sprintf("○ %s cleared on %s", msg.habitName, msg.completion.Date)
			}
		}
		m.refresh()
		return m, nil

	case addedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("could not add habit: %w", msg.err)
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Added %s", msg.habit.Name)
		m.vp.GotoTop()
		m.refresh()
		m.focusToday()
		return m, nil
	}

	switch m.state {
	case constants.StateAddHabit:
		return m.updateForm(msg)
	case constants.StatePicker:
		return m.updatePicker(msg)
	}
	return m.updateGrid(msg)
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Picker):
			if !m.loaded {
				return m, nil
			}
			m.openPicker()
			return m, nil
		case key.Matches(msg, m.keys.Add):
			if !m.loaded {
				return m, nil
			}
			m.habitForm = &habitForm{IsPositive: true}
			m.form = newHabitForm(m.habitForm)
			m.state = constants.StateAddHabit
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Up):
			m.moveRow(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveRow(1)
			if m.cursor.row >= len(m.rows)-constants.ScrollThresholdLines {
				m.scrolled()
			}
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.moveDay(-1)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.moveDay(1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			row, ok := m.focusedRow()
			if !ok {
				return m, nil
			}
			return m, toggleCmd(m.tr, row, row.days[m.cursor.day])
		case key.Matches(msg, m.keys.Collapse):
			m.collapseFocused()
			return m, nil
		}
	}

	before := m.vp.YOffset
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	if m.vp.YOffset != before {
		m.scrolled()
	}
	return m, cmd
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.picker.FilterState() != list.Filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.state = constants.StateGrid
			return m, nil
		case tea.KeyEnter:
			if it, ok := m.picker.SelectedItem().(pickerItem); ok {
				m.tr.Select(it.option.ID)
				m.status = ""
				m.vp.GotoTop()
				m.refresh()
				m.focusToday()
			}
			m.state = constants.StateGrid
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.state = constants.StateGrid
		cmds = append(cmds, addCmd(m.tr, m.habitForm.request()))
	case huh.StateAborted:
		m.state = constants.StateGrid
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) focusedRow() (rowRef, bool) {
	if m.cursor.row < 0 || m.cursor.row >= len(m.rows) {
		return rowRef{}, false
	}
	return m.rows[m.cursor.row], true
}

func (m *Model) moveRow(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor.row = max(0, min(len(m.rows)-1, m.cursor.row+delta))
	m.refresh()
	m.ensureVisible()
}

func (m *Model) moveDay(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor.day = max(0, min(6, m.cursor.day+delta))
	m.refresh()
}

// collapseFocused flips the focused habit between its current week and
// the full window, keeping the cursor on the current week.
func (m *Model) collapseFocused() {
	row, ok := m.focusedRow()
	if !ok || m.tr.State().Selection.Kind != view.ViewAll {
		return
	}
	m.tr.ToggleCollapse(row.habitID)
	m.refresh()

	now := m.tr.Now()
	for i, r := range m.rows {
		if r.habitID == row.habitID && containsDay(r, now) {
			m.cursor.row = i
			break
		}
	}
	m.refresh()
	m.ensureVisible()
}

// focusToday puts the cursor on today's cell of the first habit.
func (m *Model) focusToday() {
	now := m.tr.Now()
	m.cursor = cursor{}
	for i, r := range m.rows {
		for d, date := range r.days {
			if calendar.IsCurrentDay(date, now) {
				m.cursor = cursor{row: i, day: d}
				m.refresh()
				m.ensureVisible()
				return
			}
		}
	}
	m.refresh()
}

func containsDay(r rowRef, day time.Time) bool {
	for _, d := range r.days {
		if calendar.IsCurrentDay(d, day) {
			return true
		}
	}
	return false
}

// ensureVisible scrolls the viewport so the focused row is on screen.
func (m *Model) ensureVisible() {
	row, ok := m.focusedRow()
	if !ok {
		return
	}
	switch {
	case row.line < m.vp.YOffset:
		m.vp.SetYOffset(row.line)
	case row.line >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(row.line - m.vp.Height + 1)
	}
}

// scrolled reports the viewport position to the tracker, which extends the
// single-habit window near the bottom.
func (m *Model) scrolled() {
	pos := view.ScrollPosition{
		Top:          m.vp.YOffset,
		ClientHeight: m.vp.Height,
		ScrollHeight: m.vp.TotalLineCount(),
	}
	if m.tr.Scroll(pos, constants.ScrollThresholdLines) {
		m.refresh()
	}
}

// refresh re-renders the grid into the viewport.
func (m *Model) refresh() {
	if !m.loaded {
		return
	}
	content, rows := renderGrid(m.tr.Grid(m.tr.Now()), m.cursor)
	m.rows = rows
	if m.cursor.row >= len(rows) {
		m.cursor.row = max(0, len(rows)-1)
		content, rows = renderGrid(m.tr.Grid(m.tr.Now()), m.cursor)
		m.rows = rows
	}
	m.vp.SetContent(content)
}

func (m *Model) resize() {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	// header and status line
	m.vp.Width = m.width - docStyle.GetHorizontalPadding()
	m.vp.Height = max(1, m.height-helpHeight-2)
	m.picker.SetSize(m.width, max(1, m.height-helpHeight-1))
}
