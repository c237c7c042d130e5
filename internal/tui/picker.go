package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/view"
)

type pickerItem struct {
	option   view.Option
	selected bool
}

func (i pickerItem) Title() string {
	if i.selected {
		return "● " + i.option.Label
	}
	return "○ " + i.option.Label
}

func (i pickerItem) Description() string {
	if i.option.ID == constants.ViewAllID {
		return "every habit, grouped by category"
	}
	return "single habit, scroll for more weeks"
}

func (i pickerItem) FilterValue() string { return i.option.Label }

func newPicker(width, height int) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a view"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	return l
}

// pickerItems lists the picker options, marking the current selection.
func pickerItems(opts []view.Option, current string) []list.Item {
	items := make([]list.Item, len(opts))
	for i, o := range opts {
		items[i] = pickerItem{option: o, selected: o.ID == current}
	}
	return items
}

// openPicker fills the list and moves its cursor onto the current selection.
func (m *Model) openPicker() {
	current := m.tr.State().Selection.ID()
	items := pickerItems(view.PickerOptions(m.tr.Habits()), current)
	m.picker.ResetFilter()
	m.picker.SetItems(items)
	for i, it := range items {
		if it.(pickerItem).selected {
			m.picker.Select(i)
			break
		}
	}
	m.state = constants.StatePicker
}
