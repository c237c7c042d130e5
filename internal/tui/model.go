package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/tracker"
)

// Messages carrying store results back into the event loop.
type (
	loadedMsg struct {
		err error
	}

	toggledMsg struct {
		habitName  string
		completion models.Completion
		err        error
	}

	addedMsg struct {
		habit models.Habit
		err   error
	}
)

// cursor addresses a day cell: the row index into Model.rows and the
// weekday offset from Monday.
type cursor struct {
	row int
	day int
}

// rowRef is one week of one habit as laid out in the viewport.
type rowRef struct {
	habitID string
	name    string
	days    [7]time.Time
	line    int
}

type Model struct {
	tr *tracker.Tracker

	keys   KeyMap
	help   help.Model
	vp     viewport.Model
	picker list.Model

	form      *huh.Form
	habitForm *habitForm

	state  constants.SessionState
	cursor cursor
	rows   []rowRef

	loaded   bool
	status   string
	err      error
	width    int
	height   int
	quitting bool
}

// NewModel builds the TUI around tr. Habits are fetched by Init.
func NewModel(tr *tracker.Tracker) Model {
	vp := viewport.New(80, 20)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("f/pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("b/pgup", "page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
	}

	return Model{
		tr:     tr,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		vp:     vp,
		picker: newPicker(80, 20),
		state:  constants.StateGrid,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return loadCmd(m.tr)
}

func loadCmd(tr *tracker.Tracker) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
		defer cancel()
		return loadedMsg{err: tr.Load(ctx)}
	}
}

func toggleCmd(tr *tracker.Tracker, row rowRef, date time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
		defer cancel()
		c, err := tr.ToggleCompletion(ctx, row.habitID, date)
		return toggledMsg{habitName: row.name, completion: c, err: err}
	}
}

func addCmd(tr *tracker.Tracker, n models.NewHabit) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.StoreTimeout)
		defer cancel()
		h, err := tr.AddHabit(ctx, n)
		return addedMsg{habit: h, err: err}
	}
}
