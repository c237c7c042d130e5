package view

import (
	"maps"
	"slices"
	"time"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
)

// SelectionKind distinguishes the three selection states.
type SelectionKind int

const (
	Unselected SelectionKind = iota
	ViewAll
	SingleHabit
)

func (k SelectionKind) String() string {
	switch k {
	case ViewAll:
		return "view-all"
	case SingleHabit:
		return "single-habit"
	default:
		return "unselected"
	}
}

// Selection is what the grid currently shows.
type Selection struct {
	Kind    SelectionKind
	HabitID string
}

// ID returns the picker value of the selection: "view-all", a habit id, or "".
func (s Selection) ID() string {
	switch s.Kind {
	case ViewAll:
		return constants.ViewAllID
	case SingleHabit:
		return s.HabitID
	default:
		return ""
	}
}

// ViewState is the client-local display state. Transitions return a new
// value and leave their input untouched.
type ViewState struct {
	Selection   Selection
	Collapsed   map[string]bool
	Weeks       []calendar.Week
	LoadingMore bool

	collapseInitialized bool
}

// ScrollPosition describes the scrollable region, in any consistent unit.
type ScrollPosition struct {
	Top          int
	ClientHeight int
	ScrollHeight int
}

func NewViewState(now time.Time) ViewState {
	return ViewState{
		Collapsed: map[string]bool{},
		Weeks:     calendar.InitialWeeks(now, constants.InitialWeeksCount),
	}
}

// Clone returns a copy that shares no maps or slices with s.
func (s ViewState) Clone() ViewState {
	out := s
	out.Collapsed = maps.Clone(s.Collapsed)
	if out.Collapsed == nil {
		out.Collapsed = map[string]bool{}
	}
	out.Weeks = slices.Clone(s.Weeks)
	return out
}

// OnHabitsLoaded collapses every habit the first time a non-empty set
// arrives and moves an unselected view to view-all. It never picks a
// specific habit.
func OnHabitsLoaded(s ViewState, habits []models.Habit) ViewState {
	out := s.Clone()
	if len(habits) == 0 {
		return out
	}
	if !out.collapseInitialized {
		for _, h := range habits {
			out.Collapsed[h.ID] = true
		}
		out.collapseInitialized = true
	}
	if out.Selection.Kind == Unselected {
		out.Selection = Selection{Kind: ViewAll}
	}
	return out
}

// Select switches to view-all for "view-all" and to a single habit otherwise.
func Select(s ViewState, id string) ViewState {
	out := s.Clone()
	if id == constants.ViewAllID {
		out.Selection = Selection{Kind: ViewAll}
	} else {
		out.Selection = Selection{Kind: SingleHabit, HabitID: id}
	}
	return out
}

func ToggleCollapse(s ViewState, habitID string) ViewState {
	out := s.Clone()
	if out.Collapsed[habitID] {
		delete(out.Collapsed, habitID)
	} else {
		out.Collapsed[habitID] = true
	}
	return out
}

func (s ViewState) IsCollapsed(habitID string) bool {
	return s.Collapsed[habitID]
}

// VisibleWeeks returns the weeks a view-all panel shows for habitID: only
// the current week when collapsed, otherwise the full four-week window.
func VisibleWeeks(s ViewState, habitID string, now time.Time) []calendar.Week {
	weeks := calendar.ViewAllWeeks(now)
	if s.IsCollapsed(habitID) {
		return weeks[len(weeks)-1:]
	}
	return weeks
}

// NearBottom reports whether pos is within threshold of the end of the region.
func NearBottom(pos ScrollPosition, threshold int) bool {
	return pos.Top+pos.ClientHeight >= pos.ScrollHeight-threshold
}

// OnScroll appends more weeks to the single-habit window when the scroll
// position comes within threshold of the bottom. The head is never trimmed.
func OnScroll(s ViewState, pos ScrollPosition, threshold int) ViewState {
	if s.LoadingMore || s.Selection.Kind != SingleHabit || len(s.Weeks) == 0 || !NearBottom(pos, threshold) {
		return s
	}
	out := s.Clone()
	last := out.Weeks[len(out.Weeks)-1].Monday()
	out.Weeks = append(out.Weeks, calendar.MoreWeeks(last, constants.LoadMoreWeeksCount)...)
	return out
}
