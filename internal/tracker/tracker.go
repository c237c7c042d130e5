package tracker

import (
	"context"
	stderrors "errors"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/errors"
	"github.com/julianstephens/habitgrid/internal/logger"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
	"github.com/julianstephens/habitgrid/internal/view"
)

// ErrUnknownHabit is returned when a toggle names a habit that is not loaded.
var ErrUnknownHabit = stderrors.New("unknown habit")

// Tracker holds the loaded habits, their completions, and the view state,
// and applies user events to them. It is safe for concurrent use.
type Tracker struct {
	store storage.Provider
	now   func() time.Time

	mu     sync.RWMutex
	habits []models.Habit
	idx    view.CompletionIndex
	state  view.ViewState

	keys keyLocks
}

type Option func(*Tracker)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(store storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		idx:   view.CompletionIndex{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.state = view.NewViewState(t.now())
	return t
}

// Load fetches habits and completions concurrently. A failed fetch is
// logged and its result treated as empty; the other result is still
// applied. The returned error joins any fetch failures.
func (t *Tracker) Load(ctx context.Context) error {
	var (
		habits      []models.Habit
		completions []models.Completion
		habitsErr   error
		complErr    error
	)

	var g errgroup.Group
	g.Go(func() error {
		hs, err := t.store.FetchHabits(ctx)
		if err != nil {
			habitsErr = errors.NewFetchFailure("habits", err)
			return habitsErr
		}
		habits = hs
		return nil
	})
	g.Go(func() error {
		cs, err := t.store.FetchCompletions(ctx)
		if err != nil {
			complErr = errors.NewFetchFailure("completions", err)
			return complErr
		}
		completions = cs
		return nil
	})
	// both failures are reported below, not just the first
	_ = g.Wait()

	for _, err := range []error{habitsErr, complErr} {
		if err != nil {
			logger.Error("Failed to load habit data", "error", err)
		}
	}
	if habits == nil {
		habits = []models.Habit{}
	}

	t.mu.Lock()
	t.habits = habits
	t.idx = view.NewCompletionIndex(completions)
	t.state = view.OnHabitsLoaded(t.state, t.habits)
	t.mu.Unlock()

	logger.Debug("Loaded habits", "habits", len(habits), "completions", len(completions))
	return stderrors.Join(habitsErr, complErr)
}

// AddHabit stores a new habit and selects it. Nothing changes when the
// name is blank or the insert fails.
func (t *Tracker) AddHabit(ctx context.Context, n models.NewHabit) (models.Habit, error) {
	n, err := n.Normalize()
	if err != nil {
		return models.Habit{}, err
	}

	habit, err := t.store.InsertHabit(ctx, n)
	if err != nil {
		wf := errors.NewWriteFailure("habit", err)
		logger.Error("Failed to add habit", "name", n.Name, "error", wf)
		return models.Habit{}, wf
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.habits = append(slices.Clone(t.habits), habit)
	t.state = view.Select(view.OnHabitsLoaded(t.state, t.habits), habit.ID)

	logger.Debug("Added habit", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// ToggleCompletion flips the completed flag of habitID on date and returns
// the record written. Toggles of the same day run one at a time, each
// reading the value confirmed by the one before it. The index only changes
// once the store accepts the write.
func (t *Tracker) ToggleCompletion(ctx context.Context, habitID string, date time.Time) (models.Completion, error) {
	if !t.hasHabit(habitID) {
		return models.Completion{}, ErrUnknownHabit
	}

	key := models.CompletionKey{HabitID: habitID, Date: calendar.FormatForStorage(date)}
	unlock := t.keys.lock(key)
	defer unlock()

	t.mu.RLock()
	next := t.idx.Next(habitID, date)
	t.mu.RUnlock()

	if err := t.store.UpsertCompletion(ctx, next); err != nil {
		wf := errors.NewWriteFailure("completion", err)
		logger.Error("Failed to toggle completion", "habit", habitID, "date", key.Date, "error", wf)
		return models.Completion{}, wf
	}

	t.mu.Lock()
	t.idx.Set(next)
	t.mu.Unlock()

	return next, nil
}

func (t *Tracker) hasHabit(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.ContainsFunc(t.habits, func(h models.Habit) bool { return h.ID == id })
}

// Select shows all habits for "view-all" and the named habit otherwise.
func (t *Tracker) Select(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = view.Select(t.state, id)
}

func (t *Tracker) ToggleCollapse(habitID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = view.ToggleCollapse(t.state, habitID)
}

// Scroll extends the single-habit window when pos is within threshold of
// the bottom. It reports whether weeks were added.
func (t *Tracker) Scroll(pos view.ScrollPosition, threshold int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	before := len(t.state.Weeks)
	t.state = view.OnScroll(t.state, pos, threshold)
	return len(t.state.Weeks) > before
}

// Grid renders the current state as of now.
func (t *Tracker) Grid(now time.Time) view.Grid {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return view.Build(t.habits, t.idx, t.state, now)
}

// Habits returns the loaded habits in insertion order.
func (t *Tracker) Habits() []models.Habit {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.habits)
}

func (t *Tracker) State() view.ViewState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Clone()
}

// Completed reports the confirmed flag of habitID on date.
func (t *Tracker) Completed(habitID string, date time.Time) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.idx.Completed(habitID, date)
}

// Now returns the tracker's clock reading.
func (t *Tracker) Now() time.Time {
	return t.now()
}
