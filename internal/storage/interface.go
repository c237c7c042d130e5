package storage

import (
	"context"
	"database/sql"

	"github.com/julianstephens/habitgrid/internal/models"
)

// Provider is the persistence backend behind the habit grid.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits

	// FetchHabits returns every habit ordered by creation time, oldest first.
	FetchHabits(ctx context.Context) ([]models.Habit, error)
	// InsertHabit stores a new habit. The backend assigns the ID and CreatedAt.
	InsertHabit(ctx context.Context, habit models.NewHabit) (models.Habit, error)

	// Completions

	// FetchCompletions returns a full snapshot of completion records.
	FetchCompletions(ctx context.Context) ([]models.Completion, error)
	// UpsertCompletion writes the record for (HabitID, Date), replacing any existing one.
	UpsertCompletion(ctx context.Context, completion models.Completion) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by backends with versioned schemas.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	PendingMigrations() (int, error)
	GetDB() *sql.DB
}
