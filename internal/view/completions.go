package view

import (
	"time"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/models"
)

// CompletionIndex maps a (habit, day) key to its completed flag.
// A missing key means not completed.
type CompletionIndex map[models.CompletionKey]bool

func NewCompletionIndex(records []models.Completion) CompletionIndex {
	idx := make(CompletionIndex, len(records))
	for _, r := range records {
		idx[r.Key()] = r.Completed
	}
	return idx
}

// Completed reports the stored flag for habitID on date.
func (idx CompletionIndex) Completed(habitID string, date time.Time) bool {
	return idx[models.CompletionKey{HabitID: habitID, Date: calendar.FormatForStorage(date)}]
}

// Next returns the record a toggle of habitID on date should write.
func (idx CompletionIndex) Next(habitID string, date time.Time) models.Completion {
	key := models.CompletionKey{HabitID: habitID, Date: calendar.FormatForStorage(date)}
	return models.Completion{HabitID: key.HabitID, Date: key.Date, Completed: !idx[key]}
}

// Set records a confirmed write.
func (idx CompletionIndex) Set(c models.Completion) {
	idx[c.Key()] = c.Completed
}

func (idx CompletionIndex) Clone() CompletionIndex {
	out := make(CompletionIndex, len(idx))
	for k, v := range idx {
		out[k] = v
	}
	return out
}
