package models

// Completion records whether a habit was performed on a calendar day
type Completion struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
}

// CompletionKey identifies a completion record. At most one record exists per key.
type CompletionKey struct {
	HabitID string
	Date    string
}

func (c Completion) Key() CompletionKey {
	return CompletionKey{HabitID: c.HabitID, Date: c.Date}
}
