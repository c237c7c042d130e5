package models

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyHabitName is returned when a habit name is blank after trimming.
var ErrEmptyHabitName = errors.New("habit name cannot be empty")

// Habit represents a tracked practice, either one to build or one to break
type Habit struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	IsPositive bool             `json:"is_positive"`
	Category   Optional[string] `json:"category"`
	Order      Optional[int]    `json:"order"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewHabit is the insert request for a habit. The storage layer assigns
// the ID and CreatedAt.
type NewHabit struct {
	Name       string
	IsPositive bool
	Category   Optional[string]
	Order      Optional[int]
}

// Normalize trims the name and category. A blank category becomes absent.
func (n NewHabit) Normalize() (NewHabit, error) {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return NewHabit{}, ErrEmptyHabitName
	}
	if c, ok := n.Category.Get(); ok {
		c = strings.TrimSpace(c)
		if c == "" {
			n.Category = None[string]()
		} else {
			n.Category = Some(c)
		}
	}
	return n, nil
}
