// Package calendar generates the rolling windows of Monday-first weeks shown
// on the habit grid. All functions are pure: "now" is always passed in.
package calendar

import (
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
)

// Week is seven consecutive days, Monday through Sunday.
type Week [7]time.Time

// Monday returns the day that identifies the week.
func (w Week) Monday() time.Time {
	return w[0]
}

// Contains reports whether d falls on one of the week's calendar days.
func (w Week) Contains(d time.Time) bool {
	key := FormatForStorage(d)
	for _, day := range w {
		if FormatForStorage(day) == key {
			return true
		}
	}
	return false
}

// StartOfWeek returns midnight of the Monday of the week containing d.
// Sunday belongs to the week that started the previous Monday.
func StartOfWeek(d time.Time) time.Time {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return addDays(midnight(d), -offset)
}

// WeekDates returns the seven days starting at monday.
func WeekDates(monday time.Time) Week {
	var w Week
	start := midnight(monday)
	for i := range w {
		w[i] = addDays(start, i)
	}
	return w
}

// InitialWeeks returns count weeks in ascending order. The week containing
// now sits at index 4, preceded by the four weeks before it.
func InitialWeeks(now time.Time, count int) []Week {
	if count <= 0 {
		return []Week{}
	}
	current := StartOfWeek(now)
	weeks := make([]Week, 0, count)
	for i := -constants.InitialWeeksBefore; i < count-constants.InitialWeeksBefore; i++ {
		weeks = append(weeks, WeekDates(addDays(current, i*7)))
	}
	return weeks
}

// MoreWeeks returns the count weeks that follow lastMonday, oldest first.
func MoreWeeks(lastMonday time.Time, count int) []Week {
	if count <= 0 {
		return []Week{}
	}
	start := midnight(lastMonday)
	weeks := make([]Week, 0, count)
	for i := 1; i <= count; i++ {
		weeks = append(weeks, WeekDates(addDays(start, i*7)))
	}
	return weeks
}

// PreviousWeeks returns the count weeks that precede firstMonday, oldest first.
func PreviousWeeks(firstMonday time.Time, count int) []Week {
	if count <= 0 {
		return []Week{}
	}
	start := midnight(firstMonday)
	weeks := make([]Week, 0, count)
	for i := count; i >= 1; i-- {
		weeks = append(weeks, WeekDates(addDays(start, -i*7)))
	}
	return weeks
}

// ViewAllWeeks returns the current week and the three before it, ascending.
func ViewAllWeeks(now time.Time) []Week {
	current := StartOfWeek(now)
	weeks := make([]Week, 0, constants.ViewAllWeeksCount)
	for i := -(constants.ViewAllWeeksCount - 1); i <= 0; i++ {
		weeks = append(weeks, WeekDates(addDays(current, i*7)))
	}
	return weeks
}

// addDays moves by calendar days rather than 24h durations so DST
// transitions never skip or repeat a day.
func addDays(d time.Time, n int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+n, 0, 0, 0, 0, d.Location())
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
