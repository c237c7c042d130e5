package view

import (
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
)

// Group is one category bucket of the view-all layout.
type Group struct {
	Name   string
	Habits []models.Habit
}

// GroupByCategory partitions habits by category, sorts each bucket and
// orders the buckets. On weekends the work bucket is left out.
func GroupByCategory(habits []models.Habit, now time.Time) []Group {
	c := newCollator()
	index := make(map[string]int)
	var groups []Group

	for _, h := range habits {
		name := CategoryOf(h)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, Group{Name: name})
		}
		groups[i].Habits = append(groups[i].Habits, h)
	}

	weekend := calendar.IsWeekend(now)
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if weekend && strings.EqualFold(g.Name, constants.WorkCategory) {
			continue
		}
		slices.SortStableFunc(g.Habits, func(a, b models.Habit) int {
			return compareGrouped(c, a, b)
		})
		out = append(out, g)
	}

	slices.SortStableFunc(out, func(a, b Group) int {
		return compareCategories(c, a.Name, b.Name)
	})
	return out
}
