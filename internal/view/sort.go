// Package view derives everything the grid renderer needs from habits,
// completions and the client-local view state.
package view

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
)

// Collators are not safe for concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// CompareFlat orders positive habits before negative ones, then by name.
func CompareFlat(a, b models.Habit) int {
	return compareFlat(newCollator(), a, b)
}

func compareFlat(c *collate.Collator, a, b models.Habit) int {
	if a.IsPositive != b.IsPositive {
		if a.IsPositive {
			return -1
		}
		return 1
	}
	return c.CompareString(a.Name, b.Name)
}

// CompareGrouped is the in-category ordering: explicit order first, habits
// with an order before habits without, then the flat ordering.
func CompareGrouped(a, b models.Habit) int {
	return compareGrouped(newCollator(), a, b)
}

func compareGrouped(c *collate.Collator, a, b models.Habit) int {
	ao, aok := a.Order.Get()
	bo, bok := b.Order.Get()
	switch {
	case aok && bok:
		if ao != bo {
			if ao < bo {
				return -1
			}
			return 1
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return compareFlat(c, a, b)
}

// SortFlat returns a copy of habits in flat order. Ties keep their input order.
func SortFlat(habits []models.Habit) []models.Habit {
	c := newCollator()
	out := slices.Clone(habits)
	slices.SortStableFunc(out, func(a, b models.Habit) int {
		return compareFlat(c, a, b)
	})
	return out
}

// SortGrouped returns a copy of habits in in-category order.
func SortGrouped(habits []models.Habit) []models.Habit {
	c := newCollator()
	out := slices.Clone(habits)
	slices.SortStableFunc(out, func(a, b models.Habit) int {
		return compareGrouped(c, a, b)
	})
	return out
}

// CategoryOf returns the habit's bucket label. Missing or blank categories
// fall into "Other".
func CategoryOf(h models.Habit) string {
	if c, ok := h.Category.Get(); ok {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return constants.DefaultCategory
}

// CompareCategories puts the preferred categories first in their fixed
// order and sorts the rest alphabetically.
func CompareCategories(a, b string) int {
	return compareCategories(newCollator(), a, b)
}

func compareCategories(c *collate.Collator, a, b string) int {
	ai := preferredIndex(a)
	bi := preferredIndex(b)
	switch {
	case ai >= 0 && bi >= 0:
		return ai - bi
	case ai >= 0:
		return -1
	case bi >= 0:
		return 1
	}
	return c.CompareString(a, b)
}

func preferredIndex(category string) int {
	for i, p := range constants.PreferredCategories {
		if strings.EqualFold(category, p) {
			return i
		}
	}
	return -1
}
