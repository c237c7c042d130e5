package view

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/habitgrid/internal/models"
)

func names(habits []models.Habit) []string {
	out := make([]string, len(habits))
	for i, h := range habits {
		out[i] = h.Name
	}
	return out
}

func TestSortFlat(t *testing.T) {
	tests := []struct {
		name   string
		habits []models.Habit
		want   []string
	}{
		{
			name: "positive before negative then by name",
			habits: []models.Habit{
				{ID: "1", Name: "B", IsPositive: false},
				{ID: "2", Name: "A", IsPositive: true},
				{ID: "3", Name: "C", IsPositive: true},
			},
			want: []string{"A", "C", "B"},
		},
		{
			name: "locale aware names",
			habits: []models.Habit{
				{ID: "1", Name: "walk", IsPositive: true},
				{ID: "2", Name: "Écrire", IsPositive: true},
				{ID: "3", Name: "apple", IsPositive: true},
			},
			want: []string{"apple", "Écrire", "walk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortFlat(tt.habits)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("SortFlat() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortFlatIsStable(t *testing.T) {
	habits := []models.Habit{
		{ID: "first", Name: "Same", IsPositive: true},
		{ID: "second", Name: "Same", IsPositive: true},
	}
	got := SortFlat(habits)
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("SortFlat() reordered equal habits: %s, %s", got[0].ID, got[1].ID)
	}
	if habits[0].ID != "first" {
		t.Errorf("SortFlat() mutated its input")
	}
}

func TestSortGrouped(t *testing.T) {
	tests := []struct {
		name   string
		habits []models.Habit
		want   []string
	}{
		{
			name: "order ascending",
			habits: []models.Habit{
				{ID: "1", Name: "X", Category: models.Some("Work"), Order: models.Some(2)},
				{ID: "2", Name: "Y", Category: models.Some("Work"), Order: models.Some(1)},
			},
			want: []string{"Y", "X"},
		},
		{
			name: "ordered habits before unordered ones",
			habits: []models.Habit{
				{ID: "1", Name: "A", IsPositive: true},
				{ID: "2", Name: "Z", IsPositive: false, Order: models.Some(9)},
			},
			want: []string{"Z", "A"},
		},
		{
			name: "equal order falls back to flat order",
			habits: []models.Habit{
				{ID: "1", Name: "B", IsPositive: true, Order: models.Some(1)},
				{ID: "2", Name: "C", IsPositive: false, Order: models.Some(1)},
				{ID: "3", Name: "A", IsPositive: true, Order: models.Some(1)},
			},
			want: []string{"A", "B", "C"},
		},
		{
			name: "no order uses flat order",
			habits: []models.Habit{
				{ID: "1", Name: "Smoke", IsPositive: false},
				{ID: "2", Name: "Run", IsPositive: true},
			},
			want: []string{"Run", "Smoke"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortGrouped(tt.habits)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("SortGrouped() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareCategories(t *testing.T) {
	cats := []string{"Zeta", "Other", "negative", "Alpha", "Morning", "WORK"}
	want := []string{"Morning", "WORK", "Other", "negative", "Alpha", "Zeta"}

	got := slices.Clone(cats)
	slices.SortFunc(got, CompareCategories)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		habit models.Habit
		want  string
	}{
		{models.Habit{}, "Other"},
		{models.Habit{Category: models.Some("")}, "Other"},
		{models.Habit{Category: models.Some("  ")}, "Other"},
		{models.Habit{Category: models.Some("Morning")}, "Morning"},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.habit); got != tt.want {
			t.Errorf("CategoryOf(%+v) = %q, want %q", tt.habit.Category, got, tt.want)
		}
	}
}
