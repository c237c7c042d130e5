package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/habitgrid/internal/models"
)

var (
	wednesday = time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC)
	saturday  = time.Date(2024, time.March, 9, 9, 0, 0, 0, time.UTC)
	sunday    = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
)

func groupNames(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Name
	}
	return out
}

func TestGroupByCategoryOrdering(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "Zed", Category: models.Some("Zeta")},
		{ID: "2", Name: "Journal"},
		{ID: "3", Name: "Stretch", Category: models.Some("Morning")},
	}

	got := GroupByCategory(habits, wednesday)
	if diff := cmp.Diff([]string{"Morning", "Other", "Zeta"}, groupNames(got)); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCategorySortsWithinGroup(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "X", Category: models.Some("Work"), Order: models.Some(2)},
		{ID: "2", Name: "Y", Category: models.Some("Work"), Order: models.Some(1)},
	}

	got := GroupByCategory(habits, wednesday)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if diff := cmp.Diff([]string{"Y", "X"}, names(got[0].Habits)); diff != "" {
		t.Errorf("in-group order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCategoryWeekendFilter(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "Inbox zero", Category: models.Some("Work")},
		{ID: "2", Name: "Stretch", Category: models.Some("Morning")},
	}

	tests := []struct {
		name string
		now  time.Time
		want []string
	}{
		{name: "weekday keeps work", now: wednesday, want: []string{"Morning", "Work"}},
		{name: "saturday drops work", now: saturday, want: []string{"Morning"}},
		{name: "sunday drops work", now: sunday, want: []string{"Morning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupByCategory(habits, tt.now)
			if diff := cmp.Diff(tt.want, groupNames(got)); diff != "" {
				t.Errorf("groups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupByCategoryWeekendFilterIsCaseInsensitive(t *testing.T) {
	habits := []models.Habit{{ID: "1", Name: "Standup", Category: models.Some("WORK")}}
	if got := GroupByCategory(habits, saturday); len(got) != 0 {
		t.Errorf("expected WORK to be filtered on weekend, got %v", groupNames(got))
	}
}

func TestGroupByCategoryDoesNotMutateInput(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "B", IsPositive: true},
		{ID: "2", Name: "A", IsPositive: true},
	}
	GroupByCategory(habits, wednesday)
	if habits[0].ID != "1" {
		t.Errorf("GroupByCategory() reordered its input")
	}
}
