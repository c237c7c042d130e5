package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewHabitNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           NewHabit
		wantName     string
		wantCategory Optional[string]
		wantErr      error
	}{
		{
			name:     "trims surrounding whitespace",
			in:       NewHabit{Name: "  Read  ", IsPositive: true},
			wantName: "Read",
		},
		{
			name:    "blank name is rejected",
			in:      NewHabit{Name: " \t\n"},
			wantErr: ErrEmptyHabitName,
		},
		{
			name:         "blank category becomes absent",
			in:           NewHabit{Name: "Run", Category: Some("   ")},
			wantName:     "Run",
			wantCategory: None[string](),
		},
		{
			name:         "category is trimmed",
			in:           NewHabit{Name: "Run", Category: Some(" Morning ")},
			wantName:     "Run",
			wantCategory: Some("Morning"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Normalize()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Name != tt.wantName {
				t.Errorf("Normalize() name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Normalize() category = %+v, want %+v", got.Category, tt.wantCategory)
			}
		})
	}
}

func TestOptionalJSON(t *testing.T) {
	h := Habit{ID: "h1", Name: "Stretch", Order: Some(3)}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Habit
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if order, ok := decoded.Order.Get(); !ok || order != 3 {
		t.Errorf("Order = (%d, %v), want (3, true)", order, ok)
	}
	if decoded.Category.IsSet() {
		t.Errorf("Category should be absent after decoding null")
	}
}

func TestOptionalOrElse(t *testing.T) {
	if got := None[string]().OrElse("Other"); got != "Other" {
		t.Errorf("OrElse() = %q, want %q", got, "Other")
	}
	if got := Some("Work").OrElse("Other"); got != "Work" {
		t.Errorf("OrElse() = %q, want %q", got, "Work")
	}
}
