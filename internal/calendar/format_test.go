package calendar

import (
	"testing"
	"time"
)

func TestFormatForStorageRoundTrip(t *testing.T) {
	tests := []string{
		"2024-01-31",
		"2024-02-01",
		"2024-02-29",
		"2024-12-01",
		"2024-12-31",
		"2025-01-01",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			d, err := ParseStorageDate(s, time.Local)
			if err != nil {
				t.Fatalf("ParseStorageDate(%q) error = %v", s, err)
			}
			if got := FormatForStorage(d); got != s {
				t.Errorf("FormatForStorage(ParseStorageDate(%q)) = %q", s, got)
			}
		})
	}
}

func TestFormatForStorageUsesLocalFields(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	d := time.Date(2024, time.January, 1, 1, 0, 0, 0, loc) // still Dec 31 in UTC
	if got := FormatForStorage(d); got != "2024-01-01" {
		t.Errorf("FormatForStorage() = %q, want 2024-01-01", got)
	}
}

func TestParseStorageDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "2024-02-30", "01/02/2024"} {
		if _, err := ParseStorageDate(s, nil); err == nil {
			t.Errorf("ParseStorageDate(%q) expected error", s)
		}
	}
}

func TestIsCurrentDay(t *testing.T) {
	now := time.Date(2024, time.March, 6, 15, 30, 0, 0, time.UTC)

	if !IsCurrentDay(time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC), now) {
		t.Error("same calendar day should be current")
	}
	if IsCurrentDay(time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC), now) {
		t.Error("previous day should not be current")
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := IsWeekend(tt.day); got != tt.want {
			t.Errorf("IsWeekend(%s) = %v, want %v", tt.day.Weekday(), got, tt.want)
		}
	}
}
