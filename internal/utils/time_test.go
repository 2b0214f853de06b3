package utils

import (
	"testing"
	"time"
)

func TestDisplayDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2025-12-31", "31-12-2025"},
		{"2025-01-02", "02-01-2025"},
		{" 2025-01-02 ", "02-01-2025"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := DisplayDate(tc.in); got != tc.want {
			t.Errorf("DisplayDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDateAnchorsLocalMidnight(t *testing.T) {
	d, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected midnight, got %v", d)
	}
	if d.Location() != time.Local {
		t.Errorf("expected local timezone, got %v", d.Location())
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	got := Today(now)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Today(%v) = %v, want %v", now, got, want)
	}
}
