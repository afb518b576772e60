package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Duration
		pretty string
	}{
		{"1w", 7 * 24 * time.Hour, "1w"},
		{"3d", 3 * 24 * time.Hour, "3d"},
		{"12h", 12 * time.Hour, "12h"},
		{"1mo", 30 * 24 * time.Hour, "4w2d"},
		{"1w2d", 9 * 24 * time.Hour, "1w2d"},
		{"2 weeks", 14 * 24 * time.Hour, "2w"},
		{"", 7 * 24 * time.Hour, "1w"},
	}

	for _, tc := range tests {
		got, pretty, err := ParseWindow(tc.input)
		if err != nil {
			t.Errorf("ParseWindow(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWindow(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if pretty != tc.pretty {
			t.Errorf("ParseWindow(%q) pretty = %q, want %q", tc.input, pretty, tc.pretty)
		}
	}
}

func TestParseWindowRejectsGarbage(t *testing.T) {
	for _, input := range []string{"x", "1", "-1d", "0d", "1parsec"} {
		if _, _, err := ParseWindow(input); err == nil {
			t.Errorf("ParseWindow(%q) accepted invalid input", input)
		}
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{7 * 24 * time.Hour, 7},
		{36 * time.Hour, 2},
		{time.Hour, 1},
		{0, 1},
	}
	for _, tc := range tests {
		if got := Days(tc.d); got != tc.want {
			t.Errorf("Days(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	hour, min, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if hour != 9 || min != 30 {
		t.Fatalf("ParseClock = %d:%d, want 9:30", hour, min)
	}

	if _, _, err := ParseClock("9:30pm"); err == nil {
		t.Fatal("ParseClock accepted 12-hour input")
	}
}

func TestAt(t *testing.T) {
	day := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)
	got := At(day, 9, 30)
	want := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("At = %v, want %v", got, want)
	}
}
