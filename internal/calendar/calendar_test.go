package calendar

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func mustDay(t *testing.T, key string) Day {
	t.Helper()
	d, err := ParseDay(key)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", key, err)
	}
	return d
}

func TestParseDay_RoundTrip(t *testing.T) {
	tests := []string{"2024-01-01", "2024-02-29", "1999-12-31", "2026-10-18"}
	for _, key := range tests {
		d, err := ParseDay(key)
		if err != nil {
			t.Fatalf("ParseDay(%q) returned error: %v", key, err)
		}
		if got := d.String(); got != key {
			t.Errorf("round trip mismatch: got %q, want %q", got, key)
		}
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, key := range []string{"", "2024-1-01", "2024-02-30", "01/02/2024", "2024-13-01"} {
		if _, err := ParseDay(key); err == nil {
			t.Errorf("expected error for %q", key)
		}
	}
}

func TestDay_AddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2023-03-01", -1, "2023-02-28"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-01-10", 0, "2024-01-10"},
	}
	for _, tt := range tests {
		if got := mustDay(t, tt.from).AddDays(tt.n).String(); got != tt.want {
			t.Errorf("%s + %d = %s, want %s", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-02", "2024-01-01", -1},
		{"2024-02-28", "2024-03-01", 2},
		{"2024-03-30", "2024-03-31", 1}, // EU DST change
		{"2024-01-01", "2024-01-01", 0},
		{"2023-12-01", "2024-01-05", 35},
	}
	for _, tt := range tests {
		if got := DaysBetween(mustDay(t, tt.a), mustDay(t, tt.b)); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDay_Compare(t *testing.T) {
	a := mustDay(t, "2024-01-31")
	b := mustDay(t, "2024-02-01")
	if !a.Before(b) || a.After(b) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected equal compare")
	}
	if !b.After(a) {
		t.Fatalf("expected %s after %s", b, a)
	}
}

func TestRange(t *testing.T) {
	now := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)

	days := Range(now, 4)
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i, d := range days {
		if d.String() != want[i] {
			t.Errorf("day %d = %s, want %s", i, d, want[i])
		}
	}

	if got := Range(now, 0); len(got) != 0 {
		t.Errorf("expected empty range, got %v", got)
	}
}

func TestToday_UsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// 20:00 UTC on Jan 15 is already Jan 16 in Tokyo
	now := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)

	if got := Today(now).String(); got != "2024-01-15" {
		t.Errorf("UTC today = %s", got)
	}
	if got := Today(now.In(tokyo)).String(); got != "2024-01-16" {
		t.Errorf("Tokyo today = %s", got)
	}
	if got := Today(now.In(tokyo)).AddDays(-1).String(); got != "2024-01-15" {
		t.Errorf("Tokyo yesterday = %s", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := map[string]int{
		"2024-02": 29,
		"2023-02": 28,
		"1900-02": 28,
		"2000-02": 29,
		"2024-04": 30,
		"2024-12": 31,
	}
	for key, want := range tests {
		m, err := ParseMonth(key)
		if err != nil {
			t.Fatalf("ParseMonth(%q): %v", key, err)
		}
		if got := DaysInMonth(m); got != want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", key, got, want)
		}
	}
}

func TestMonth_Contains(t *testing.T) {
	m, _ := ParseMonth("2024-02")
	if !m.Contains(mustDay(t, "2024-02-29")) {
		t.Error("expected Feb 29 in 2024-02")
	}
	if m.Contains(mustDay(t, "2024-03-01")) {
		t.Error("did not expect Mar 1 in 2024-02")
	}
	if m.String() != "2024-02" {
		t.Errorf("month string = %s", m.String())
	}
}

func TestClock(t *testing.T) {
	now := time.Date(2024, 1, 1, 7, 5, 59, 0, time.UTC)
	if got := Clock(now); got != "07:05" {
		t.Errorf("Clock = %s, want 07:05", got)
	}
	for _, ok := range []string{"00:00", "07:30", "23:59"} {
		if !ValidClock(ok) {
			t.Errorf("expected %q valid", ok)
		}
	}
	for _, bad := range []string{"7:30", "24:00", "12:60", "", "12:3"} {
		if ValidClock(bad) {
			t.Errorf("expected %q invalid", bad)
		}
	}
}
