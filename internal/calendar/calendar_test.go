package calendar

import (
	"testing"
	"time"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.Local)
}

func TestStartOfSundayWeek(t *testing.T) {
	got := StartOfSundayWeek(localDate(2024, 1, 3))
	if Key(got) != "2023-12-31" || got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("unexpected week start: %s", got)
	}
	if got := StartOfSundayWeek(localDate(2024, 1, 7)); Key(got) != "2024-01-07" {
		t.Fatalf("sunday should map to itself, got %s", Key(got))
	}
}

func TestFirstSundayOfYear(t *testing.T) {
	cases := map[int]string{
		2023: "2023-01-01",
		2024: "2024-01-07",
		2025: "2025-01-05",
		2021: "2021-01-03",
	}
	for year, want := range cases {
		if got := Key(FirstSundayOfYear(year, time.Local)); got != want {
			t.Fatalf("first sunday of %d = %s, want %s", year, got, want)
		}
	}
}

func TestWeekKeyAcrossYearBoundary(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{localDate(2024, 1, 1), "2023-53"},
		{localDate(2024, 1, 6), "2023-53"},
		{localDate(2024, 1, 7), "2024-01"},
		{localDate(2023, 1, 1), "2023-01"},
		{localDate(2022, 1, 1), "2021-52"},
		{localDate(2024, 12, 31), "2024-52"},
		{localDate(2025, 1, 5), "2025-01"},
	}
	for _, tc := range cases {
		if got := WeekKey(tc.in); got != tc.want {
			t.Fatalf("WeekKey(%s) = %s, want %s", Key(tc.in), got, tc.want)
		}
	}
}

func TestSundayWeekNumberIncrementsWeekly(t *testing.T) {
	sunday := localDate(2024, 1, 7)
	for i := 0; i < 52; i++ {
		d := sunday.AddDate(0, 0, 7*i)
		if got := SundayWeekNumber(d); got != i+1 {
			t.Fatalf("week of %s = %d, want %d", Key(d), got, i+1)
		}
		if got := SundayWeekYear(d); got != 2024 {
			t.Fatalf("week year of %s = %d, want 2024", Key(d), got)
		}
		// Every day of the week shares the Sunday's number.
		if got := SundayWeekNumber(d.AddDate(0, 0, 6)); got != i+1 {
			t.Fatalf("saturday after %s = %d, want %d", Key(d), got, i+1)
		}
	}
	if got := SundayWeekNumber(localDate(2025, 1, 5)); got != 1 {
		t.Fatalf("expected reset to week 1, got %d", got)
	}
}

func TestStartOfMondayWeek(t *testing.T) {
	cases := map[string]string{
		"2024-06-02": "2024-05-27", // Sunday
		"2024-06-03": "2024-06-03", // Monday
		"2024-06-08": "2024-06-03", // Saturday
		"2025-01-01": "2024-12-30",
	}
	for in, want := range cases {
		d, ok := ParseKey(in)
		if !ok {
			t.Fatalf("parse %s failed", in)
		}
		if got := Key(StartOfMondayWeek(d)); got != want {
			t.Fatalf("monday of %s = %s, want %s", in, got, want)
		}
	}
}

func TestParseKey(t *testing.T) {
	d, ok := ParseKey("2024-02-29")
	if !ok || d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Fatalf("unexpected parse result: %v %v", d, ok)
	}
	if Key(d) != "2024-02-29" {
		t.Fatalf("round trip failed: %s", Key(d))
	}
	for _, bad := range []string{"", "2024-2-01", "2023-02-29", "2024-13-01", "hello", "2024-01-01T00:00"} {
		if _, ok := ParseKey(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		key   string
		delta int
		want  string
	}{
		{"2024-02-28", 1, "2024-02-29"},
		{"2024-02-28", 2, "2024-03-01"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-06-03", -365, "2023-06-04"},
	}
	for _, tc := range cases {
		got, ok := AddDays(tc.key, tc.delta)
		if !ok || got != tc.want {
			t.Fatalf("AddDays(%s, %d) = %s, %v; want %s", tc.key, tc.delta, got, ok, tc.want)
		}
	}
	if _, ok := AddDays("bogus", 1); ok {
		t.Fatal("expected malformed key to fail")
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(localDate(2024, 1, 7), localDate(2024, 12, 29)); got != 357 {
		t.Fatalf("unexpected day count: %d", got)
	}
	if got := DaysBetween(localDate(2024, 3, 1), localDate(2024, 2, 28)); got != -2 {
		t.Fatalf("unexpected negative day count: %d", got)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 6, 3, 23, 59, 59, 0, time.Local)
	if got := Today(now); got != "2024-06-03" {
		t.Fatalf("unexpected today key: %s", got)
	}
}
