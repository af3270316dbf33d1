// Package calendar holds the pure local-calendar helpers used to key per-day
// habit data and to bucket completed tasks into Sunday-anchored weeks.
//
// Every function works in the location of its argument and never normalizes
// to UTC, so a day always means the user's wall-clock day.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const KeyLayout = "2006-01-02"

var keyPattern = regexp.MustCompile(`^([0-9]{4})-([0-9]{2})-([0-9]{2})$`)

func midnight(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// StartOfSundayWeek returns midnight of the Sunday on or before d.
func StartOfSundayWeek(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day-int(d.Weekday()), 0, 0, 0, 0, d.Location())
}

// FirstSundayOfYear returns the first Sunday on or after January 1 of year.
func FirstSundayOfYear(year int, loc *time.Location) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	diff := (7 - int(jan1.Weekday())) % 7
	return time.Date(year, time.January, 1+diff, 0, 0, 0, 0, loc)
}

// SundayWeekYear is the calendar year of d's week start, except that weeks
// starting before that year's first Sunday belong to the previous year.
func SundayWeekYear(d time.Time) int {
	ws := StartOfSundayWeek(d)
	y := ws.Year()
	if ws.Before(FirstSundayOfYear(y, d.Location())) {
		y--
	}
	return y
}

// SundayWeekNumber is the 1-based index of d's Sunday week inside its week year.
func SundayWeekNumber(d time.Time) int {
	ws := StartOfSundayWeek(d)
	first := FirstSundayOfYear(SundayWeekYear(d), d.Location())
	return 1 + DaysBetween(first, ws)/7
}

// WeekKey formats the bucket key "{year}-{2-digit week}".
func WeekKey(d time.Time) string {
	return fmt.Sprintf("%d-%02d", SundayWeekYear(d), SundayWeekNumber(d))
}

// StartOfMondayWeek returns midnight of the Monday on or before d. Sunday maps
// back six days.
func StartOfMondayWeek(d time.Time) time.Time {
	diff := 1 - int(d.Weekday())
	if d.Weekday() == time.Sunday {
		diff = -6
	}
	y, m, day := d.Date()
	return time.Date(y, m, day+diff, 0, 0, 0, 0, d.Location())
}

// DaysBetween counts whole calendar days from a to b. Wall-clock dates are
// compared, so DST transitions between them do not skew the count.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Key formats d as its local YYYY-MM-DD date-key.
func Key(d time.Time) string {
	return d.Format(KeyLayout)
}

// ParseKey turns a date-key back into local midnight. Malformed keys and
// dates the calendar rejects (2024-02-30) report ok == false.
func ParseKey(key string) (time.Time, bool) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return time.Time{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mon, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	t := time.Date(y, time.Month(mon), day, 0, 0, 0, 0, time.Local)
	if t.Year() != y || int(t.Month()) != mon || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// AddDays shifts a date-key by delta calendar days.
func AddDays(key string, delta int) (string, bool) {
	t, ok := ParseKey(key)
	if !ok {
		return "", false
	}
	return Key(t.AddDate(0, 0, delta)), true
}

// Today is the date-key of now.
func Today(now time.Time) string {
	return Key(midnight(now))
}
