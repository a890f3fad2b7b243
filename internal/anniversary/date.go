package anniversary

import (
	"regexp"
	"strconv"
	"time"
)

const (
	// DateLayout is the canonical serialized form of a record date.
	DateLayout = "20060102"

	minYear         = 1900
	maxYearsForward = 100
	hoursPerDay     = 24
)

var dateRe = regexp.MustCompile(`^\d{8}$`)

// IsValidDate reports whether s is exactly eight digits forming a real
// calendar date whose year lies in [1900, current year + 100].
func IsValidDate(s string, now time.Time) bool {
	_, ok := parseDate(s, now)
	return ok
}

func parseDate(s string, now time.Time) (time.Time, bool) {
	if !dateRe.MatchString(s) {
		return time.Time{}, false
	}

	year := atoi(s[0:4])
	month := time.Month(atoi(s[4:6]))
	day := atoi(s[6:8])

	if year < minYear || year > now.Year()+maxYearsForward {
		return time.Time{}, false
	}

	// time.Date normalizes overflow (Feb 30 -> Mar 2), so a round trip
	// catches impossible days and months.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// atoi converts a string already known to be all digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// civil drops the clock part of t in its own location and returns the
// same calendar day at UTC midnight, so day differences are exact
// multiples of 24h regardless of DST.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntilNext returns the number of days from today until the next
// occurrence of date's month and day. An anniversary falling on today
// counts as passed, so the result is always at least 1.
func DaysUntilNext(date string, now time.Time) int {
	month, day := monthDay(date)
	today := civil(now)

	next := time.Date(today.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if !today.Before(next) {
		next = time.Date(today.Year()+1, month, day, 0, 0, 0, 0, time.UTC)
	}

	return int(next.Sub(today).Hours()) / hoursPerDay
}

// YearsElapsed returns how many full anniversaries of date have passed
// as of today. Today's anniversary counts as passed.
func YearsElapsed(date string, now time.Time) int {
	month, day := monthDay(date)
	today := civil(now)

	years := today.Year() - atoi(date[0:4])
	thisYear := time.Date(today.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if today.Before(thisYear) {
		years--
	}
	return years
}

// FormatDate renders YYYYMMDD as YYYY-MM-DD. Malformed input is returned
// unchanged.
func FormatDate(date string) string {
	if !dateRe.MatchString(date) {
		return date
	}
	return date[0:4] + "-" + date[4:6] + "-" + date[6:8]
}

func monthDay(date string) (time.Month, int) {
	return time.Month(atoi(date[4:6])), atoi(date[6:8])
}
