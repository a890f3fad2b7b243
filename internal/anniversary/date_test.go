package anniversary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 15, 30, 0, 0, time.Local)
}

func TestIsValidDate(t *testing.T) {
	now := day(2026, time.October, 18)

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "Regular date", in: "20260101", want: true},
		{name: "Leap day", in: "20240229", want: true},
		{name: "Non leap year Feb 29", in: "20250229", want: false},
		{name: "Month 13", in: "20261301", want: false},
		{name: "Day 0", in: "20260100", want: false},
		{name: "April 31", in: "20260431", want: false},
		{name: "Lower year bound", in: "19000101", want: true},
		{name: "Before lower bound", in: "18991231", want: false},
		{name: "Upper year bound", in: "21261231", want: true},
		{name: "After upper bound", in: "21270101", want: false},
		{name: "Too short", in: "2026011", want: false},
		{name: "Too long", in: "202601011", want: false},
		{name: "Dashes", in: "2026-01-01", want: false},
		{name: "Letters", in: "2026O101", want: false},
		{name: "Empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.in, now))
		})
	}
}

func TestIsValidDate_RoundTrip(t *testing.T) {
	now := day(2026, time.October, 18)

	for d := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() < 2025; d = d.AddDate(0, 0, 1) {
		s := d.Format(DateLayout)
		assert.True(t, IsValidDate(s, now), s)
	}
}

func TestDaysUntilNext(t *testing.T) {
	tests := []struct {
		name string
		date string
		now  time.Time
		want int
	}{
		{name: "Later this year", date: "20260101", now: day(2025, time.December, 25), want: 7},
		{name: "Tomorrow", date: "19991019", now: day(2026, time.October, 18), want: 1},
		{name: "Today rolls to next year", date: "20001018", now: day(2026, time.October, 18), want: 365},
		{name: "Yesterday", date: "20001017", now: day(2026, time.October, 18), want: 364},
		{name: "Next year crosses leap day", date: "20001018", now: day(2027, time.October, 18), want: 366},
		{name: "Year ignored", date: "21000101", now: day(2026, time.October, 18), want: 75},
		{name: "Leap day in non leap year", date: "20240229", now: day(2026, time.February, 1), want: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilNext(tt.date, tt.now))
		})
	}
}

func TestDaysUntilNext_NeverZero(t *testing.T) {
	now := day(2026, time.October, 18)
	for d := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC); d.Year() < 2025; d = d.AddDate(0, 0, 1) {
		got := DaysUntilNext(d.Format(DateLayout), now)
		assert.GreaterOrEqual(t, got, 1, d.Format(DateLayout))
		assert.LessOrEqual(t, got, 366, d.Format(DateLayout))
	}
}

func TestDaysUntilNext_DSTZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tz database not available")
	}
	// 2026-03-08 is the spring-forward day in New York.
	now := time.Date(2026, time.March, 7, 23, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysUntilNext("20000309", now))
}

func TestYearsElapsed(t *testing.T) {
	tests := []struct {
		name string
		date string
		now  time.Time
		want int
	}{
		{name: "Before this year's day", date: "20201225", now: day(2026, time.October, 18), want: 5},
		{name: "On this year's day", date: "20201018", now: day(2026, time.October, 18), want: 6},
		{name: "After this year's day", date: "20200101", now: day(2026, time.October, 18), want: 6},
		{name: "Same year not reached", date: "20261225", now: day(2026, time.October, 18), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearsElapsed(tt.date, tt.now))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-01-01", FormatDate("20260101"))
	assert.Equal(t, "bogus", FormatDate("bogus"))
}
