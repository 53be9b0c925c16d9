// Package streak computes current and longest completion streaks for daily
// and weekly habits from plain calendar dates. Everything here is a pure
// function: dates in, integers out, no state between calls.
package streak

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// ErrInvalidDate wraps every date-string parse failure, so callers can tell
// "bad input" apart from a legitimate false or zero result.
var ErrInvalidDate = errors.New("invalid calendar date")

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func parseAll(dates []string) ([]time.Time, error) {
	parsed := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := ParseDate(d)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, t)
	}
	return parsed, nil
}

// SortDescending parses the given date strings and orders them most-recent
// first. A single malformed entry fails the whole call with a nil result, so
// callers degrade gracefully instead of computing a streak over garbage.
func SortDescending(dates []string) ([]time.Time, error) {
	parsed, err := parseAll(dates)
	if err != nil {
		return nil, err
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].After(parsed[j])
	})
	return parsed, nil
}

// SortAscending is the oldest-first mirror of SortDescending.
func SortAscending(dates []string) ([]time.Time, error) {
	parsed, err := parseAll(dates)
	if err != nil {
		return nil, err
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].Before(parsed[j])
	})
	return parsed, nil
}

// SameISOWeek reports whether two dates share the same ISO-8601 year and
// week number. Around the new year the ISO year differs from the calendar
// year, so both must match.
func SameISOWeek(a, b time.Time) bool {
	yearA, weekA := a.ISOWeek()
	yearB, weekB := b.ISOWeek()
	return yearA == yearB && weekA == weekB
}

// lastISOWeek returns the number of the final ISO week of a year.
// December 28 always falls in that week.
func lastISOWeek(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// ConsecutiveISOWeeks reports whether the two dates fall in adjacent ISO
// weeks, in either argument order. Within one ISO year that is a week-number
// difference of exactly one; across a single year boundary the earlier date
// must sit in its year's final ISO week and the later one in week 1.
func ConsecutiveISOWeeks(a, b time.Time) bool {
	if a.After(b) {
		a, b = b, a
	}

	yearA, weekA := a.ISOWeek()
	yearB, weekB := b.ISOWeek()

	if yearA == yearB {
		return weekB-weekA == 1
	}
	if yearB-yearA == 1 {
		return weekA == lastISOWeek(yearA) && weekB == 1
	}
	return false
}
