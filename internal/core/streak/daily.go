package streak

import "time"

const day = 24 * time.Hour

// CurrentDaily counts the run of consecutive days ending at the most recent
// completion. The input must be sorted most-recent first; the scan stops at
// the first gap that is not exactly one day. A single completion is a streak
// of 1, no completions a streak of 0.
func CurrentDaily(datesDesc []time.Time) int {
	if len(datesDesc) == 0 {
		return 0
	}

	current := 1
	for i := 1; i < len(datesDesc); i++ {
		if datesDesc[i-1].Sub(datesDesc[i]) != day {
			break
		}
		current++
	}
	return current
}

// LongestDaily finds the longest run of consecutive days anywhere in the
// history. The input must be sorted oldest first.
func LongestDaily(datesAsc []time.Time) int {
	if len(datesAsc) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(datesAsc); i++ {
		if datesAsc[i].Sub(datesAsc[i-1]) == day {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}

	// the final run may extend to the last element
	if run > longest {
		longest = run
	}
	return longest
}
