package domain

import "errors"

var (
	// ErrNoHabits signals that the tracker holds no habits at all, which is
	// distinguishable from a habit that merely has a zero-length streak.
	ErrNoHabits = errors.New("no habits defined")

	// ErrNoCompletions signals an empty aggregation window rather than a
	// window full of zero counts.
	ErrNoCompletions = errors.New("no completions recorded")
)

// HabitCount pairs a habit name with a completion count for ranked output.
type HabitCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// HabitStreak pairs a habit name with a streak length for ranked output.
type HabitStreak struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}
