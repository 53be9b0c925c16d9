package domain

import (
	"context"
	"errors"
)

var (
	ErrCompletionNotFound = errors.New("completion not found")
	ErrCompletionConflict = errors.New("habit already completed on that date")
)

type CompletionRepository interface {
	// Create persists a new completion. Implementations must surface
	// ErrCompletionConflict when the (habit, date) pair already exists.
	Create(ctx context.Context, completion *Completion) error

	// Delete removes the completion of a habit on a specific date.
	Delete(ctx context.Context, habitName, date string) error

	// DeleteAllForHabit removes the full tracking history of a habit.
	DeleteAllForHabit(ctx context.Context, habitName string) error

	// ListDates retrieves the completion dates of a habit as YYYY-MM-DD
	// strings. Order is unspecified; callers sort as their computation
	// requires.
	ListDates(ctx context.Context, habitName string) ([]string, error)

	// ListInRange retrieves all completions, for every habit, whose date
	// falls within the closed interval [start, end].
	ListInRange(ctx context.Context, start, end string) ([]*Completion, error)

	// Exists reports whether the habit was completed on the given date.
	Exists(ctx context.Context, habitName, date string) (bool, error)
}
