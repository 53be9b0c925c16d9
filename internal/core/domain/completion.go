package domain

import (
	"errors"

	"github.com/google/uuid"
)

var ErrCompletionBeforeCreation = errors.New("completion date precedes the habit's creation date")

// Completion marks one realization of a habit on a calendar date.
// Uniqueness of (habit, date) is enforced by the store.
type Completion struct {
	ID        string `json:"id" db:"id"`
	HabitName string `json:"habit_name" db:"habit_name"`
	Date      string `json:"date" db:"completion_date"`
}

func NewCompletion(habitName, date string) (*Completion, error) {
	normalized := NormalizeName(habitName)
	if normalized == "" {
		return nil, ErrHabitNameEmpty
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	return &Completion{
		ID:        uuid.NewString(),
		HabitName: normalized,
		Date:      date,
	}, nil
}
