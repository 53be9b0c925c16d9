package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitConflict = errors.New("habit already exists")
)

type HabitRepository interface {
	// Create persists a new habit definition.
	Create(ctx context.Context, habit *Habit) error

	// GetByName retrieves a habit by its case-normalized name.
	GetByName(ctx context.Context, name string) (*Habit, error)

	// List retrieves every habit, ordered by name.
	List(ctx context.Context) ([]*Habit, error)

	// ListNames retrieves every known habit name, ordered by name.
	ListNames(ctx context.Context) ([]string, error)

	// ListByPeriodicity retrieves habits with the given cadence, ordered by name.
	ListByPeriodicity(ctx context.Context, p Periodicity) ([]*Habit, error)

	// Update modifies the state of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit.
	Delete(ctx context.Context, name string) error

	// Exists reports whether a habit with the given name is defined.
	Exists(ctx context.Context, name string) (bool, error)
}
