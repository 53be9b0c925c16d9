package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 100 chars)")
	ErrHabitDescTooLong   = errors.New("habit description is too long (max 500 chars)")
	ErrInvalidPeriodicity = errors.New("invalid periodicity (must be daily or weekly)")
	ErrInvalidDate        = errors.New("invalid date (must be YYYY-MM-DD)")
)

const (
	MaxNameLen = 100
	MaxDescLen = 500

	// DateLayout is the wire and storage format for all calendar dates.
	// The tracker works at whole-day granularity; there is no time component.
	DateLayout = "2006-01-02"
)

// Periodicity is the cadence at which a habit is expected to recur.
// It is a closed set: a value outside {daily, weekly} coming back from
// storage is a data-integrity defect, not a recoverable condition.
type Periodicity string

const (
	PeriodicityDaily  Periodicity = "daily"
	PeriodicityWeekly Periodicity = "weekly"
)

func ParsePeriodicity(s string) (Periodicity, error) {
	switch Periodicity(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodicityDaily:
		return PeriodicityDaily, nil
	case PeriodicityWeekly:
		return PeriodicityWeekly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriodicity, s)
	}
}

func (p Periodicity) Valid() bool {
	return p == PeriodicityDaily || p == PeriodicityWeekly
}

// Habit is identified by its case-normalized name. Streaks are never stored
// on the habit; they are recomputed from the completion history on demand.
type Habit struct {
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description,omitempty" db:"description"`
	Periodicity Periodicity `json:"periodicity" db:"periodicity"`
	CreatedAt   string      `json:"created_at" db:"created_at"`
}

// NormalizeName lowercases and trims a habit name so lookups are
// case-insensitive everywhere.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// NewHabit builds a validated habit. An empty createdAt defaults to today (UTC).
func NewHabit(name, description, periodicity, createdAt string) (*Habit, error) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil, ErrHabitNameEmpty
	}
	if len(normalized) > MaxNameLen {
		return nil, ErrHabitNameTooLong
	}

	cleanDesc := strings.TrimSpace(description)
	if len(cleanDesc) > MaxDescLen {
		return nil, ErrHabitDescTooLong
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return nil, err
	}

	if createdAt == "" {
		createdAt = time.Now().UTC().Format(DateLayout)
	} else if err := validateDate(createdAt); err != nil {
		return nil, err
	}

	return &Habit{
		Name:        normalized,
		Description: cleanDesc,
		Periodicity: p,
		CreatedAt:   createdAt,
	}, nil
}

// UpdateDetails replaces the mutable fields of a habit. The name and the
// creation date are fixed for the lifetime of the habit.
func (h *Habit) UpdateDetails(description, periodicity string) error {
	cleanDesc := strings.TrimSpace(description)
	if len(cleanDesc) > MaxDescLen {
		return ErrHabitDescTooLong
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return err
	}

	h.Description = cleanDesc
	h.Periodicity = p
	return nil
}
