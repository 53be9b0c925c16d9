package services_test

import (
	"context"
	"sort"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

// Map-backed fakes for both repository ports. A non-nil simulateError is
// returned by every method, which lets tests force the failure paths.

type fakeHabitRepo struct {
	store         map[string]*domain.Habit
	simulateError error
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{store: make(map[string]*domain.Habit)}
}

func (f *fakeHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	if f.simulateError != nil {
		return f.simulateError
	}
	if _, exists := f.store[habit.Name]; exists {
		return domain.ErrHabitConflict
	}
	clone := *habit
	f.store[habit.Name] = &clone
	return nil
}

func (f *fakeHabitRepo) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	if f.simulateError != nil {
		return nil, f.simulateError
	}
	h, ok := f.store[name]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *h
	return &clone, nil
}

func (f *fakeHabitRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	if f.simulateError != nil {
		return nil, f.simulateError
	}
	names, _ := f.ListNames(ctx)
	habits := make([]*domain.Habit, 0, len(names))
	for _, n := range names {
		clone := *f.store[n]
		habits = append(habits, &clone)
	}
	return habits, nil
}

func (f *fakeHabitRepo) ListNames(ctx context.Context) ([]string, error) {
	if f.simulateError != nil {
		return nil, f.simulateError
	}
	names := make([]string, 0, len(f.store))
	for n := range f.store {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeHabitRepo) ListByPeriodicity(ctx context.Context, p domain.Periodicity) ([]*domain.Habit, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []*domain.Habit
	for _, h := range all {
		if h.Periodicity == p {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func (f *fakeHabitRepo) Update(ctx context.Context, habit *domain.Habit) error {
	if f.simulateError != nil {
		return f.simulateError
	}
	if _, ok := f.store[habit.Name]; !ok {
		return domain.ErrHabitNotFound
	}
	clone := *habit
	f.store[habit.Name] = &clone
	return nil
}

func (f *fakeHabitRepo) Delete(ctx context.Context, name string) error {
	if f.simulateError != nil {
		return f.simulateError
	}
	if _, ok := f.store[name]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(f.store, name)
	return nil
}

func (f *fakeHabitRepo) Exists(ctx context.Context, name string) (bool, error) {
	if f.simulateError != nil {
		return false, f.simulateError
	}
	_, ok := f.store[name]
	return ok, nil
}

type fakeCompletionRepo struct {
	completions []*domain.Completion

	// inRange, when set, is returned verbatim by ListInRange so tests do
	// not depend on the real clock's previous-month window.
	inRange       []*domain.Completion
	simulateError error
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{}
}

func (f *fakeCompletionRepo) Create(ctx context.Context, completion *domain.Completion) error {
	if f.simulateError != nil {
		return f.simulateError
	}
	for _, c := range f.completions {
		if c.HabitName == completion.HabitName && c.Date == completion.Date {
			return domain.ErrCompletionConflict
		}
	}
	clone := *completion
	f.completions = append(f.completions, &clone)
	return nil
}

func (f *fakeCompletionRepo) Delete(ctx context.Context, habitName, date string) error {
	if f.simulateError != nil {
		return f.simulateError
	}
	for i, c := range f.completions {
		if c.HabitName == habitName && c.Date == date {
			f.completions = append(f.completions[:i], f.completions[i+1:]...)
			return nil
		}
	}
	return domain.ErrCompletionNotFound
}

func (f *fakeCompletionRepo) DeleteAllForHabit(ctx context.Context, habitName string) error {
	if f.simulateError != nil {
		return f.simulateError
	}
	kept := f.completions[:0]
	for _, c := range f.completions {
		if c.HabitName != habitName {
			kept = append(kept, c)
		}
	}
	f.completions = kept
	return nil
}

func (f *fakeCompletionRepo) ListDates(ctx context.Context, habitName string) ([]string, error) {
	if f.simulateError != nil {
		return nil, f.simulateError
	}
	var dates []string
	for _, c := range f.completions {
		if c.HabitName == habitName {
			dates = append(dates, c.Date)
		}
	}
	return dates, nil
}

func (f *fakeCompletionRepo) ListInRange(ctx context.Context, start, end string) ([]*domain.Completion, error) {
	if f.simulateError != nil {
		return nil, f.simulateError
	}
	if f.inRange != nil {
		return f.inRange, nil
	}
	var matched []*domain.Completion
	for _, c := range f.completions {
		if c.Date >= start && c.Date <= end {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeCompletionRepo) Exists(ctx context.Context, habitName, date string) (bool, error) {
	if f.simulateError != nil {
		return false, f.simulateError
	}
	for _, c := range f.completions {
		if c.HabitName == habitName && c.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func seedHabit(repo *fakeHabitRepo, name string, p domain.Periodicity, createdAt string) {
	repo.store[name] = &domain.Habit{
		Name:        name,
		Periodicity: p,
		CreatedAt:   createdAt,
	}
}

func seedCompletions(repo *fakeCompletionRepo, habitName string, dates ...string) {
	for _, d := range dates {
		repo.completions = append(repo.completions, &domain.Completion{
			ID:        habitName + "-" + d,
			HabitName: habitName,
			Date:      d,
		})
	}
}
