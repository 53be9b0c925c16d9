package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

// In-memory implementations of both ports, used by tests and the e2e
// harness. Guarded by a mutex so parallel tests stay safe.

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[habit.Name]; exists {
		return domain.ErrHabitConflict
	}
	clone := *habit
	r.store[habit.Name] = &clone
	return nil
}

func (r *InMemoryHabitRepository) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[name]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *habit
	return &clone, nil
}

func (r *InMemoryHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.store))
	for _, h := range r.store {
		clone := *h
		habits = append(habits, &clone)
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].Name < habits[j].Name
	})
	return habits, nil
}

func (r *InMemoryHabitRepository) ListNames(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.store))
	for name := range r.store {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *InMemoryHabitRepository) ListByPeriodicity(ctx context.Context, p domain.Periodicity) ([]*domain.Habit, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Habit, 0, len(all))
	for _, h := range all {
		if h.Periodicity == p {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.Name]; !ok {
		return domain.ErrHabitNotFound
	}
	clone := *habit
	r.store[habit.Name] = &clone
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[name]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(r.store, name)
	return nil
}

func (r *InMemoryHabitRepository) Exists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[name]
	return ok, nil
}

type InMemoryCompletionRepository struct {
	// keyed by habit name, then by date
	store map[string]map[string]*domain.Completion

	mu sync.RWMutex
}

func NewInMemoryCompletionRepository() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{
		store: make(map[string]map[string]*domain.Completion),
	}
}

func (r *InMemoryCompletionRepository) Create(ctx context.Context, completion *domain.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.store[completion.HabitName]
	if !ok {
		byDate = make(map[string]*domain.Completion)
		r.store[completion.HabitName] = byDate
	}
	if _, exists := byDate[completion.Date]; exists {
		return domain.ErrCompletionConflict
	}

	clone := *completion
	byDate[completion.Date] = &clone
	return nil
}

func (r *InMemoryCompletionRepository) Delete(ctx context.Context, habitName, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate, ok := r.store[habitName]
	if !ok {
		return domain.ErrCompletionNotFound
	}
	if _, exists := byDate[date]; !exists {
		return domain.ErrCompletionNotFound
	}
	delete(byDate, date)
	return nil
}

func (r *InMemoryCompletionRepository) DeleteAllForHabit(ctx context.Context, habitName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, habitName)
	return nil
}

func (r *InMemoryCompletionRepository) ListDates(ctx context.Context, habitName string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var dates []string
	for date := range r.store[habitName] {
		dates = append(dates, date)
	}
	return dates, nil
}

func (r *InMemoryCompletionRepository) ListInRange(ctx context.Context, start, end string) ([]*domain.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Completion
	for _, byDate := range r.store {
		for date, c := range byDate {
			if date >= start && date <= end {
				clone := *c
				matched = append(matched, &clone)
			}
		}
	}
	// deterministic output, matching the SQL repositories
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		return matched[i].HabitName < matched[j].HabitName
	})
	return matched, nil
}

func (r *InMemoryCompletionRepository) Exists(ctx context.Context, habitName, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[habitName][date]
	return ok, nil
}
