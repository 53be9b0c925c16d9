package services

import (
	"context"
	"time"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

type CompletionService struct {
	repo      domain.CompletionRepository
	habitRepo domain.HabitRepository
}

func NewCompletionService(repo domain.CompletionRepository, habitRepo domain.HabitRepository) *CompletionService {
	return &CompletionService{
		repo:      repo,
		habitRepo: habitRepo,
	}
}

// CheckOff records that a habit was completed on the given date. An empty
// date means today (UTC). The date may not precede the habit's creation
// date, and the store rejects a second completion on the same date.
func (s *CompletionService) CheckOff(ctx context.Context, habitName, date string) (*domain.Completion, error) {
	habit, err := s.habitRepo.GetByName(ctx, domain.NormalizeName(habitName))
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().UTC().Format(domain.DateLayout)
	}

	completion, err := domain.NewCompletion(habit.Name, date)
	if err != nil {
		return nil, err
	}

	if completion.Date < habit.CreatedAt {
		return nil, domain.ErrCompletionBeforeCreation
	}

	if err := s.repo.Create(ctx, completion); err != nil {
		return nil, err
	}
	return completion, nil
}

func (s *CompletionService) Remove(ctx context.Context, habitName, date string) error {
	return s.repo.Delete(ctx, domain.NormalizeName(habitName), date)
}

// ListDates returns the raw completion dates of a habit, unordered.
func (s *CompletionService) ListDates(ctx context.Context, habitName string) ([]string, error) {
	normalized := domain.NormalizeName(habitName)

	if _, err := s.habitRepo.GetByName(ctx, normalized); err != nil {
		return nil, err
	}
	return s.repo.ListDates(ctx, normalized)
}

// RemoveAllForHabit clears the tracking history of a habit without removing
// the habit itself.
func (s *CompletionService) RemoveAllForHabit(ctx context.Context, habitName string) error {
	normalized := domain.NormalizeName(habitName)

	if _, err := s.habitRepo.GetByName(ctx, normalized); err != nil {
		return err
	}
	return s.repo.DeleteAllForHabit(ctx, normalized)
}
