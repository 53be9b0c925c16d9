package services

import (
	"context"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

type HabitService struct {
	repo        domain.HabitRepository
	completions domain.CompletionRepository
}

func NewHabitService(repo domain.HabitRepository, completions domain.CompletionRepository) *HabitService {
	return &HabitService{
		repo:        repo,
		completions: completions,
	}
}

type CreateHabitInput struct {
	Name        string
	Description string
	Periodicity string
	CreatedAt   string
}

type UpdateHabitInput struct {
	Name        string
	Description string
	Periodicity string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Description, input.Periodicity, input.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Get(ctx context.Context, name string) (*domain.Habit, error) {
	return s.repo.GetByName(ctx, domain.NormalizeName(name))
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.List(ctx)
}

func (s *HabitService) ListByPeriodicity(ctx context.Context, periodicity string) ([]*domain.Habit, error) {
	p, err := domain.ParsePeriodicity(periodicity)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByPeriodicity(ctx, p)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByName(ctx, domain.NormalizeName(input.Name))
	if err != nil {
		return nil, err
	}

	description := habit.Description
	if input.Description != "" {
		description = input.Description
	}
	periodicity := string(habit.Periodicity)
	if input.Periodicity != "" {
		periodicity = input.Periodicity
	}

	if err := habit.UpdateDetails(description, periodicity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// Delete removes a habit together with its full tracking history.
func (s *HabitService) Delete(ctx context.Context, name string) error {
	normalized := domain.NormalizeName(name)

	if _, err := s.repo.GetByName(ctx, normalized); err != nil {
		return err
	}

	if err := s.completions.DeleteAllForHabit(ctx, normalized); err != nil {
		return err
	}
	return s.repo.Delete(ctx, normalized)
}
