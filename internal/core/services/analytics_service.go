package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
	"github.com/ardabeyazoglu/habitrack/internal/core/streak"
)

// AnalyticsService answers every streak and ranking question. It holds no
// state of its own: each call reads a fresh snapshot from the repositories
// and reduces it with the streak package.
type AnalyticsService struct {
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
}

func NewAnalyticsService(habitRepo domain.HabitRepository, completionRepo domain.CompletionRepository) *AnalyticsService {
	return &AnalyticsService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
	}
}

// CurrentStreak computes the run of qualifying periods ending at the habit's
// most recent completion. A habit without completions has a streak of 0.
func (s *AnalyticsService) CurrentStreak(ctx context.Context, habitName string) (int, error) {
	habit, err := s.habitRepo.GetByName(ctx, domain.NormalizeName(habitName))
	if err != nil {
		return 0, err
	}

	dates, err := s.completionRepo.ListDates(ctx, habit.Name)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	desc, err := streak.SortDescending(dates)
	if err != nil {
		return 0, err
	}

	switch habit.Periodicity {
	case domain.PeriodicityDaily:
		return streak.CurrentDaily(desc), nil
	case domain.PeriodicityWeekly:
		return streak.CurrentWeekly(desc), nil
	default:
		return 0, fmt.Errorf("%w: habit %q carries %q", domain.ErrInvalidPeriodicity, habit.Name, habit.Periodicity)
	}
}

// LongestStreak computes the maximum run of qualifying periods anywhere in
// the habit's history.
func (s *AnalyticsService) LongestStreak(ctx context.Context, habitName string) (int, error) {
	habit, err := s.habitRepo.GetByName(ctx, domain.NormalizeName(habitName))
	if err != nil {
		return 0, err
	}

	dates, err := s.completionRepo.ListDates(ctx, habit.Name)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	asc, err := streak.SortAscending(dates)
	if err != nil {
		return 0, err
	}

	switch habit.Periodicity {
	case domain.PeriodicityDaily:
		return streak.LongestDaily(asc), nil
	case domain.PeriodicityWeekly:
		return streak.LongestWeekly(asc), nil
	default:
		return 0, fmt.Errorf("%w: habit %q carries %q", domain.ErrInvalidPeriodicity, habit.Name, habit.Periodicity)
	}
}

// RankByCount orders completion counts descending. The sort is stable, so
// ties keep their input order.
func (s *AnalyticsService) RankByCount(entries []domain.HabitCount) []domain.HabitCount {
	ranked := make([]domain.HabitCount, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// RankByStreak orders streak lengths descending, stable on ties.
func (s *AnalyticsService) RankByStreak(entries []domain.HabitStreak) []domain.HabitStreak {
	ranked := make([]domain.HabitStreak, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Streak > ranked[j].Streak
	})
	return ranked
}

// LastMonthRange returns the first and last day of the calendar month
// preceding now, as YYYY-MM-DD strings.
func LastMonthRange(now time.Time) (string, string) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastOfPrevMonth := firstOfThisMonth.AddDate(0, 0, -1)
	firstOfPrevMonth := time.Date(lastOfPrevMonth.Year(), lastOfPrevMonth.Month(), 1, 0, 0, 0, 0, time.UTC)

	return firstOfPrevMonth.Format(domain.DateLayout), lastOfPrevMonth.Format(domain.DateLayout)
}

// CompletionsLastMonth counts, per habit, the completions that fall inside
// the previous calendar month. Habits without completions in the window are
// absent from the result. Entries keep the order in which the store first
// produced each habit, which makes the subsequent stable ranking
// deterministic.
func (s *AnalyticsService) CompletionsLastMonth(ctx context.Context) ([]domain.HabitCount, error) {
	start, end := LastMonthRange(time.Now().UTC())

	completions, err := s.completionRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(completions))
	order := make([]string, 0, len(completions))
	for _, c := range completions {
		if _, seen := counts[c.HabitName]; !seen {
			order = append(order, c.HabitName)
		}
		counts[c.HabitName]++
	}

	entries := make([]domain.HabitCount, 0, len(order))
	for _, name := range order {
		entries = append(entries, domain.HabitCount{Name: name, Count: counts[name]})
	}
	return entries, nil
}

// MostCompletedLastMonth ranks last month's completion counts descending.
// The headline entry is therefore the habit completed most often, not the
// most neglected one; the sort direction is kept for compatibility with the
// established reports.
func (s *AnalyticsService) MostCompletedLastMonth(ctx context.Context) ([]domain.HabitCount, error) {
	entries, err := s.CompletionsLastMonth(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoCompletions
	}
	return s.RankByCount(entries), nil
}

// StreakLeaderboard ranks every defined habit by its longest streak.
func (s *AnalyticsService) StreakLeaderboard(ctx context.Context) ([]domain.HabitStreak, error) {
	names, err := s.habitRepo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, domain.ErrNoHabits
	}

	entries := make([]domain.HabitStreak, 0, len(names))
	for _, name := range names {
		longest, err := s.LongestStreak(ctx, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.HabitStreak{Name: name, Streak: longest})
	}
	return s.RankByStreak(entries), nil
}
