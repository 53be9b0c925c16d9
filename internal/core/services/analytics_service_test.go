package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
	"github.com/ardabeyazoglu/habitrack/internal/core/services"
)

func TestAnalyticsService_CurrentStreak(t *testing.T) {
	ctx := context.Background()

	t.Run("Daily habit counts run ending at most recent date", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "workout", domain.PeriodicityDaily, "2025-01-01")
		seedCompletions(completionRepo, "workout",
			"2025-01-02", "2025-01-05", "2025-01-06", "2025-01-07")

		got, err := svc.CurrentStreak(ctx, "workout")
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("Weekly habit collapses same-week repeats", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "swimming", domain.PeriodicityWeekly, "2024-10-01")
		seedCompletions(completionRepo, "swimming",
			"2024-11-01", "2024-11-06", "2024-11-22",
			"2024-11-27", "2024-11-29", "2024-12-02", "2024-12-03")

		got, err := svc.CurrentStreak(ctx, "swimming")
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("Name lookup is case-insensitive", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "reading", domain.PeriodicityDaily, "2025-01-01")
		seedCompletions(completionRepo, "reading", "2025-01-02")

		got, err := svc.CurrentStreak(ctx, "  Reading ")
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("No completions yields zero without error", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "yoga", domain.PeriodicityDaily, "2025-01-01")

		got, err := svc.CurrentStreak(ctx, "yoga")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("Unknown habit", func(t *testing.T) {
		svc := services.NewAnalyticsService(newFakeHabitRepo(), newFakeCompletionRepo())

		_, err := svc.CurrentStreak(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Corrupt periodicity from the store is a defect", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "broken", domain.Periodicity("monthly"), "2025-01-01")
		seedCompletions(completionRepo, "broken", "2025-01-02")

		_, err := svc.CurrentStreak(ctx, "broken")
		assert.ErrorIs(t, err, domain.ErrInvalidPeriodicity)
	})

	t.Run("Malformed stored date degrades to an error, not a panic", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "garbled", domain.PeriodicityDaily, "2025-01-01")
		seedCompletions(completionRepo, "garbled", "2025-01-02", "not-a-date")

		_, err := svc.CurrentStreak(ctx, "garbled")
		assert.Error(t, err)
	})
}

func TestAnalyticsService_LongestStreak(t *testing.T) {
	ctx := context.Background()

	t.Run("Daily habit finds the longest run in the middle", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "workout", domain.PeriodicityDaily, "2024-10-01")
		seedCompletions(completionRepo, "workout",
			"2024-11-01", "2024-11-02", "2024-11-03", "2024-11-04",
			"2024-11-09",
			"2024-11-27", "2024-11-28", "2024-11-29", "2024-11-30", "2024-12-01", "2024-12-02",
			"2024-12-04")

		got, err := svc.LongestStreak(ctx, "workout")
		require.NoError(t, err)
		assert.Equal(t, 6, got)
	})

	t.Run("Weekly habit absorbs same-week dates", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "dancing", domain.PeriodicityWeekly, "2024-10-01")
		seedCompletions(completionRepo, "dancing",
			"2024-11-05", "2024-11-06", "2024-11-10",
			"2024-11-18", "2024-11-25", "2024-12-05", "2024-12-15", "2024-12-16")

		got, err := svc.LongestStreak(ctx, "dancing")
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("No completions yields zero", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "yoga", domain.PeriodicityWeekly, "2025-01-01")

		got, err := svc.LongestStreak(ctx, "yoga")
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})
}

func TestAnalyticsService_Rankings(t *testing.T) {
	svc := services.NewAnalyticsService(newFakeHabitRepo(), newFakeCompletionRepo())

	t.Run("RankByCount orders descending", func(t *testing.T) {
		got := svc.RankByCount([]domain.HabitCount{
			{Name: "workout", Count: 1},
			{Name: "dancing", Count: 6},
		})
		assert.Equal(t, []domain.HabitCount{
			{Name: "dancing", Count: 6},
			{Name: "workout", Count: 1},
		}, got)
	})

	t.Run("Ties preserve input order", func(t *testing.T) {
		got := svc.RankByCount([]domain.HabitCount{
			{Name: "reading", Count: 3},
			{Name: "yoga", Count: 3},
			{Name: "running", Count: 7},
		})
		assert.Equal(t, []domain.HabitCount{
			{Name: "running", Count: 7},
			{Name: "reading", Count: 3},
			{Name: "yoga", Count: 3},
		}, got)
	})

	t.Run("Input slice is not mutated", func(t *testing.T) {
		input := []domain.HabitCount{
			{Name: "a", Count: 1},
			{Name: "b", Count: 2},
		}
		_ = svc.RankByCount(input)
		assert.Equal(t, "a", input[0].Name)
	})

	t.Run("RankByStreak orders descending with stable ties", func(t *testing.T) {
		got := svc.RankByStreak([]domain.HabitStreak{
			{Name: "yoga", Streak: 2},
			{Name: "dancing", Streak: 9},
			{Name: "reading", Streak: 2},
		})
		assert.Equal(t, []domain.HabitStreak{
			{Name: "dancing", Streak: 9},
			{Name: "yoga", Streak: 2},
			{Name: "reading", Streak: 2},
		}, got)
	})
}

func TestLastMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Mid January looks at December",
			now:       time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC),
			wantStart: "2024-12-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "March of a leap year looks at 29-day February",
			now:       time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "Last day of a month still looks at the previous month",
			now:       time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC),
			wantStart: "2025-06-01",
			wantEnd:   "2025-06-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := services.LastMonthRange(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestAnalyticsService_MostCompletedLastMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("Groups, counts and ranks descending", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		completionRepo.inRange = []*domain.Completion{
			{HabitName: "workout", Date: "2025-07-02"},
			{HabitName: "dancing", Date: "2025-07-03"},
			{HabitName: "dancing", Date: "2025-07-10"},
			{HabitName: "dancing", Date: "2025-07-11"},
			{HabitName: "dancing", Date: "2025-07-17"},
			{HabitName: "dancing", Date: "2025-07-24"},
			{HabitName: "dancing", Date: "2025-07-31"},
		}

		got, err := svc.MostCompletedLastMonth(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.HabitCount{
			{Name: "dancing", Count: 6},
			{Name: "workout", Count: 1},
		}, got)
	})

	t.Run("Empty window is a distinguishable no-data result", func(t *testing.T) {
		svc := services.NewAnalyticsService(newFakeHabitRepo(), newFakeCompletionRepo())

		got, err := svc.MostCompletedLastMonth(ctx)
		assert.ErrorIs(t, err, domain.ErrNoCompletions)
		assert.Nil(t, got)
	})

	t.Run("Store error propagates", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		completionRepo.simulateError = errors.New("db connection lost")
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		_, err := svc.MostCompletedLastMonth(ctx)
		assert.EqualError(t, err, "db connection lost")
	})
}

func TestAnalyticsService_StreakLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Ranks all habits by longest streak", func(t *testing.T) {
		habitRepo := newFakeHabitRepo()
		completionRepo := newFakeCompletionRepo()
		svc := services.NewAnalyticsService(habitRepo, completionRepo)

		seedHabit(habitRepo, "workout", domain.PeriodicityDaily, "2025-01-01")
		seedCompletions(completionRepo, "workout",
			"2025-01-02", "2025-01-03", "2025-01-04")

		seedHabit(habitRepo, "swimming", domain.PeriodicityWeekly, "2025-01-01")
		seedCompletions(completionRepo, "swimming", "2025-01-06", "2025-01-13")

		seedHabit(habitRepo, "journaling", domain.PeriodicityDaily, "2025-01-01")

		got, err := svc.StreakLeaderboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.HabitStreak{
			{Name: "workout", Streak: 3},
			{Name: "swimming", Streak: 2},
			{Name: "journaling", Streak: 0},
		}, got)
	})

	t.Run("No habits at all", func(t *testing.T) {
		svc := services.NewAnalyticsService(newFakeHabitRepo(), newFakeCompletionRepo())

		got, err := svc.StreakLeaderboard(ctx)
		assert.ErrorIs(t, err, domain.ErrNoHabits)
		assert.Nil(t, got)
	})
}
