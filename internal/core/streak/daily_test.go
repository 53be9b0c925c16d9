package streak_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardabeyazoglu/habitrack/internal/core/streak"
)

func descending(t *testing.T, dates ...string) []time.Time {
	t.Helper()
	sorted, err := streak.SortDescending(dates)
	require.NoError(t, err)
	return sorted
}

func ascending(t *testing.T, dates ...string) []time.Time {
	t.Helper()
	sorted, err := streak.SortAscending(dates)
	require.NoError(t, err)
	return sorted
}

func TestCurrentDaily(t *testing.T) {
	t.Run("Gap between the two most recent dates breaks immediately", func(t *testing.T) {
		dates := descending(t, "2025-01-10", "2025-01-08", "2025-01-07")
		assert.Equal(t, 1, streak.CurrentDaily(dates))
	})

	t.Run("Unbroken run counts every entry", func(t *testing.T) {
		dates := descending(t, "2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10")
		assert.Equal(t, 4, streak.CurrentDaily(dates))
	})

	t.Run("Counts only the run ending at the most recent date", func(t *testing.T) {
		dates := descending(t, "2025-01-01", "2025-01-02", "2025-01-05", "2025-01-06", "2025-01-07")
		assert.Equal(t, 3, streak.CurrentDaily(dates))
	})

	t.Run("Single completion", func(t *testing.T) {
		assert.Equal(t, 1, streak.CurrentDaily(descending(t, "2025-01-10")))
	})

	t.Run("Empty history", func(t *testing.T) {
		assert.Equal(t, 0, streak.CurrentDaily(nil))
	})
}

func TestLongestDaily(t *testing.T) {
	t.Run("Longest run sits in the middle of the history", func(t *testing.T) {
		dates := ascending(t,
			"2024-11-01", "2024-11-02", "2024-11-03", "2024-11-04",
			"2024-11-09",
			"2024-11-13", "2024-11-14", "2024-11-15",
			"2024-11-23", "2024-11-24",
			"2024-11-27", "2024-11-28", "2024-11-29", "2024-11-30", "2024-12-01", "2024-12-02",
			"2024-12-04",
			"2024-12-06", "2024-12-07",
			"2024-12-09", "2024-12-10", "2024-12-11",
		)
		assert.Equal(t, 6, streak.LongestDaily(dates))
	})

	t.Run("Run ending at the last element is captured", func(t *testing.T) {
		dates := ascending(t, "2025-01-01", "2025-01-05", "2025-01-06", "2025-01-07")
		assert.Equal(t, 3, streak.LongestDaily(dates))
	})

	t.Run("Gapless history equals its length and matches CurrentDaily of the reverse", func(t *testing.T) {
		raw := []string{"2025-02-01", "2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05"}

		asc, err := streak.SortAscending(raw)
		require.NoError(t, err)
		desc, err := streak.SortDescending(raw)
		require.NoError(t, err)

		assert.Equal(t, len(raw), streak.LongestDaily(asc))
		assert.Equal(t, len(raw), streak.CurrentDaily(desc))
	})

	t.Run("Single completion", func(t *testing.T) {
		assert.Equal(t, 1, streak.LongestDaily(ascending(t, "2025-01-10")))
	})

	t.Run("Empty history", func(t *testing.T) {
		assert.Equal(t, 0, streak.LongestDaily(nil))
	})
}
