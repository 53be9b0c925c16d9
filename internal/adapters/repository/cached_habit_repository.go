package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const (
	habitListKey  = "habitrack:habits"
	habitListTTL  = 30 * time.Minute
	habitNamesKey = "habitrack:habit-names"
)

// CachedHabitRepository is a read-through cache in front of another habit
// repository. Only the list reads are cached; they back every ranking
// request, while single-habit reads are already cheap. Any write
// invalidates both keys.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedHabitRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, habitListKey, habitNamesKey).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate habit lists: %v", err)
	}
}

func readThrough[T any](ctx context.Context, cache *redis.Client, key string, load func() (T, error)) (T, error) {
	var zero T

	val, err := cache.Get(ctx, key).Result()
	if err == nil {
		var cached T
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}

		log.Printf("[CACHE] Corrupted data under %s, cleaning up key", key)
		cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	loaded, err := load()
	if err != nil {
		return zero, err
	}

	if data, err := json.Marshal(loaded); err == nil {
		if setErr := cache.Set(ctx, key, data, habitListTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}
	return loaded, nil
}

func (r *CachedHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	return readThrough(ctx, r.cache, habitListKey, func() ([]*domain.Habit, error) {
		return r.next.List(ctx)
	})
}

func (r *CachedHabitRepository) ListNames(ctx context.Context) ([]string, error) {
	return readThrough(ctx, r.cache, habitNamesKey, func() ([]string, error) {
		return r.next.ListNames(ctx)
	})
}

func (r *CachedHabitRepository) GetByName(ctx context.Context, name string) (*domain.Habit, error) {
	return r.next.GetByName(ctx, name)
}

func (r *CachedHabitRepository) ListByPeriodicity(ctx context.Context, p domain.Periodicity) ([]*domain.Habit, error) {
	habits, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		if h.Periodicity == p {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

func (r *CachedHabitRepository) Exists(ctx context.Context, name string) (bool, error) {
	return r.next.Exists(ctx, name)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, name string) error {
	if err := r.next.Delete(ctx, name); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
