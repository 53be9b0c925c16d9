package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient dials redis and verifies the connection before handing the
// client out. Redis only backs optional concerns here (the habit-list cache
// and the rate limiter), so the pool stays small and timeouts short; a
// tracker that cannot reach redis still works, just uncached.
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     8,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return rdb, nil
}
