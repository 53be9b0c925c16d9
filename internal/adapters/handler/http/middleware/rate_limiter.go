package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateKeyPrefix = "habitrack:ratelimit:"

// RateLimiterMiddleware enforces a fixed-window per-IP request budget backed
// by redis. It fails open: when redis is unreachable the request goes
// through unthrottled.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateKeyPrefix + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("Redis error (rate limiter skipped): %v", err)
			c.Next()
			return
		}

		// first hit in the window owns the expiry
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Printf("Redis expire error: %v. Dropping key so it cannot linger.", err)
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":         "rate limit exceeded",
				"retry_after_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
