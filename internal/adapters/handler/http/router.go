package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/ardabeyazoglu/habitrack/internal/adapters/handler/http/middleware"
)

const (
	defaultRateLimit  = 100
	defaultRateWindow = 1 * time.Minute
)

type RouterDependencies struct {
	HabitHandler      *HabitHandler
	CompletionHandler *CompletionHandler
	AnalyticsHandler  *AnalyticsHandler
	DB                *sqlx.DB
	Redis             *redis.Client
	StartTime         time.Time

	// Throttling applies only when Redis is set; zero values fall back to
	// the defaults above.
	RateLimit  int
	RateWindow time.Duration
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		limit := deps.RateLimit
		if limit <= 0 {
			limit = defaultRateLimit
		}
		window := deps.RateWindow
		if window <= 0 {
			window = defaultRateWindow
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, limit, window))
	}

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if deps.DB == nil {
			dbStatus = "disabled"
		} else if deps.DB.Ping() != nil {
			dbStatus = "unreachable"
		}

		// Redis is optional; a missing client is not a degraded state.
		redisStatus := "connected"
		if deps.Redis == nil {
			redisStatus = "disabled"
		} else if deps.Redis.Ping(c.Request.Context()).Err() != nil {
			redisStatus = "unreachable"
		}

		statusCode := 200
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		deps.HabitHandler.RegisterRoutes(apiV1)
		deps.CompletionHandler.RegisterRoutes(apiV1)
		deps.AnalyticsHandler.RegisterRoutes(apiV1)
	}

	return router
}
