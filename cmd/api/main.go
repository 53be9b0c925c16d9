package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ardabeyazoglu/habitrack/internal/adapters/cache"
	adapterHTTP "github.com/ardabeyazoglu/habitrack/internal/adapters/handler/http"
	"github.com/ardabeyazoglu/habitrack/internal/adapters/repository"
	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
	"github.com/ardabeyazoglu/habitrack/internal/core/services"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDatabase() (*sqlx.DB, error) {
	driver := getEnv("DB_DRIVER", "sqlite")

	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432"),
			os.Getenv("DB_NAME"))

		db, err := sqlx.Connect("pgx", dsn)
		if err != nil {
			return nil, err
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		return db, nil

	case "sqlite":
		path := getEnv("SQLITE_PATH", "habitrack.db")

		db, err := sqlx.Connect("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
		if err != nil {
			return nil, err
		}

		// the driver serializes access anyway; one connection avoids
		// SQLITE_BUSY under concurrent writes
		db.SetMaxOpenConns(1)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", driver)
	}
}

func buildRepositories(db *sqlx.DB) (domain.HabitRepository, domain.CompletionRepository) {
	if db.DriverName() == "pgx" {
		return repository.NewPostgresHabitRepository(db), repository.NewPostgresCompletionRepository(db)
	}
	return repository.NewSQLiteHabitRepository(db), repository.NewSQLiteCompletionRepository(db)
}

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverPort := getEnv("PORT", "8080")

	log.Println("Connecting to database...")

	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(db); err != nil {
		log.Fatalf("Critical: Failed to apply schema: %v", err)
	}

	log.Println("Database connected successfully.")

	habitRepo, completionRepo := buildRepositories(db)

	rdb, redisErr := maybeRedis()
	if redisErr != nil {
		log.Printf("Redis disabled: %v", redisErr)
	}
	if rdb != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
		log.Println("Redis connected, habit list cache enabled.")
	}

	habitService := services.NewHabitService(habitRepo, completionRepo)
	completionService := services.NewCompletionService(completionRepo, habitRepo)
	analyticsService := services.NewAnalyticsService(habitRepo, completionRepo)

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "0"))
	if err != nil {
		log.Fatalf("Critical: invalid RATE_LIMIT: %v", err)
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:      adapterHTTP.NewHabitHandler(habitService),
		CompletionHandler: adapterHTTP.NewCompletionHandler(completionService),
		AnalyticsHandler:  adapterHTTP.NewAnalyticsHandler(analyticsService),
		DB:                db,
		Redis:             rdb,
		StartTime:         startTime,
		RateLimit:         rateLimit,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Habitrack API running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

// maybeRedis connects to redis when REDIS_HOST is set. Redis is optional:
// without it the API runs uncached and unthrottled.
func maybeRedis() (*redis.Client, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil, nil
	}

	dbIndex, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	return cache.NewRedisClient(host, getEnv("REDIS_PORT", "6379"), os.Getenv("REDIS_PASSWORD"), dbIndex)
}
