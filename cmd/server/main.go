package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"topiclens/internal/cache"
	"topiclens/internal/classifier"
	"topiclens/internal/config"
	"topiclens/internal/db"
	"topiclens/internal/jobs"
	"topiclens/internal/metrics"
	"topiclens/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	labelsCfg, err := config.LoadLabelsConfig()
	if err != nil {
		log.Fatalf("Failed to load labels config: %v", err)
	}
	if labelsCfg != nil {
		log.Printf("Loaded %d label sets from labels file", len(labelsCfg.Sets))
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Redis backs the result cache and the rate limiter when configured
	var (
		resultCache    *cache.Cache
		limiterStorage fiber.Storage
	)
	if cfg.RedisURL != "" {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		resultCache = cache.New(store, cfg.CacheTTL)
		limiterStorage = store
		log.Println("Redis result cache enabled")
	} else {
		log.Println("Redis result cache disabled. Set REDIS_URL to enable.")
	}

	// Classification pipeline
	client := classifier.NewHTTPClient(cfg.ClassifierURL, cfg.ClassifierTimeout)
	svc := classifier.NewService(client, resultCache, labelsCfg, cfg.MinConfidence)

	metrics.Init(database)

	// Background classifier endpoint monitor
	monitor := jobs.NewMonitor(client, cfg.MonitorInterval)
	go monitor.Start(ctx)

	// Server and routes
	srv := server.New(cfg, limiterStorage)
	if err := srv.RegisterRoutes(ctx, database, svc, monitor, resultCache != nil); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
