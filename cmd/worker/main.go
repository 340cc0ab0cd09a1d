package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/accessibility-map/internal/config"
	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/mapsync"
	"github.com/accessibility-map/internal/pkg/logger"
	"github.com/accessibility-map/internal/repository/cache"
	"github.com/accessibility-map/internal/repository/postgres"
	redisRepo "github.com/accessibility-map/internal/repository/redis"
	"github.com/accessibility-map/internal/worker"
	"github.com/accessibility-map/internal/worker/feed"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Point Feed Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_batch_size", cfg.Worker.MaxBatchSize))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	pointRepo := postgres.NewPointRepository(db)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Headless map session: воркер держит то же состояние карты,
	// что и API, но без HTTP-слоя
	provider := mapsync.NewVirtualProvider()
	engine := mapsync.NewEngine(provider, log)
	view := mapsync.NewView()
	session := mapsync.NewSession(engine, view, log)

	startCtx, startCancel := context.WithTimeout(context.Background(), 5*time.Second)
	center := domain.Coordinates{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon}
	theme := mapsync.ParseTheme(cfg.Map.DefaultTheme)
	if err := session.Start(startCtx, "worker-map", center, cfg.Map.Zoom, theme); err != nil {
		startCancel()
		log.Fatal("Failed to start map session", zap.Error(err))
	}
	startCancel()

	// 7. Initialize worker
	feedWorker := feed.NewPointFeedWorker(
		streamRepo,
		pointRepo,
		view,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxBatchSize,
		log,
	)

	manager := worker.NewManager(log)
	manager.Register(feedWorker)

	// 8. Start workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	log.Info("Workers started successfully")

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers gracefully...")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	log.Info("Workers stopped successfully",
		zap.Int("marker_count", engine.MarkerCount()))
}
