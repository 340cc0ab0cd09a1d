package main

// @title Accessibility Map Service API
// @version 1.0.0
// @description Сервис общественной карты доступности. Принимает отчёты о барьерах, помощниках и доступных местах, отдаёт точки по слоям и генерирует natural-language сводку по району.
// @description
// @description Основные возможности:
// @description - Анонимная аутентификация (JWT)
// @description - Точки доступности по категориям с фильтрацией слоёв
// @description - Приём пользовательских отчётов с публикацией в живую ленту
// @description - Natural-language сводка по району с кешированием
// @description - Отладочный snapshot состояния карты

// @contact.name API Support
// @contact.email support@accessibility-map.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/accessibility-map/docs"
	"github.com/accessibility-map/internal/config"
	httpDelivery "github.com/accessibility-map/internal/delivery/http"
	"github.com/accessibility-map/internal/delivery/http/handler"
	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/infrastructure/gemini"
	"github.com/accessibility-map/internal/mapsync"
	"github.com/accessibility-map/internal/pkg/auth"
	"github.com/accessibility-map/internal/pkg/logger"
	"github.com/accessibility-map/internal/repository/cache"
	"github.com/accessibility-map/internal/repository/postgres"
	redisRepo "github.com/accessibility-map/internal/repository/redis"
	"github.com/accessibility-map/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Accessibility Map Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	pointRepo := postgres.NewPointRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	summaryRepo := gemini.NewSummarizerClient(&cfg.Summarizer, log)

	log.Info("Repositories initialized")

	// 7. Initialize map session (virtual provider: сервер держит
	// образцовое состояние карты, доступное через debug endpoints)
	provider := mapsync.NewVirtualProvider()
	engine := mapsync.NewEngine(provider, log)
	view := mapsync.NewView()
	session := mapsync.NewSession(engine, view, log)

	center := domain.Coordinates{Lat: cfg.Map.CenterLat, Lon: cfg.Map.CenterLon}
	theme := mapsync.ParseTheme(cfg.Map.DefaultTheme)
	if err := session.Start(ctx, "server-map", center, cfg.Map.Zoom, theme); err != nil {
		log.Fatal("Failed to start map session", zap.Error(err))
	}

	log.Info("Map session initialized",
		zap.Float64("center_lat", center.Lat),
		zap.Float64("center_lon", center.Lon),
		zap.Int("zoom", cfg.Map.Zoom),
	)

	// 8. Initialize Use Cases
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	authUC := usecase.NewAuthUseCase(jwtManager, log)
	pointUC := usecase.NewPointUseCase(pointRepo, log)
	reportUC := usecase.NewReportUseCase(reportRepo, streamRepo, log)
	summaryUC := usecase.NewSummaryUseCase(
		pointUC,
		summaryRepo,
		cacheRepo,
		log,
		cfg.Cache.SummaryCacheTTL,
	)
	mapStateUC := usecase.NewMapStateUseCase(pointUC, session, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	pointHandler := handler.NewPointHandler(pointUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	summaryHandler := handler.NewSummaryHandler(summaryUC, log)
	mapStateHandler := handler.NewMapStateHandler(mapStateUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		authHandler,
		pointHandler,
		reportHandler,
		summaryHandler,
		mapStateHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
