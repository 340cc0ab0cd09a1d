package http

import (
	"context"
	"time"

	"github.com/accessibility-map/internal/config"
	"github.com/accessibility-map/internal/delivery/http/handler"
	"github.com/accessibility-map/internal/delivery/http/middleware"
	"github.com/accessibility-map/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	authHandler     *handler.AuthHandler
	pointHandler    *handler.PointHandler
	reportHandler   *handler.ReportHandler
	summaryHandler  *handler.SummaryHandler
	mapStateHandler *handler.MapStateHandler

	authUC *usecase.AuthUseCase
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	pointHandler *handler.PointHandler,
	reportHandler *handler.ReportHandler,
	summaryHandler *handler.SummaryHandler,
	mapStateHandler *handler.MapStateHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Accessibility Map Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		authHandler:     authHandler,
		pointHandler:    pointHandler,
		reportHandler:   reportHandler,
		summaryHandler:  summaryHandler,
		mapStateHandler: mapStateHandler,
		authUC:          authUC,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth routes
	api.Post("/auth/anonymous", s.authHandler.SignInAnonymously)
	api.Get("/auth/me", middleware.Auth(s.authUC, s.logger), s.authHandler.Me)

	// Point routes
	api.Get("/points", s.pointHandler.List)
	api.Get("/points/:id", s.pointHandler.GetByID)

	// Report routes - требуют идентичности
	reports := api.Group("/reports", middleware.Auth(s.authUC, s.logger))
	reports.Post("/", s.reportHandler.Submit)
	reports.Get("/", s.reportHandler.ListMine)

	// Area summary
	api.Get("/summary", s.summaryHandler.Get)

	// Debug routes - серверная сессия карты
	debug := api.Group("/debug")
	debug.Get("/map/state", s.mapStateHandler.GetState)
	debug.Post("/map/theme", s.mapStateHandler.SetTheme)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
