package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/lifeos-app/lifeos-backend/internal/config"
	"github.com/lifeos-app/lifeos-backend/internal/handler"
	"github.com/lifeos-app/lifeos-backend/internal/middleware"
	mongorepo "github.com/lifeos-app/lifeos-backend/internal/repository/mongo"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/lifeos-app/lifeos-backend/internal/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connectCancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from database")
		}
	}()

	// Verify database connection
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to database")

	db := client.Database(cfg.MongoDatabase)

	// Initialize repositories
	accountRepo := mongorepo.NewAccountRepository(db)
	accountTypeRepo := mongorepo.NewAccountTypeRepository(db)
	transactionRepo := mongorepo.NewTransactionRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)
	budgetRepo := mongorepo.NewBudgetRepository(db)
	goalRepo := mongorepo.NewGoalRepository(db)
	eventRepo := mongorepo.NewEventRepository(db)
	uow := mongorepo.NewUnitOfWork(client)

	// Initialize WebSocket hub
	hub := websocket.NewHub()

	// Initialize services
	accountService := service.NewAccountService(accountRepo)
	accountService.SetEventPublisher(hub)
	accountTypeService := service.NewAccountTypeService(accountTypeRepo)
	transactionService := service.NewTransactionService(transactionRepo, accountRepo, categoryRepo, uow)
	transactionService.SetEventPublisher(hub)
	categoryService := service.NewCategoryService(categoryRepo)
	budgetService := service.NewBudgetService(budgetRepo, transactionRepo)
	goalService := service.NewGoalService(goalRepo)
	eventService := service.NewEventService(eventRepo)
	dashboardService := service.NewDashboardService(accountRepo, transactionRepo)

	// Initialize handlers
	handlers := handler.Handlers{
		Account:     handler.NewAccountHandler(accountService),
		AccountType: handler.NewAccountTypeHandler(accountTypeService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Category:    handler.NewCategoryHandler(categoryService),
		Budget:      handler.NewBudgetHandler(budgetService),
		Goal:        handler.NewGoalHandler(goalService),
		Event:       handler.NewEventHandler(eventService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		WebSocket:   handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Rate limiting per client IP
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, middleware.DefaultBurstSize)
	defer rateLimiter.Stop()
	e.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
