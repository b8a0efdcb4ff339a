// Package server contains the HTTP handlers and wiring for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"mechmate/internal/cache"
	"mechmate/internal/config"
	"mechmate/internal/database"
	"mechmate/internal/middleware"
	"mechmate/internal/repository"
	"mechmate/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	vehicleRepo    repository.VehicleRepository
	logRepo        repository.RepairLogRepository
	vehicleService *service.VehicleService
	logService     *service.RepairLogService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	logRepo := repository.NewRepairLogRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("mechmate-api"),
		userRepo:       userRepo,
		vehicleRepo:    vehicleRepo,
		logRepo:        logRepo,
	}
	server.vehicleService = service.NewVehicleService(vehicleRepo)
	server.logService = service.NewRepairLogService(logRepo, vehicleRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health and public info pages
	app.Get("/health", s.HealthCheck)
	api.Get("/", s.HealthCheck)
	api.Get("/about", s.About)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "MechMate Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", middleware.AuthRequired, s.Logout)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Catalog routes feeding the cascading make/model/year dropdowns
	catalog := protected.Group("/catalog")
	catalog.Get("/makes", s.GetMakes)
	catalog.Get("/models/:make", s.GetModels)
	catalog.Get("/years/:make/:model", s.GetYears)

	// Vehicle routes
	vehicles := protected.Group("/vehicles")
	vehicles.Get("/", s.Dashboard)
	vehicles.Post("/", s.CreateVehicle)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	vehicles.Get("/:id/logs", s.GetLogs)
	vehicles.Post("/:id/logs", s.CreateLog)
	vehicles.Put("/:id/logs/:logId", s.UpdateLog)
	vehicles.Delete("/:id/logs/:logId", s.DeleteLog)
	vehicles.Get("/:id", s.GetVehicle)
	vehicles.Put("/:id", s.UpdateVehicle)
	vehicles.Delete("/:id", s.DeleteVehicle)
}

// HealthCheck reports service liveness.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "mechmate",
		"version": "1.0.0",
	})
}

// About is the public info page.
func (s *Server) About(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "MechMate",
		"description": "Track your vehicles and their repair history in one place.",
	})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	_ = ctx

	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return nil
}
