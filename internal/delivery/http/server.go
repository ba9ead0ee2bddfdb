package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/midway/midway-backend/internal/config"
	"github.com/midway/midway-backend/internal/delivery/http/handler"
	"github.com/midway/midway-backend/internal/delivery/http/middleware"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/token"
	"go.uber.org/zap"
)

// HealthChecker - dependency that can report liveness
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP server built on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	tokens    *token.Manager
	rateLimit repository.RateLimitRepository

	// Handlers
	venueHandler  *handler.VenueHandler
	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	friendHandler *handler.FriendHandler
	groupHandler  *handler.GroupHandler

	// Health check targets
	db    HealthChecker
	cache HealthChecker
}

// NewServer - create the HTTP server with routes and middleware configured
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *token.Manager,
	rateLimit repository.RateLimitRepository,
	venueHandler *handler.VenueHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	friendHandler *handler.FriendHandler,
	groupHandler *handler.GroupHandler,
	db HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Midway Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		tokens:        tokens,
		rateLimit:     rateLimit,
		venueHandler:  venueHandler,
		authHandler:   authHandler,
		userHandler:   userHandler,
		friendHandler: friendHandler,
		groupHandler:  groupHandler,
		db:            db,
		cache:         cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - global middleware chain
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if s.config.RateLimit.Enabled {
		s.app.Use(middleware.RateLimit(&s.config.RateLimit, s.rateLimit, s.logger))
	}
}

// setupRoutes - route table
func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	// Venue search, open to anonymous callers
	api.Post("/venues/search", s.venueHandler.Search)
	api.Get("/stats", s.venueHandler.Stats)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", s.authHandler.Register)
	auth.Post("/login", s.authHandler.Login)

	// Everything below requires a valid token
	authed := api.Use(middleware.Auth(s.tokens))

	// Users
	authed.Get("/users", s.userHandler.List)
	authed.Get("/users/:id", s.userHandler.Get)
	authed.Put("/users/:id", s.userHandler.Update)
	authed.Delete("/users/:id", s.userHandler.Delete)

	// Friends
	authed.Post("/friends/request", s.friendHandler.SendRequest)
	authed.Put("/friends/request/:id", s.friendHandler.Respond)
	authed.Get("/friends/list", s.friendHandler.List)
	authed.Get("/friends/requests/pending", s.friendHandler.ListPending)
	authed.Delete("/friends/:id", s.friendHandler.Remove)

	// Groups and meetups
	authed.Post("/groups", s.groupHandler.Create)
	authed.Get("/groups/my-groups", s.groupHandler.MyGroups)
	authed.Get("/groups/:id", s.groupHandler.Get)
	authed.Post("/groups/:id/members", s.groupHandler.AddMember)
	authed.Delete("/groups/:id/members/:userId", s.groupHandler.RemoveMember)
	authed.Post("/groups/:id/meetups", s.groupHandler.CreateMeetup)
	authed.Get("/groups/:id/meetups", s.groupHandler.ListMeetups)
	authed.Post("/groups/:id/venues/search", s.groupHandler.SearchVenues)
}

// health - liveness of the server and its backing stores
func (s *Server) health(c *fiber.Ctx) error {
	status := fiber.StatusOK
	checks := fiber.Map{}

	if err := s.db.Health(c.Context()); err != nil {
		checks["database"] = err.Error()
		status = fiber.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if err := s.cache.Health(c.Context()); err != nil {
		checks["cache"] = err.Error()
		status = fiber.StatusServiceUnavailable
	} else {
		checks["cache"] = "ok"
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start - begin listening on the configured address
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - fallback handler for errors Fiber surfaces itself
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
