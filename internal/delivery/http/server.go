package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/trip-planner/internal/config"
	"github.com/trip-planner/internal/delivery/http/handler"
	"github.com/trip-planner/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP front of the planner.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	catalogHandler    *handler.CatalogHandler
	planHandler       *handler.PlanHandler
	credentialHandler *handler.CredentialHandler
	sessionHandler    *handler.SessionHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	catalogHandler *handler.CatalogHandler,
	planHandler *handler.PlanHandler,
	credentialHandler *handler.CredentialHandler,
	sessionHandler *handler.SessionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Trip Planner Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		// Category path segments carry UTF-8 display names
		UnescapePath: true,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		catalogHandler:    catalogHandler,
		planHandler:       planHandler,
		credentialHandler: credentialHandler,
		sessionHandler:    sessionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

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

	// Catalog routes (the picker flow: home -> city -> category -> subcategory)
	api.Get("/cities", s.catalogHandler.ListCities)
	api.Get("/cities/:id", s.catalogHandler.GetCity)
	api.Get("/cities/:id/categories", s.catalogHandler.ListCategories)
	api.Get("/cities/:id/categories/:category/subcategories", s.catalogHandler.ListSubcategories)

	// Plan routes
	api.Post("/plans/generate", s.planHandler.Generate)
	api.Post("/plans/save", s.planHandler.Save)
	api.Get("/plans/saved", s.planHandler.ListSaved)

	// Credential routes
	api.Get("/credential", s.credentialHandler.Get)
	api.Put("/credential", s.credentialHandler.Set)
	api.Delete("/credential", s.credentialHandler.Delete)

	// Session state routes
	session := api.Group("/session")
	session.Get("/", s.sessionHandler.Get)
	session.Post("/selection", s.sessionHandler.UpdateSelection)
	session.Post("/restore", s.sessionHandler.Restore)
	session.Post("/reset", s.sessionHandler.Reset)
	session.Post("/history", s.sessionHandler.PushHistory)
	session.Post("/back", s.sessionHandler.NavigateBack)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

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
