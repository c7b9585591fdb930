package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"topiclens/internal/classifier"
	"topiclens/internal/db"
	"topiclens/internal/handlers"
	"topiclens/internal/handlers/api"
	"topiclens/internal/jobs"
	"topiclens/internal/middleware"
	"topiclens/internal/models"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, svc *classifier.Service, monitor *jobs.Monitor, cacheEnabled bool) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(database)

	// Initialize handlers
	extractHandler := handlers.NewExtractHandler(svc, database, s.Cfg)
	historyHandler := handlers.NewHistoryHandler(database, s.Cfg)
	probeHandler := handlers.NewProbeHandler(database)
	apiExtractHandler := api.NewExtractHandler(svc)
	apiStatusHandler := api.NewStatusHandler(database, monitor, cacheEnabled)

	// Auth routes - only when OIDC is configured; the app works anonymously
	// without it.
	if s.Cfg.IsOIDCEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
		if err != nil {
			return err
		}

		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
		s.App.Get("/login", func(c fiber.Ctx) error {
			return c.Render("login", handlers.MergeBranding(fiber.Map{}, s.Cfg))
		})
		s.App.Get("/account", authMiddleware.RequireAuth, func(c fiber.Ctx) error {
			user, _ := c.Locals("user").(*models.User)
			return c.Render("account", handlers.MergeBranding(fiber.Map{
				"User": user,
			}, s.Cfg))
		})
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Frontend routes
	s.App.Get("/", authMiddleware.OptionalAuth, extractHandler.Index)
	s.App.Post("/extract", authMiddleware.OptionalAuth, extractHandler.Extract)
	s.App.Get("/history", authMiddleware.OptionalAuth, historyHandler.Show)

	// JSON API routes
	s.App.Post("/api/extract_keywords", apiExtractHandler.Extract)
	s.App.Get("/api/status", apiStatusHandler.Status)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
