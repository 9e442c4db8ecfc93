package api

import (
	"strings"

	"github.com/bilgisen/newsapi/internal/metrics"
	"github.com/bilgisen/newsapi/internal/middleware"
	"github.com/bilgisen/newsapi/internal/models"
	"github.com/bilgisen/newsapi/internal/provider"
	"github.com/bilgisen/newsapi/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupStoreRoutes configures the mutable-list API
func SetupStoreRoutes(app *fiber.App, s store.Store, m *metrics.Metrics) {
	h := NewStoreHandlers(s, m)

	setupCommon(app, m)

	news := app.Group("/news")
	{
		news.Get("", h.ListNews)
		news.Post("", middleware.ValidateBody[models.NewsItemRequest](), h.AddNews)
	}

	app.Use(middleware.NotFound)
}

// SetupFeedRoutes configures the read-only feed API. Cross-origin requests
// are allowed from allowOrigins ("*" for any) with any method and header.
func SetupFeedRoutes(app *fiber.App, p provider.Provider, m *metrics.Metrics, allowOrigins string) {
	h := NewFeedHandlers(p)

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodHead, fiber.MethodPut,
			fiber.MethodDelete, fiber.MethodPatch, fiber.MethodOptions,
		}, ","),
		// Empty AllowHeaders reflects whatever the preflight asks for
		AllowHeaders: "",
	}))

	setupCommon(app, m)

	app.Get("/news", h.GetNews)

	app.Use(middleware.NotFound)
}

func setupCommon(app *fiber.App, m *metrics.Metrics) {
	if m != nil {
		app.Use(middleware.Metrics(m))
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}
	app.Get("/health", HealthCheck)
}
