package api

import (
	"fmt"
	"time"

	"github.com/bilgisen/newsapi/internal/logger"
	"github.com/bilgisen/newsapi/internal/metrics"
	"github.com/bilgisen/newsapi/internal/middleware"
	"github.com/bilgisen/newsapi/internal/models"
	"github.com/bilgisen/newsapi/internal/provider"
	"github.com/bilgisen/newsapi/internal/store"
	"github.com/gofiber/fiber/v2"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// HealthCheck handles the /health endpoint
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// StoreHandlers serve the mutable news list.
type StoreHandlers struct {
	store   store.Store
	metrics *metrics.Metrics
}

func NewStoreHandlers(s store.Store, m *metrics.Metrics) *StoreHandlers {
	return &StoreHandlers{store: s, metrics: m}
}

// ListNews handles GET /news
func (h *StoreHandlers) ListNews(c *fiber.Ctx) error {
	news, err := h.store.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("failed to list news: %w", err)
	}
	return c.JSON(news)
}

// AddNews handles POST /news. The body has already been validated.
func (h *StoreHandlers) AddNews(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.ValidatedKey).(*models.NewsItemRequest)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "missing validated body")
	}

	item, err := h.store.Add(c.UserContext(), req.ToNewsItem())
	if err != nil {
		return fmt.Errorf("failed to add news: %w", err)
	}

	if h.metrics != nil {
		h.metrics.ItemsAdded.Inc()
	}
	logger.Get().Info().
		Str("title", item.Title).
		Str("url", item.URL).
		Int("total", h.store.Len()).
		Msg("News item stored")

	return c.JSON(item)
}

// FeedHandlers serve the provider-backed news list.
type FeedHandlers struct {
	provider provider.Provider
}

func NewFeedHandlers(p provider.Provider) *FeedHandlers {
	return &FeedHandlers{provider: p}
}

// GetNews handles GET /news
func (h *FeedHandlers) GetNews(c *fiber.Ctx) error {
	news, err := h.provider.RelevantNews(c.UserContext())
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error getting relevant news")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to get news")
	}
	if news == nil {
		news = []models.NewsItem{}
	}
	return c.JSON(news)
}
