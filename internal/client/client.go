package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bilgisen/newsapi/internal/models"
	"github.com/go-resty/resty/v2"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// Client talks to a newsapi or newsfeed server.
type Client struct {
	client *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				// Only reads are retried; POST /news is not idempotent
				if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
					return false
				}
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			}),
	}
}

// ListNews fetches GET /news
func (c *Client) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	var items []models.NewsItem

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get("/news")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	if items == nil {
		items = []models.NewsItem{}
	}
	return items, nil
}

// AddNews posts item to POST /news and returns the stored item
func (c *Client) AddNews(ctx context.Context, item models.NewsItem) (models.NewsItem, error) {
	var stored models.NewsItem

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(item).
		SetResult(&stored).
		Post("/news")
	if err != nil {
		return models.NewsItem{}, fmt.Errorf("failed to add news: %w", err)
	}
	if resp.IsError() {
		return models.NewsItem{}, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return stored, nil
}

// FilterByTitle keeps items whose title contains substr, ignoring case.
// An empty substr keeps everything.
func FilterByTitle(items []models.NewsItem, substr string) []models.NewsItem {
	if substr == "" {
		return items
	}

	needle := strings.ToLower(substr)
	out := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			out = append(out, item)
		}
	}
	return out
}
