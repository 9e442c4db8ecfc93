package provider

import (
	"context"

	"github.com/bilgisen/newsapi/internal/models"
)

// Provider supplies the list of relevant news served by the feed server.
type Provider interface {
	RelevantNews(ctx context.Context) ([]models.NewsItem, error)
}

// Static returns the same fixed list on every call.
type Static struct {
	items []models.NewsItem
}

// NewStatic creates a Static provider over items. With no items it falls back
// to the built-in sample list.
func NewStatic(items ...models.NewsItem) *Static {
	if len(items) == 0 {
		items = SampleNews
	}
	return &Static{items: append([]models.NewsItem(nil), items...)}
}

// RelevantNews returns a fresh copy of the fixed list. It never fails.
func (s *Static) RelevantNews(ctx context.Context) ([]models.NewsItem, error) {
	out := make([]models.NewsItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// SampleNews is placeholder data; its length is not part of the API.
var SampleNews = []models.NewsItem{
	{
		Title:   "Central bank holds interest rates steady",
		URL:     "https://example.com/news/central-bank-rates",
		Summary: "Policymakers kept the benchmark rate unchanged and signalled a cautious outlook.",
	},
	{
		Title:   "City council approves new bike lanes",
		URL:     "https://example.com/news/bike-lanes",
		Summary: "The plan adds forty kilometres of protected lanes over the next two years.",
	},
	{
		Title:   "Open-source database reaches 2.0",
		URL:     "https://example.com/news/database-2-0",
		Summary: "The release brings a new query planner and faster replication.",
	},
	{
		Title:   "Heatwave expected across the region",
		URL:     "https://example.com/news/heatwave",
		Summary: "Forecasters warn of temperatures above 38 degrees through the weekend.",
	},
	{
		Title:   "Local team wins championship final",
		URL:     "https://example.com/news/championship-final",
		Summary: "A late goal sealed the title in front of a sold-out stadium.",
	},
	{
		Title:   "Museum reopens after renovation",
		URL:     "https://example.com/news/museum-reopens",
		Summary: "Visitors can explore three new galleries and a restored main hall.",
	},
}
