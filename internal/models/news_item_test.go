package models

import (
	"encoding/json"
	"testing"
)

func TestNewsItemJSONKeys(t *testing.T) {
	item := NewsItem{
		Title:   "Test News",
		URL:     "https://test.com",
		Summary: "Test summary",
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Failed to marshal NewsItem: %v", err)
	}

	// Keys must come out in declaration order
	expected := `{"title":"Test News","url":"https://test.com","summary":"Test summary"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestNewsItemRequestToNewsItem(t *testing.T) {
	var req NewsItemRequest
	if err := json.Unmarshal([]byte(`{"title":"T","url":"","summary":"S"}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}

	if req.URL == nil {
		t.Fatal("Expected url to be present even though it is empty")
	}

	item := req.ToNewsItem()
	if item.Title != "T" || item.URL != "" || item.Summary != "S" {
		t.Errorf("Unexpected conversion result: %+v", item)
	}
}

func TestNewsItemRequestMissingField(t *testing.T) {
	var req NewsItemRequest
	if err := json.Unmarshal([]byte(`{"title":"T"}`), &req); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}

	if req.URL != nil || req.Summary != nil {
		t.Errorf("Expected missing fields to stay nil, got %+v", req)
	}

	if got := req.ToNewsItem(); got.URL != "" || got.Summary != "" {
		t.Errorf("Expected empty strings for missing fields, got %+v", got)
	}
}
