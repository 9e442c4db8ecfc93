package models

// NewsItem is a single news record as exposed by the API.
// Field order matches the JSON key order: title, url, summary.
type NewsItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Summary string `json:"summary"`
}

// NewsItemRequest is the body accepted by POST /news.
// Pointer fields let a missing key be told apart from an empty string;
// "required" on a pointer only checks that the key was present.
type NewsItemRequest struct {
	Title   *string `json:"title" validate:"required"`
	URL     *string `json:"url" validate:"required"`
	Summary *string `json:"summary" validate:"required"`
}

// ToNewsItem converts a validated request into a NewsItem.
func (r NewsItemRequest) ToNewsItem() NewsItem {
	return NewsItem{
		Title:   deref(r.Title),
		URL:     deref(r.URL),
		Summary: deref(r.Summary),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
