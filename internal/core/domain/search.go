package domain

import "time"

// SearchResult represents a single hit returned by the search provider.
type SearchResult struct {
	// ID is the provider's identifier for the result.
	ID string `json:"id"`

	// Title is the page title.
	Title string `json:"title"`

	// URL is the page address.
	URL string `json:"url"`

	// PublishedDate is the publication date, when the provider knows it.
	PublishedDate string `json:"publishedDate,omitempty"`

	// Author is the page author, when known.
	Author string `json:"author,omitempty"`

	// Text is the extracted page text.
	Text string `json:"text,omitempty"`

	// Highlights contains snippets relevant to the query (research mode).
	Highlights []string `json:"highlights,omitempty"`

	// Summary is a provider-generated summary (research mode).
	Summary string `json:"summary,omitempty"`

	// Score is the relevance score.
	Score float64 `json:"score,omitempty"`

	// Image is a representative image URL, when available.
	Image string `json:"image,omitempty"`
}

// Snippet returns the best short preview text for a result: the first
// highlight, then the summary, then the leading page text.
func (r SearchResult) Snippet() string {
	if len(r.Highlights) > 0 {
		return r.Highlights[0]
	}
	if r.Summary != "" {
		return r.Summary
	}
	return r.Text
}

// CostBreakdown reports what the provider charged for a request.
type CostBreakdown struct {
	Total float64 `json:"total"`
}

// SearchResponse is the full provider response for one search request.
// The dispatch layer treats it as an opaque payload.
type SearchResponse struct {
	// RequestID is the provider's identifier for the request.
	RequestID string `json:"requestId"`

	// Results is the ranked result list.
	Results []SearchResult `json:"results"`

	// SearchType echoes the request type the provider resolved to.
	SearchType string `json:"searchType,omitempty"`

	// CostDollars reports the request cost, when the provider returns it.
	CostDollars *CostBreakdown `json:"costDollars,omitempty"`
}

// HistoryEntry records one completed search of the current session.
type HistoryEntry struct {
	// Query is the text that was searched.
	Query string

	// Mode is the mode the search ran in.
	Mode SearchMode

	// ResultCount is how many results came back.
	ResultCount int

	// SearchedAt is when the search completed.
	SearchedAt time.Time
}
