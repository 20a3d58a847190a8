package driven

import (
	"context"

	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
)

// SearchGateway is the thin wrapper around the web-search provider's HTTP
// API. Implementations translate the mode into the provider's request shape
// and surface any non-2xx response as an error carrying the status code and
// raw body text.
type SearchGateway interface {
	// Search runs one search request. The returned response is treated as
	// opaque by the dispatch layer.
	Search(ctx context.Context, query string, mode domain.SearchMode) (*domain.SearchResponse, error)

	// Close releases resources.
	Close() error
}
