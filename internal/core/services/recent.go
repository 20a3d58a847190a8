package services

import (
	"context"

	"github.com/custodia-labs/lookfar-cli/internal/core/bus"
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

// DefaultRecentLimit is used when a query asks for a non-positive number of
// entries.
const DefaultRecentLimit = 10

// Ensure RecentSearchesHandler implements the handler contract.
var _ bus.Handler[domain.RecentSearchesQuery, []domain.HistoryEntry] = (*RecentSearchesHandler)(nil)

// RecentSearchesHandler answers read-only queries for this session's search
// history, newest first.
type RecentSearchesHandler struct {
	history driven.HistoryStore
}

// NewRecentSearchesHandler creates a recent-searches handler.
// The history parameter is optional (can be nil).
func NewRecentSearchesHandler(history driven.HistoryStore) *RecentSearchesHandler {
	return &RecentSearchesHandler{history: history}
}

// Handle returns up to q.Limit history entries.
func (h *RecentSearchesHandler) Handle(_ context.Context, q domain.RecentSearchesQuery) result.Result[[]domain.HistoryEntry] {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	if h.history == nil {
		return result.Ok([]domain.HistoryEntry{})
	}
	return result.Ok(h.history.Recent(limit))
}
