package services

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/lookfar-cli/internal/core/bus"
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lookfar-cli/internal/core/result"
	"github.com/custodia-labs/lookfar-cli/internal/logger"
)

// Ensure SearchHandler implements the handler contract.
var _ bus.Handler[domain.WebSearchCommand, *domain.SearchResponse] = (*SearchHandler)(nil)

// SearchHandler executes web search commands against the search gateway.
// It validates input before touching the network and records each completed
// search in the session history.
type SearchHandler struct {
	gateway driven.SearchGateway
	history driven.HistoryStore
}

// NewSearchHandler creates a search handler.
// The history parameter is optional (can be nil).
func NewSearchHandler(gateway driven.SearchGateway, history driven.HistoryStore) *SearchHandler {
	return &SearchHandler{
		gateway: gateway,
		history: history,
	}
}

// Handle runs one search. Every failure mode - empty query, unknown mode,
// network error, non-2xx response - comes back as a failure Result.
func (h *SearchHandler) Handle(ctx context.Context, cmd domain.WebSearchCommand) result.Result[*domain.SearchResponse] {
	query := strings.TrimSpace(cmd.Text)
	if query == "" {
		return result.Fail[*domain.SearchResponse](domain.ErrEmptyQuery.Error())
	}
	if !cmd.Mode.IsValid() {
		return result.Failf[*domain.SearchResponse]("%s: %q", domain.ErrUnknownMode, cmd.Mode)
	}

	logger.Section("Web Search")
	logger.Debug("Query: %q, mode: %s", query, cmd.Mode)

	resp, err := h.gateway.Search(ctx, query, cmd.Mode)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		return result.Failf[*domain.SearchResponse]("search: %v", err)
	}

	logger.Info("Search returned %d results", len(resp.Results))

	if h.history != nil {
		h.history.Add(domain.HistoryEntry{
			Query:       query,
			Mode:        cmd.Mode,
			ResultCount: len(resp.Results),
			SearchedAt:  time.Now().UTC(),
		})
	}

	return result.Ok(resp)
}
