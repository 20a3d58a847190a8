package driven

import "github.com/custodia-labs/lookfar-cli/internal/core/domain"

// HistoryStore records the searches of the current session.
// Implementations are in-memory only; nothing is persisted across runs.
type HistoryStore interface {
	// Add records one completed search.
	Add(entry domain.HistoryEntry)

	// Recent returns up to limit entries, newest first.
	Recent(limit int) []domain.HistoryEntry
}
