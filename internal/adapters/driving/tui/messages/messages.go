// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/lookfar-cli/internal/core/domain"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SearchRequested is a command to perform a search.
type SearchRequested struct {
	Query string
	Mode  domain.SearchMode
}

// SearchCompleted carries the search response back to the model.
type SearchCompleted struct {
	Response *domain.SearchResponse
	Err      error
}

// ModeToggled is sent when the search mode is switched.
type ModeToggled struct {
	Mode domain.SearchMode
}

// HistoryLoaded carries the session's recent searches.
type HistoryLoaded struct {
	Entries []domain.HistoryEntry
	Err     error
}

// SearchReplay requests that a history entry is searched again.
type SearchReplay struct {
	Entry domain.HistoryEntry
}

// ResultSelected is sent when a search result is selected.
type ResultSelected struct {
	Index int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewRecent lists this session's searches.
	ViewRecent
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewRecent:
		return "recent"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
