package domain

const unknownDescription = "Unknown"

// SearchMode selects how much work the search provider performs for a query.
type SearchMode string

// Available search modes.
const (
	// ModeSearch is a quick lookup returning text-only results.
	ModeSearch SearchMode = "search"

	// ModeResearch is a deeper crawl returning more results with
	// highlights and summaries.
	ModeResearch SearchMode = "research"
)

// IsValid returns true if the search mode is recognised.
func (m SearchMode) IsValid() bool {
	switch m {
	case ModeSearch, ModeResearch:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m SearchMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m SearchMode) Description() string {
	switch m {
	case ModeSearch:
		return "Search (quick, top results)"
	case ModeResearch:
		return "Research (deep, highlights + summaries)"
	default:
		return unknownDescription
	}
}

// Toggle returns the other mode. Used by the mode picker.
func (m SearchMode) Toggle() SearchMode {
	if m == ModeResearch {
		return ModeSearch
	}
	return ModeResearch
}
