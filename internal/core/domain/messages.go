package domain

// WebSearchCommand is the intent to run one web search. It is constructed by
// a UI shell at the moment of user action, dispatched once, and discarded.
type WebSearchCommand struct {
	Envelope

	// Text is the free-text query.
	Text string

	// Mode selects the provider request shape.
	Mode SearchMode
}

// NewWebSearchCommand builds a web search command with a fresh envelope.
func NewWebSearchCommand(text string, mode SearchMode) WebSearchCommand {
	return WebSearchCommand{
		Envelope: NewEnvelope(),
		Text:     text,
		Mode:     mode,
	}
}

// RecentSearchesQuery is a read-only request for the most recent searches of
// this session.
type RecentSearchesQuery struct {
	Envelope

	// Limit is the maximum number of entries to return.
	// Non-positive values fall back to the handler default.
	Limit int
}

// NewRecentSearchesQuery builds a recent-searches query with a fresh envelope.
func NewRecentSearchesQuery(limit int) RecentSearchesQuery {
	return RecentSearchesQuery{
		Envelope: NewEnvelope(),
		Limit:    limit,
	}
}
