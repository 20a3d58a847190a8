// Package domain defines the core business entities for lookfar.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Envelope: Identity and creation time shared by every dispatched message
//   - WebSearchCommand: Intent to run a web search
//   - RecentSearchesQuery: Read-only request for session history
//   - SearchResponse / SearchResult: The provider's result payload
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library and github.com/google/uuid (message identifiers)
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
