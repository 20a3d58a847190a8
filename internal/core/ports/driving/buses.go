package driving

import (
	"context"

	"github.com/custodia-labs/lookfar-cli/internal/core/result"
)

// Operation names fixed at composition time. Callers pass these to the
// buses; handlers are registered under them in the composition root.
const (
	// OpWebSearch runs a web search (command side).
	OpWebSearch = "search.web"

	// OpRecentSearches lists this session's searches (query side).
	OpRecentSearches = "search.recent"
)

// CommandBus executes commands: intents to perform an operation, possibly
// with side effects. Every path terminates in a Result; Execute never panics.
type CommandBus interface {
	Execute(ctx context.Context, name string, command any) result.Result[any]
}

// QueryBus executes queries: read-only requests for data. Every path
// terminates in a Result; Execute never panics.
type QueryBus interface {
	Execute(ctx context.Context, name string, query any) result.Result[any]
}
