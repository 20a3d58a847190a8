package services

import (
	"github.com/custodia-labs/lookfar-cli/internal/core/bus"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
)

// Ensure the dispatchers satisfy the UI-facing bus contracts.
var (
	_ driving.CommandBus = (*bus.Dispatcher)(nil)
	_ driving.QueryBus   = (*bus.Dispatcher)(nil)
)

// Container is the composition root: one command dispatcher and one query
// dispatcher with every known handler registered at construction time.
//
// There is deliberately no package-level instance and no getInstance
// accessor. main composes a Container once and injects it into the UI
// shells; tests compose fresh ones.
type Container struct {
	commands *bus.Dispatcher
	queries  *bus.Dispatcher
}

// NewContainer wires all handlers onto fresh dispatchers.
// The history parameter is optional (can be nil).
func NewContainer(gateway driven.SearchGateway, history driven.HistoryStore) *Container {
	c := &Container{
		commands: bus.NewDispatcher(bus.KindCommand),
		queries:  bus.NewDispatcher(bus.KindQuery),
	}

	bus.RegisterHandler(c.commands, driving.OpWebSearch, NewSearchHandler(gateway, history))
	bus.RegisterHandler(c.queries, driving.OpRecentSearches, NewRecentSearchesHandler(history))

	return c
}

// Commands returns the command-side bus.
func (c *Container) Commands() driving.CommandBus {
	return c.commands
}

// Queries returns the query-side bus.
func (c *Container) Queries() driving.QueryBus {
	return c.queries
}
