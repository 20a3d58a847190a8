// Package tui provides an interactive terminal user interface for lookfar.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/lookfar-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Commands dispatches state-changing operations such as web searches.
	Commands driving.CommandBus

	// Queries dispatches read operations such as the session history.
	Queries driving.QueryBus
}

// NewPorts creates a new Ports aggregate with the given buses.
func NewPorts(commands driving.CommandBus, queries driving.QueryBus) *Ports {
	return &Ports{
		Commands: commands,
		Queries:  queries,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Commands == nil {
		return ErrMissingCommandBus
	}
	if p.Queries == nil {
		return ErrMissingQueryBus
	}
	return nil
}
