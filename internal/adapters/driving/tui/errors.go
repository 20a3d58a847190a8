package tui

import "errors"

// ErrMissingCommandBus is returned when the command bus is not provided.
var ErrMissingCommandBus = errors.New("tui: command bus is required")

// ErrMissingQueryBus is returned when the query bus is not provided.
var ErrMissingQueryBus = errors.New("tui: query bus is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
