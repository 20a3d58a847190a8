package search

import "errors"

// ErrNoCommandBus is returned when a search is attempted without a
// configured command bus.
var ErrNoCommandBus = errors.New("search: command bus not configured")
