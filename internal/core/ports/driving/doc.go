// Package driving defines interfaces that external actors (TUI, CLI) use
// to interact with the core. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// The only two entry points a presentation layer may use are the command
// bus and the query bus; implementations live in internal/core/services.
package driving
