// Package services implements the handlers behind the command and query
// buses, and the composition root that wires them.
//
// Services contain the core business logic and orchestrate calls to driven
// ports (adapters). Handlers never let an error escape as a panic; every
// outcome is a result.Result.
package services
