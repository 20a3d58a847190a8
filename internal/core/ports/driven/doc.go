// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchGateway: The one outbound HTTP call, to the web-search provider
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - HistoryStore: Session search history. Without it, the recent-searches
//     query returns nothing and search commands still work.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
