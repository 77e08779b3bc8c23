// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - AdapterBuilder: Opens and fully parses one file format
//   - ConnectorFactory: Classifies a path and builds its Connector
//   - ConfigStore: Application configuration
//   - Watcher: File change notifications for the watch command
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or parser package
package driven
