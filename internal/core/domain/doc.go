// Package domain defines the core entities for parsely.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Format: The tagged variant selecting a file adapter
//   - Document: A fully parsed file, either a value tree or an element tree
//   - Connector: A read-only handle owning one parsed Document
//   - Person, Donut: Records extracted by the report service
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
