// Package domain defines the core business entities for plugsite.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Plugin: A validated plugin catalogue entry
//   - Image: A screenshot or thumbnail attached to a plugin
//   - Architecture / OperatingSystem: Supported platform enums
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
