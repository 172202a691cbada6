// Package domain defines the core entities for docparse.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawFile: Opaque bytes plus the metadata a collaborator supplied
//   - FormatKind: The classification of a RawFile
//   - ParsedDocument: The immutable result of parsing a RawFile
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
