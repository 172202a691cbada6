// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the parser to function:
//
//   - Extractor: Turns the bytes of one format family into plain text
//   - ExtractorRegistry: Maps a FormatKind to its Extractor
//   - Chunker: Splits normalised text into overlapping windows
//
// # Optional Interfaces
//
// These are used by the outer surfaces (CLI, MCP) and never by the parser:
//
//   - FileFetcher: Retrieves a RawFile from local disk or a remote store
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or extractor package
package driven
