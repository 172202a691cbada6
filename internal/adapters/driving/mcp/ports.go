package mcp

import (
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driving"
)

// Ports aggregates the services required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parser turns fetched files into chunked documents.
	Parser driving.DocumentParser

	// Formats lists the classification rules. Optional.
	Formats driving.FormatCatalog

	// Files reads local files for the parse_file tool.
	Files driven.FileFetcher

	// Drive reads Google Drive files. When nil, read_drive_file is not offered.
	Drive driven.FileFetcher

	// MaxChars is the default text budget per tool result. Zero means no limit.
	MaxChars int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Parser == nil {
		return ErrMissingParser
	}
	if p.Files == nil {
		return ErrMissingFileFetcher
	}
	return nil
}
