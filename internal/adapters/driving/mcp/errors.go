// Package mcp provides an MCP (Model Context Protocol) server adapter for docparse.
// It lets AI assistants parse local files and Google Drive files into
// bounded text through tool calls.
package mcp

import "errors"

var (
	// ErrMissingParser is returned when the document parser is not provided.
	ErrMissingParser = errors.New("mcp: document parser is required")

	// ErrMissingFileFetcher is returned when the local file fetcher is not provided.
	ErrMissingFileFetcher = errors.New("mcp: file fetcher is required")
)
