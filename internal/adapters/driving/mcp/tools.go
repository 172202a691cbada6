package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-docparse/internal/core/domain"
	"github.com/custodia-labs/sercha-docparse/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-docparse/internal/core/services"
	"github.com/custodia-labs/sercha-docparse/internal/logger"
)

// ParseFileInput is the input schema for the parse_file tool.
type ParseFileInput struct {
	Path     string `json:"path" jsonschema:"path of the local file to parse"`
	MIMEType string `json:"mime_type,omitempty" jsonschema:"declared MIME type, detected from the file when empty"`
	MaxChars int    `json:"max_chars,omitempty" jsonschema:"maximum characters of document text to return"`
}

// ReadDriveFileInput is the input schema for the read_drive_file tool.
type ReadDriveFileInput struct {
	FileID   string `json:"file_id" jsonschema:"the Google Drive file ID"`
	MaxChars int    `json:"max_chars,omitempty" jsonschema:"maximum characters of document text to return"`
}

// ParseOutput is the structured output of both tools.
type ParseOutput struct {
	FileName   string `json:"file_name"`
	MIMEType   string `json:"mime_type"`
	Format     string `json:"format"`
	ChunkCount int    `json:"chunk_count"`
	Error      string `json:"error,omitempty"`
	Text       string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_file",
		Description: "Extract the text of a local document (PDF, Word, spreadsheet, presentation or plain text)",
	}, s.handleParseFile)

	if s.ports.Drive != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "read_drive_file",
			Description: "Download a Google Drive file by ID and extract its text",
		}, s.handleReadDriveFile)
	}
}

// handleParseFile handles the parse_file tool invocation.
func (s *Server) handleParseFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseFileInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, ParseOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	raw, err := fetch(ctx, s.ports.Files, input.Path)
	if err != nil {
		return nil, ParseOutput{}, err
	}
	if input.MIMEType != "" {
		raw.MIMEType = input.MIMEType
	}

	return s.parse(raw, input.MaxChars)
}

// handleReadDriveFile handles the read_drive_file tool invocation.
func (s *Server) handleReadDriveFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadDriveFileInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	if s.ports.Drive == nil {
		return nil, ParseOutput{}, fmt.Errorf("%w: google drive is not configured", domain.ErrInvalidInput)
	}

	raw, err := fetch(ctx, s.ports.Drive, input.FileID)
	if err != nil {
		return nil, ParseOutput{}, err
	}

	return s.parse(raw, input.MaxChars)
}

func fetch(ctx context.Context, fetcher driven.FileFetcher, id string) (domain.RawFile, error) {
	raw, err := fetcher.Fetch(ctx, id)
	if err != nil {
		logger.Warn("mcp: %s fetch of '%s' failed: %v", fetcher.Name(), id, err)
		return domain.RawFile{}, err
	}
	return raw, nil
}

// parse runs the parser and renders the result under the text budget.
func (s *Server) parse(raw domain.RawFile, maxChars int) (*mcp.CallToolResult, ParseOutput, error) {
	if maxChars <= 0 {
		maxChars = s.ports.MaxChars
	}

	doc := s.ports.Parser.Parse(raw)
	format, _ := doc.Meta(domain.MetaFormat)

	output := ParseOutput{
		FileName:   doc.FileName(),
		MIMEType:   doc.MIMEType(),
		Format:     format,
		ChunkCount: doc.ChunkCount(),
		Error:      doc.ErrorMessage(),
		Text:       services.Truncate(doc.FullText(), maxChars),
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: services.RenderForTool(doc, maxChars)},
		},
	}
	return result, output, nil
}
