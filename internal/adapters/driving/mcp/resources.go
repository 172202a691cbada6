package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for docparse resources.
	uriScheme = "docparse://"

	formatsURI = uriScheme + "formats"
)

// formatInfo is the JSON shape of one classification rule.
type formatInfo struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	MIMETypes   []string `json:"mime_types"`
	Extensions  []string `json:"extensions"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Formats == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         formatsURI,
		Name:        "formats",
		Description: "Supported document formats in classification order",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)
}

// handleFormatsResource returns the classification rules as JSON.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rules := s.ports.Formats.Rules()
	infos := make([]formatInfo, len(rules))
	for i, r := range rules {
		infos[i] = formatInfo{
			Kind:        string(r.Kind),
			Description: r.Kind.Description(),
			MIMETypes:   r.MIMETypes,
			Extensions:  r.Extensions,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling formats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
