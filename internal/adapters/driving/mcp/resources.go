package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for inpsheet resources.
const uriScheme = "inp://"

// registerResources registers all resource handlers with the MCP server.
// Resources read from the most recently loaded report.
func (s *Server) registerResources() {
	// Static resource for the section listing.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sections",
		Name:        "sections",
		Description: "Sections of the currently loaded report",
		MIMEType:    "application/json",
	}, s.handleSectionsResource)

	// Template for individual sections.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "section/{name}",
		Name:        "section",
		Description: "One parsed section of the currently loaded report",
		MIMEType:    "application/json",
	}, s.handleSectionResource)

	// Static resource for the text summary.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "summary",
		Name:        "summary",
		Description: "Human-readable summary of the currently loaded report",
		MIMEType:    "text/plain",
	}, s.handleSummaryResource)
}

// handleSectionsResource returns the section listing.
func (s *Server) handleSectionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	network, err := s.loaded()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(network.SectionNames())
	if err != nil {
		return nil, fmt.Errorf("marshalling sections: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleSectionResource returns one section's rows.
func (s *Server) handleSectionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	network, err := s.loaded()
	if err != nil {
		return nil, err
	}

	name := strings.TrimPrefix(req.Params.URI, uriScheme+"section/")
	data, err := json.Marshal(tableOutput(network.Section(name)))
	if err != nil {
		return nil, fmt.Errorf("marshalling section %s: %w", name, err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleSummaryResource returns the report summary text.
func (s *Server) handleSummaryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	network, err := s.loaded()
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     network.Summary(),
		}},
	}, nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}
