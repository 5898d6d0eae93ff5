package mcp

import (
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Network loads and parses report files.
	Network driving.NetworkService

	// Export flattens parsed networks into sheets. Optional: without
	// it the export tool is not registered.
	Export driving.ExportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Network == nil {
		return ErrMissingNetworkService
	}
	return nil
}
