// Package mcp provides an MCP (Model Context Protocol) server adapter
// for inpsheet. It lets AI assistants load .inp report files and query
// their parsed sections.
package mcp

import "errors"

// ErrMissingNetworkService is returned when the network service is not provided.
var ErrMissingNetworkService = errors.New("mcp: network service is required")

// ErrNoReportLoaded is returned when a resource is read before any
// report has been loaded.
var ErrNoReportLoaded = errors.New("mcp: no report loaded")
