// Package driving defines the interfaces through which external actors
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI, MCP server and TUI adapters call core services through these
// interfaces.
//
//   - NetworkService: load and parse .inp report files
//   - ExportService: flatten a parsed network into workbook sheets
//   - WatchService: re-parse a file when it changes on disk
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
