// Package domain defines the core business entities for inpsheet.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawSection: A labelled block of lines cut from the source file
//   - Table / Record / Value: Unit-annotated tabular data
//   - ElevationSummary: Per-pipe statistics derived from elevation profiles
//   - ParsedNetwork: The immutable section store built by one parse
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
