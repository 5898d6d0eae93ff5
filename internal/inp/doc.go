// Package inp parses AFT/EPANET-style .inp report text into
// unit-annotated tables.
//
// A report is a sequence of sections delimited by marker lines of the
// form "*** Section Name ***". Each section kind has its own shape:
// key-value pipe detail blocks, per-pipe elevation profiles, columnar
// component tables (single- or multi-block), and per-equipment
// transient time series. The package splits the text into sections,
// classifies them, parses headers into unit-carrying column
// descriptors, parses rows into typed records, and derives per-pipe
// elevation statistics and network connectivity.
//
// Parsing is pure: the package performs no I/O and produces an
// immutable domain.ParsedNetwork. Malformed rows are skipped and
// counted, never fatal. A file with no recognizable markers parses to
// an empty store.
package inp
