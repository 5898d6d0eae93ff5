package driving

import (
	"context"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// NetworkService loads .inp report files and exposes the parsed result.
type NetworkService interface {
	// Load reads and parses the report file at path. A file without a
	// .inp extension returns domain.ErrUnsupportedFile; an unreadable
	// file returns the wrapped I/O error. A readable file always
	// parses, possibly into an empty network.
	Load(ctx context.Context, path string) (*domain.ParsedNetwork, error)

	// Parse parses already-loaded report content.
	Parse(ctx context.Context, content string) (*domain.ParsedNetwork, error)
}
