package driving

import (
	"context"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// ReloadFunc is called with the freshly parsed network after each
// accepted change event.
type ReloadFunc func(network *domain.ParsedNetwork)

// WatchService re-parses a report file whenever it changes on disk.
type WatchService interface {
	// Watch blocks until ctx is cancelled, invoking fn after every
	// debounced change to the file at path. The file is parsed once
	// up front so fn always sees an initial state.
	Watch(ctx context.Context, path string, fn ReloadFunc) error
}
