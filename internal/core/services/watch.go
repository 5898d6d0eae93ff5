package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// defaultDebounce suppresses the event bursts editors produce when
// saving a file.
const defaultDebounce = 2 * time.Second

// WatchService re-parses a report file when it changes on disk.
type WatchService struct {
	networks driving.NetworkService
	debounce time.Duration
}

// NewWatchService creates a watch service backed by networks.
func NewWatchService(networks driving.NetworkService) *WatchService {
	return &WatchService{networks: networks, debounce: defaultDebounce}
}

// SetDebounce overrides the reload debounce interval.
func (s *WatchService) SetDebounce(d time.Duration) {
	s.debounce = d
}

// Watch blocks until ctx is cancelled, reloading the file after every
// debounced write or create event. The containing directory is watched
// rather than the file itself so the watch survives editors that
// replace the file on save.
func (s *WatchService) Watch(ctx context.Context, path string, fn driving.ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	network, err := s.networks.Load(ctx, abs)
	if err != nil {
		return err
	}
	fn(network)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	limiter := rate.NewLimiter(rate.Every(s.debounce), 1)
	logger.Debug("watching %s", abs)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				continue
			}

			network, err := s.networks.Load(ctx, abs)
			if err != nil {
				logger.Warn("reload failed: %v", err)
				continue
			}
			logger.Info("reloaded %s", abs)
			fn(network)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
