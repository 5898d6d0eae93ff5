package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/inp"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

// Ensure NetworkService implements the interface.
var _ driving.NetworkService = (*NetworkService)(nil)

// NetworkService loads and parses .inp report files.
type NetworkService struct {
	parser *inp.Parser
}

// NewNetworkService creates a network service with the given parser
// options.
func NewNetworkService(opts inp.Options) (*NetworkService, error) {
	parser, err := inp.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}
	return &NetworkService{parser: parser}, nil
}

// Load reads and parses the report file at path.
func (s *NetworkService) Load(ctx context.Context, path string) (*domain.ParsedNetwork, error) {
	if !strings.EqualFold(filepath.Ext(path), ".inp") {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, path)
	}

	logger.Debug("loading report file %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	network, err := s.Parse(ctx, string(data))
	if err != nil {
		return nil, err
	}
	network.Path = path
	return network, nil
}

// Parse parses already-loaded report content.
func (s *NetworkService) Parse(_ context.Context, content string) (*domain.ParsedNetwork, error) {
	logger.Section("Report Parsing")
	network := s.parser.Parse(content)
	network.ID = uuid.New().String()

	if network.IsEmpty() {
		logger.Warn("no recognizable sections found")
	} else {
		logger.Info("parsed %d sections (%d recognized, %d dropped, %d rows)",
			network.Stats.Sections, network.Stats.Recognized,
			network.Stats.Dropped, network.Stats.Rows)
	}
	return network, nil
}
