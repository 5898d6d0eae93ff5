package mcp

import (
	"context"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/core/ports/driving"
	"github.com/hydraworks-labs/inpsheet-cli/internal/inp"
)

// mockNetworkService is a mock implementation of driving.NetworkService.
// It serves a canned parse result regardless of path.
type mockNetworkService struct {
	content string
	err     error
	loads   int
}

var _ driving.NetworkService = (*mockNetworkService)(nil)

func (m *mockNetworkService) Load(ctx context.Context, path string) (*domain.ParsedNetwork, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.loads++
	network, err := m.Parse(ctx, m.content)
	if err != nil {
		return nil, err
	}
	network.Path = path
	return network, nil
}

func (m *mockNetworkService) Parse(_ context.Context, content string) (*domain.ParsedNetwork, error) {
	p, err := inp.New(inp.Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(content), nil
}

const mockReport = `*** Pipe Elevations ***

P2 (Mainline)
Length Along Pipe    Length of Segment    Elevation
(feet)               (feet)               (feet)
0.00      10.00     2240.16
10.00     10.00     2248.0

*** Branch Table ***

Branch  Name
30      J84

*** Transient Data Table ***

J1 (Pump) Transient Data:

Time Data
Time    Speed (percent)
0.0     100.0
1.0     95.5
`
