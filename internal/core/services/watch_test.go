package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/inp"
)

func TestWatchService_InitialLoadAndCancel(t *testing.T) {
	networks, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)
	svc := NewWatchService(networks)

	path := writeReport(t, "model.inp", reportFixture)
	loaded := make(chan *domain.ParsedNetwork, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, path, func(n *domain.ParsedNetwork) {
			select {
			case loaded <- n:
			default:
			}
		})
	}()

	select {
	case n := <-loaded:
		assert.Contains(t, n.SectionNames(), "Branch_Table")
	case <-time.After(5 * time.Second):
		t.Fatal("initial load never happened")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatchService_UnsupportedFile(t *testing.T) {
	networks, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)
	svc := NewWatchService(networks)

	path := writeReport(t, "model.txt", reportFixture)
	err = svc.Watch(context.Background(), path, func(*domain.ParsedNetwork) {})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
}
