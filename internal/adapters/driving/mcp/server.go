package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for inpsheet. It keeps the most recently
// loaded report so resources can be read without re-parsing.
type Server struct {
	ports  *Ports
	server *mcp.Server

	mu      sync.RWMutex
	current *domain.ParsedNetwork
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "inpsheet",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Preload parses the report at path so resources are available before
// the first tool call.
func (s *Server) Preload(ctx context.Context, path string) error {
	_, err := s.load(ctx, path)
	return err
}

// load parses the report at path and caches the result.
func (s *Server) load(ctx context.Context, path string) (*domain.ParsedNetwork, error) {
	s.mu.RLock()
	if s.current != nil && s.current.Path == path {
		cached := s.current
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	network, err := s.ports.Network.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = network
	s.mu.Unlock()
	return network, nil
}

// loaded returns the cached report, or ErrNoReportLoaded.
func (s *Server) loaded() (*domain.ParsedNetwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoReportLoaded
	}
	return s.current, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
