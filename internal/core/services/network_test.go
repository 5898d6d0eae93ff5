package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/inp"
	"github.com/hydraworks-labs/inpsheet-cli/internal/logger"
)

const reportFixture = `*** Branch Table ***

Branch  Name
30      J84
280     Outlet
`

func writeReport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNetworkService_Load(t *testing.T) {
	svc, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)

	path := writeReport(t, "model.inp", reportFixture)
	network, err := svc.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, network.Path)
	assert.NotEmpty(t, network.ID)
	assert.Contains(t, network.SectionNames(), "Branch_Table")
}

func TestNetworkService_Load_UnsupportedExtension(t *testing.T) {
	svc, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)

	path := writeReport(t, "model.txt", reportFixture)
	_, err = svc.Load(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
}

func TestNetworkService_Load_MissingFile(t *testing.T) {
	svc, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)

	_, err = svc.Load(context.Background(), filepath.Join(t.TempDir(), "absent.inp"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNetworkService_Parse_Empty(t *testing.T) {
	svc, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)

	network, err := svc.Parse(context.Background(), "no markers here\n")
	require.NoError(t, err)
	assert.True(t, network.IsEmpty())
	assert.NotEmpty(t, network.ID)
}

func TestNetworkService_Parse_VerboseLogging(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	svc, err := NewNetworkService(inp.Options{})
	require.NoError(t, err)

	_, err = svc.Parse(context.Background(), reportFixture)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "=== Report Parsing ===")
	assert.Contains(t, out, "[INFO] parsed 1 sections")
}

func TestNewNetworkService_BadMarker(t *testing.T) {
	_, err := NewNetworkService(inp.Options{SectionMarker: `^---$`})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
