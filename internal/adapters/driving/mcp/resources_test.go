package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	req := &mcp.ReadResourceRequest{}
	req.Params = &mcp.ReadResourceParams{URI: uri}
	return req
}

func TestServer_SectionsResource(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()

	t.Run("before any load", func(t *testing.T) {
		_, err := server.handleSectionsResource(ctx, readRequest(uriScheme+"sections"))
		assert.ErrorIs(t, err, ErrNoReportLoaded)
	})

	t.Run("after preload", func(t *testing.T) {
		require.NoError(t, server.Preload(ctx, "model.inp"))

		res, err := server.handleSectionsResource(ctx, readRequest(uriScheme+"sections"))
		require.NoError(t, err)
		require.Len(t, res.Contents, 1)

		var names []string
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &names))
		assert.Contains(t, names, "Branch_Table")
	})
}

func TestServer_SectionResource(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, server.Preload(ctx, "model.inp"))

	res, err := server.handleSectionResource(ctx, readRequest(uriScheme+"section/Branch_Table"))
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)

	var table TableOutput
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &table))
	assert.Equal(t, 1, table.Count)
}

func TestServer_SummaryResource(t *testing.T) {
	server, _ := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, server.Preload(ctx, "model.inp"))

	res, err := server.handleSummaryResource(ctx, readRequest(uriScheme+"summary"))
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "Branch_Table")
}
