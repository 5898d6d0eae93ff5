package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydraworks-labs/inpsheet-cli/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpFile string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can load
and query .inp report files.

By default, the server communicates over stdio using JSON-RPC. Use
--port to start an HTTP server instead. Use --file to preload a report
so its sections are available as resources immediately.`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVar(&mcpPort, "port", 0, "serve over HTTP on this port instead of stdio")
	mcpServeCmd.Flags().StringVar(&mcpFile, "file", "", "report file to preload")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{Network: networkService}
	if exporters != nil {
		ports.Export = exporters["csv"]
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	ctx := cmd.Context()
	if mcpFile != "" {
		if err := server.Preload(ctx, mcpFile); err != nil {
			return fmt.Errorf("preloading %s: %w", mcpFile, err)
		}
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf("localhost:%d", mcpPort)
		cmd.Printf("Starting MCP server on http://%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}
	return server.Run(ctx)
}
