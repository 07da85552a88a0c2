package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirvinkotaru/techassist/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI agents can ask the
playbook assistant about work orders.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead. HTTP mode also serves
/healthz and Prometheus metrics at /metrics.

Examples:
  # Stdio mode (default)
  techassist mcp serve

  # HTTP mode
  techassist mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	ports := &mcp.Ports{
		Assistant:  assistantService,
		Catalog:    playbookCatalog,
		WorkOrders: workOrderService,
	}
	if toolMetrics != nil {
		ports.Metrics = toolMetrics
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return nil, err
	}
	if metricsHandler != nil {
		server.SetMetricsHandler(metricsHandler)
	}
	return server, nil
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	stop := startScheduler(cmd.Context())
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s/mcp\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
