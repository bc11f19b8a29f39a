package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrec/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can request
recommendations and read documents.

Tools:
  recommend     - bands for a document index
  get_document  - metadata and text of a document

Resources:
  docrec://documents          - the document table
  docrec://documents/{index}  - the text of one document

By default the server speaks JSON-RPC over stdio. Use --port to serve
HTTP instead; HTTP requests are rate limited (--rate, --burst).

Examples:
  # Stdio mode
  docrec mcp serve

  # HTTP mode
  docrec mcp serve --port 8080 --rate 5`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRequestsPerSecond, "HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultBurst, "HTTP request burst size")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	perSecond, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}
	burst, err := cmd.Flags().GetInt("burst")
	if err != nil {
		return fmt.Errorf("getting burst flag: %w", err)
	}

	ctx := commandContext(cmd)
	if _, err := loadedCorpus(ctx); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Recommend: services.Recommend,
		Corpus:    services.Corpus,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		server.SetRateLimit(perSecond, burst)
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
