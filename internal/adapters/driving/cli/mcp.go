package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can evaluate
vector expressions and run practice questions.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead. HTTP requests can be rate
limited with --rate and --burst.

Tools: evaluate, angle, magnitude, new_question, check_answer
Resources: vecalc://instructions, vecalc://history, vecalc://history/{limit}

Examples:
  # Stdio mode (default)
  vecalc mcp serve

  # HTTP mode, at most 5 requests per second
  vecalc mcp serve --port 8080 --rate 5

Client configuration:
  {
    "mcpServers": {
      "vecalc": {
        "command": "/path/to/vecalc",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", 0, "HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", 10, "HTTP requests allowed in a burst above --rate")
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

	server, err := mcp.NewServer(&mcp.Ports{
		Calculator: calculatorService,
		Quiz:       quizService,
		History:    historyService,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()
	watchConfig(ctx)

	if port > 0 {
		server.SetRateLimit(perSecond, burst)
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
