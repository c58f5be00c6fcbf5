// ABOUTME: CLI command running the MCP server over stdio.
// ABOUTME: Lets MCP-compatible AI assistants read and write the diary.
package main

import (
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/gateway"
	"github.com/sehatsense/sehat/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol server",
	Long: `Start the MCP server on stdio for use with Claude Desktop or other
MCP-compatible AI assistants. Add to your assistant config:

  {
    "mcpServers": {
      "sehat": { "command": "sehat", "args": ["mcp"] }
    }
  }

Tools: get_profile, log_meal, list_meals, delete_meal.
Resources: sehat://profile, sehat://today, sehat://diary.

log_meal needs an AI API key; the other tools work without one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The gateway is optional here; read-only tools still work.
		var gw *gateway.Gateway
		if cfg.AI.APIKey != "" {
			gw, _ = newGateway()
		}

		server, err := mcp.NewServer(st, gw)
		if err != nil {
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
