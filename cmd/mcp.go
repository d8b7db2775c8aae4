package cmd

import (
	"github.com/huangsam/ghpulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the ghpulse MCP server",
	Long:  `Launch an MCP server that allows AI agents to look up GitHub profiles, repositories and activity via standard tools.`,
	Args:  cobra.NoArgs,
	// Query headers are suppressed per call since stdio carries the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, client)
	},
}
