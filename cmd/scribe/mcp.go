package main

import (
	"log"
	"os"

	"github.com/spetersoncode/scribe/mcp"
	"github.com/spf13/cobra"
)

// version is reported to MCP clients.
var version = "dev"

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the Model Context Protocol (MCP) server",
		Long: `Serves the blog pipelines as MCP tools over stdin/stdout.
This allows AI agents (like Claude Desktop) to request blog posts as a tool call.

Tools:
- write_blog: generate a post for a topic
- list_variants: list the available pipeline variants`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.build(a.cfg, a.logger)
			if err != nil {
				return err
			}

			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			a.logger.Info("starting MCP server", "transport", "stdio", "variants", reg.Names())

			return mcp.ServeStdio(reg,
				mcp.WithName("scribe"),
				mcp.WithVersion(version),
				mcp.WithLogger(a.logger),
			)
		},
	}
}
