// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the ghpulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitHubClient) *server.MCPServer {
	s := server.NewMCPServer(
		"GitHub Profile Pulse Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	handleArg := mcp.WithString("handle", mcp.Description("GitHub account handle, with or without a leading '@'."), mcp.Required())

	// --- 1. Tool: get_profile ---
	s.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Fetch a GitHub account's profile, repositories, public events and 30-day commit histogram."),
		handleArg,
	), h.handleGetProfile)

	// --- 2. Tool: get_commit_histogram ---
	s.AddTool(mcp.NewTool("get_commit_histogram",
		mcp.WithDescription("Count pushed commits per calendar day over the last 30 days, oldest day first."),
		handleArg,
		mcp.WithString("timezone", mcp.Description("IANA time zone used to assign events to days (defaults to the server's).")),
	), h.handleGetCommitHistogram)

	// --- 3. Tool: get_repositories ---
	s.AddTool(mcp.NewTool("get_repositories",
		mcp.WithDescription("List the account's most recently updated repositories."),
		handleArg,
		mcp.WithNumber("limit", mcp.Description("Number of repositories to return (default 8).")),
	), h.handleGetRepositories)

	// --- 4. Tool: get_activity ---
	s.AddTool(mcp.NewTool("get_activity",
		mcp.WithDescription("Return the commit histogram together with the most recent public events."),
		handleArg,
		mcp.WithNumber("limit", mcp.Description("Number of timeline events to return (default 10).")),
	), h.handleGetActivity)

	return s
}

// StartMCPServer starts the ghpulse MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitHubClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
