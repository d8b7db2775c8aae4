package mcp

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/huangsam/ghpulse/core"
	"github.com/huangsam/ghpulse/internal/contract"
	"github.com/huangsam/ghpulse/internal/outwriter"
	"github.com/huangsam/ghpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitHubClient
}

func (h *toolHandler) handleGetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.runSection(ctx, request, schema.FullSection, nil)
}

func (h *toolHandler) handleGetCommitHistogram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.runSection(ctx, request, schema.CommitsSection, func(cfg *contract.Config) error {
		tz := request.GetString("timezone", "")
		if tz == "" {
			return nil
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w", tz, err)
		}
		cfg.Location = loc
		return nil
	})
}

func (h *toolHandler) handleGetRepositories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.runSection(ctx, request, schema.ReposSection, func(cfg *contract.Config) error {
		if l := request.GetInt("limit", 0); l > 0 {
			cfg.RepoLimit = min(l, contract.MaxRepoLimit)
		}
		return nil
	})
}

func (h *toolHandler) handleGetActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.runSection(ctx, request, schema.ActivitySection, func(cfg *contract.Config) error {
		if l := request.GetInt("limit", 0); l > 0 {
			cfg.EventLimit = min(l, contract.MaxEventLimit)
		}
		return nil
	})
}

// runSection clones the base config, applies per-call overrides, fetches the
// report and returns the requested section as indented JSON.
// Query failures are tool errors carrying the user-facing message.
func (h *toolHandler) runSection(ctx context.Context, request mcp.CallToolRequest, section schema.ReportSection, override func(*contract.Config) error) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Handle = request.GetString("handle", "")
	cfg.Output = schema.JSONOut
	if override != nil {
		if err := override(cfg); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	handle, err := contract.NormalizeHandle(cfg.Handle)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid handle: %v", err)), nil
	}
	cfg.Handle = handle

	report, duration, err := core.GetProfileResults(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		qe := contract.AsQueryError(err)
		return mcp.NewToolResultError(fmt.Sprintf("%s [%s]", qe.Message(), qe.Kind)), nil
	}

	var buf bytes.Buffer
	if err := outwriter.WriteReportResults(&buf, report, cfg, section, duration); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
