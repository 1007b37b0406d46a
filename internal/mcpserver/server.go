// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes variantform operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/variantform/variantform"
)

const serverInstructions = `variantform MCP server: inspects per-variant overrides of declared config surfaces and resolves the effective files for any variant.

Tools never write to the project. Every call re-reads .variantform.yaml and the base tree.

Configuration: defaults are configurable via VARIANTFORM_* environment variables set in your MCP client config.

Key settings:
- VARIANTFORM_PROJECT (default: .) project root used when a tool call omits "project"
- VARIANTFORM_MAX_DEPTH (default: 10) directory depth for glob surface expansion
- VARIANTFORM_STALE_KEYS (default: recursive) stale key detection, recursive or top-level
- VARIANTFORM_DIFF_PATCH (default: false) include text patches in diff output
- VARIANTFORM_VALIDATE_LIMIT (default: 100) default page size for validate issues
- VARIANTFORM_MAX_INLINE_SIZE (default: 1048576) maximum preview content in bytes`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "variantform", Version: variantform.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "surfaces",
		Description: "List the surfaces declared in .variantform.yaml with their format and merge strategy. Use expand=true to expand glob patterns into the concrete base files they match.",
	}, handleSurfaces)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve the effective content of a variant's surfaces. JSON and YAML surfaces with the merge strategy combine base and override with RFC 7396 JSON Merge Patch; other surfaces use the override verbatim. Use surface to resolve a single file.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "List the surfaces a variant overrides and the top-level keys each override sets. Overrides that replace a whole file report \"(entire file)\". Use patch=true for a text patch from base to resolved content.",
	}, handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Summarize every variant: the override files matching a declared surface and the violations that match none.",
	}, handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check every variant for stale keys, parse errors, extraneous files, non-object merge overrides and empty overrides. An empty issue list means the project is consistent. Use offset/limit to paginate through issues.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Preview an override without writing it: resolves the given content against the current base of a surface and reports the issues validate would raise for it.",
	}, handlePreview)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ValidateLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ValidateLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
