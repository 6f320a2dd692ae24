// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes nullscan capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/nullscan"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `nullscan MCP server — checks JSON and YAML documents for null values that are not explicitly permitted.

Configuration: All defaults are configurable via NULLSCAN_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- NULLSCAN_CACHE_FILE_TTL (default: 15m) — cache TTL for local files
- NULLSCAN_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched documents
- NULLSCAN_CACHE_ENABLED (default: true) — disable document caching entirely
- NULLSCAN_MAX_INLINE_SIZE (default: 4MiB) — maximum inline content size
- NULLSCAN_RESULT_LIMIT (default: 100) — default result limit for list output
- NULLSCAN_CHECK_STRICT (default: false) — report unmatched optional paths by default
- NULLSCAN_CHECK_NO_WARNINGS (default: false) — suppress warnings by default

Paths use dotted notation with bracketed indices, e.g. "user.friends[1].profile.age".

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "nullscan", Version: nullscan.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check a JSON or YAML document for null values that are not covered by an allow-list of optional paths. Returns the wire status (success/error), the offending paths in breadth-first order, and advisory warnings. Strict mode and warning suppression defaults are configurable via NULLSCAN_CHECK_STRICT and NULLSCAN_CHECK_NO_WARNINGS env vars.",
	}, handleCheck)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a JSON or YAML document. Returns a structural summary: detected format, object/array/scalar/null counts, maximum nesting depth, and any parse warnings such as duplicate object keys.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_paths",
		Description: "Walk a JSON or YAML document breadth-first and list the path of every value, or only null values with nulls_only=true. Paths use dotted notation with bracketed indices. Use offset/limit to paginate through results. Default limit is configurable via NULLSCAN_RESULT_LIMIT (default 100).",
	}, handleWalkPaths)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ResultLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ResultLimit
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

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
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

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
