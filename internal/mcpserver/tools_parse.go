package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Doc docInput `json:"doc" jsonschema:"The document to parse"`
}

type parseOutput struct {
	Format      string   `json:"format"`
	ObjectCount int      `json:"object_count"`
	ArrayCount  int      `json:"array_count"`
	ScalarCount int      `json:"scalar_count"`
	NullCount   int      `json:"null_count"`
	NodeCount   int      `json:"node_count"`
	MaxDepth    int      `json:"max_depth"`
	SourceSize  int64    `json:"source_size"`
	Warnings    []string `json:"warnings,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Format:      result.SourceFormat.String(),
		ObjectCount: result.Stats.ObjectCount,
		ArrayCount:  result.Stats.ArrayCount,
		ScalarCount: result.Stats.ScalarCount,
		NullCount:   result.Stats.NullCount,
		NodeCount:   result.Stats.NodeCount(),
		MaxDepth:    result.Stats.MaxDepth,
		SourceSize:  result.SourceSize,
	}
	if len(result.Warnings) > 0 {
		output.Warnings = result.Warnings
	}

	return nil, output, nil
}
