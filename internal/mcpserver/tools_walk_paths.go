package mcpserver

import (
	"context"

	"github.com/erraggy/nullscan/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type walkPathsInput struct {
	Doc          docInput `json:"doc"                      jsonschema:"The document to walk"`
	NullsOnly    bool     `json:"nulls_only,omitempty"     jsonschema:"Return only paths holding null values"`
	EscapedPaths bool     `json:"escaped_paths,omitempty"  jsonschema:"Escape dots and brackets in object keys when building paths"`
	Offset       int      `json:"offset,omitempty"         jsonschema:"Skip the first N paths (for pagination)"`
	Limit        int      `json:"limit,omitempty"          jsonschema:"Maximum number of paths to return (default 100)"`
}

type walkPathsOutput struct {
	Total    int      `json:"total"`
	Returned int      `json:"returned"`
	Paths    []string `json:"paths,omitempty"`
}

func handleWalkPaths(_ context.Context, _ *mcp.CallToolRequest, input walkPathsInput) (*mcp.CallToolResult, walkPathsOutput, error) {
	result, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), walkPathsOutput{}, nil
	}

	var opts []walker.Option
	if input.EscapedPaths {
		opts = append(opts, walker.WithEscapedKeys())
	}

	var paths []string
	if input.NullsOnly {
		paths, err = walker.CollectNulls(result.Document, opts...)
	} else {
		paths, err = walker.CollectPaths(result.Document, opts...)
	}
	if err != nil {
		return errResult(err), walkPathsOutput{}, nil
	}

	output := walkPathsOutput{Total: len(paths)}
	output.Paths = paginate(paths, input.Offset, input.Limit)
	output.Returned = len(output.Paths)

	return nil, output, nil
}
