package mcpserver

import (
	"context"

	"github.com/erraggy/nullscan/checker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type checkInput struct {
	Doc           docInput `json:"doc"                      jsonschema:"The document to check"`
	OptionalPaths []string `json:"optional_paths,omitempty" jsonschema:"Paths where null values are permitted, e.g. user.profile.address.city"`
	Strict        *bool    `json:"strict,omitempty"         jsonschema:"Also report optional paths that matched no null value"`
	NoWarnings    *bool    `json:"no_warnings,omitempty"    jsonschema:"Suppress warnings from output"`
	EscapedPaths  bool     `json:"escaped_paths,omitempty"  jsonschema:"Escape dots and brackets in object keys when building paths"`
	Offset        int      `json:"offset,omitempty"         jsonschema:"Skip the first N invalid fields (for pagination)"`
	Limit         int      `json:"limit,omitempty"          jsonschema:"Maximum number of invalid fields to return (default 100)"`
}

type checkIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type checkOutput struct {
	Status        string       `json:"status"`
	Valid         bool         `json:"valid"`
	ErrorCount    int          `json:"error_count"`
	WarningCount  int          `json:"warning_count,omitempty"`
	Returned      int          `json:"returned"`
	InvalidFields []string     `json:"invalid_fields,omitempty"`
	Warnings      []checkIssue `json:"warnings,omitempty"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.CheckStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.CheckNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	parseResult, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	opts := []checker.Option{
		checker.WithParsed(*parseResult),
		checker.WithOptionalPaths(input.OptionalPaths...),
	}
	if strict {
		opts = append(opts, checker.WithStrictMode(true))
	}
	if noWarnings {
		opts = append(opts, checker.WithIncludeWarnings(false))
	}
	if input.EscapedPaths {
		opts = append(opts, checker.WithEscapedPaths(true))
	}

	result, err := checker.CheckWithOptions(opts...)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{
		Status:     result.Report().Status,
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
	}

	output.InvalidFields = paginate(result.InvalidFields, input.Offset, input.Limit)
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = makeSlice[checkIssue](len(result.Warnings))
		for _, w := range result.Warnings {
			output.Warnings = append(output.Warnings, checkIssue{
				Path:     w.Path,
				Message:  w.Message,
				Severity: w.Severity.String(),
			})
		}
		output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
	}
	output.Returned = len(output.InvalidFields) + len(output.Warnings)

	return nil, output, nil
}
