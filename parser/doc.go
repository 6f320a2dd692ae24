// Package parser loads JSON and YAML documents into an order-preserving
// node tree suitable for null-value checking.
//
// Documents are decoded through the YAML machinery (JSON is a YAML
// subset), which keeps object members in source order. The resulting
// [Node] tree is a closed tagged variant: every position is an object,
// an array, or a scalar (string, number, boolean, null), classified once
// at parse time.
//
// # Input Sources
//
// [Parser.Parse] accepts a file path, an http(s) URL, or "-" for stdin.
// [Parser.ParseBytes] parses in-memory content, and [FromValue] converts
// an already-unmarshaled generic value (map[string]any, []any, scalars).
//
// # Functional Options
//
// [ParseWithOptions] combines source selection and configuration:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("payload.yaml"),
//	    parser.WithLogger(parser.NewSlogAdapter(nil)),
//	)
//
// # Warnings and Limits
//
// Duplicate object keys are tolerated (the last value wins, keeping the
// first key's position) and reported in ParseResult.Warnings with the
// offending path. Source size and nesting depth are bounded; exceeding a
// bound returns a *scanerrors.ResourceLimitError.
package parser
