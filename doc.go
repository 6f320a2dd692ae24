// Package nullscan provides tools for finding unexpected null values in
// JSON and YAML documents.
//
// nullscan walks a fully materialized document tree, builds a canonical
// path string for every nested position, and reports each null value
// whose path is not covered by a caller-supplied allow-list of optional
// paths.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Load JSON or YAML documents into an order-preserving node tree
//   - checker: Validate a document tree for disallowed null values
//   - walker: Generic breadth-first traversal with per-node handlers
//
// # Path Format
//
// Paths are built from the document root using a dot separator for object
// fields and bracketed decimal indices for array elements:
//
//	user.profile.age
//	user.friends[1].profile.address.zipcode
//	items[0].price
//
// The root has the empty path; the leading dot is omitted for top-level
// fields. Object keys are not escaped, so a key containing "." or "["
// produces a deterministic but ambiguous path. Allow-list entries are
// compared by exact string equality against these paths.
//
// # Quick Start
//
// Check a document from a file:
//
//	import "github.com/erraggy/nullscan/checker"
//
//	result, err := checker.CheckWithOptions(
//		checker.WithFilePath("payload.json"),
//		checker.WithOptionalPaths([]string{"user.profile.address.city"}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, path := range result.InvalidFields {
//			fmt.Printf("unexpected null at %s\n", path)
//		}
//	}
//
// Check an already-unmarshaled value:
//
//	result, err := checker.CheckValue(map[string]any{
//		"a": 1,
//		"b": nil,
//	}, nil)
//	// result.InvalidFields == []string{"b"}
//
// # Command-Line Interface
//
// In addition to the library packages, nullscan provides a CLI:
//
//	# Check a document for disallowed nulls
//	nullscan check --optional user.profile.address.city payload.json
//
//	# Structural summary of a document
//	nullscan parse payload.yaml
//
//	# List every path in a document
//	nullscan paths --nulls-only payload.json
//
// Install the CLI:
//
//	go install github.com/erraggy/nullscan/cmd/nullscan@latest
//
// # Resource Limits
//
// Traversal is guarded against pathological input by node-count and depth
// limits. Exceeding a limit surfaces as a *scanerrors.ResourceLimitError
// rather than looping indefinitely; see the scanerrors package for the
// full error taxonomy.
//
// # Concurrency
//
// Document trees are immutable after parsing. Concurrent checks of the
// same tree are safe with no locking; each call uses its own work queue
// and produces a fresh result.
package nullscan
