package checker

import (
	"time"

	"github.com/erraggy/nullscan/parser"
)

// CheckResult contains the results of checking a document for null values
type CheckResult struct {
	// Valid is true if no disallowed nulls were found (warnings are allowed)
	Valid bool
	// InvalidFields contains the path of every disallowed null, in
	// breadth-first visitation order
	InvalidFields []string
	// Errors contains one issue per disallowed null
	Errors []Issue
	// Warnings contains advisory issues: permitted nulls that were
	// encountered, parser warnings, and (in strict mode) optional paths
	// that matched nothing
	Warnings []Issue
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats parser.DocumentStats
	// Document is the checked document tree
	Document *parser.Node
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is the original source path from the parsed document
	SourcePath string
}

// finalize computes counts and validity, and drops warnings when they
// are not wanted.
func (r *CheckResult) finalize(includeWarnings bool) {
	r.ErrorCount = len(r.Errors)
	r.WarningCount = len(r.Warnings)
	r.Valid = r.ErrorCount == 0

	if !includeWarnings {
		r.Warnings = nil
		r.WarningCount = 0
	}
}

// StatusReport is the wire form of a check outcome.
type StatusReport struct {
	Status        string   `json:"status" yaml:"status"`
	InvalidFields []string `json:"invalid_fields,omitempty" yaml:"invalid_fields,omitempty"`
}

// Report returns the wire form of the result: status "success" with no
// invalid fields, or status "error" with the offending paths in
// visitation order.
func (r *CheckResult) Report() StatusReport {
	if r.Valid {
		return StatusReport{Status: "success"}
	}
	return StatusReport{
		Status:        "error",
		InvalidFields: r.InvalidFields,
	}
}

// ToParseResult converts the CheckResult to a ParseResult for chaining
// with other packages. Issues are carried as string warnings with
// severity prefixes for programmatic filtering: "[error] path: message".
func (r *CheckResult) ToParseResult() *parser.ParseResult {
	warnings := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		warnings = append(warnings, "["+e.Severity.String()+"] "+e.String())
	}
	for _, w := range r.Warnings {
		warnings = append(warnings, "["+w.Severity.String()+"] "+w.String())
	}

	sourcePath := r.SourcePath
	if sourcePath == "" {
		sourcePath = "checker"
	}

	return &parser.ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: r.SourceFormat,
		Document:     r.Document,
		Warnings:     warnings,
		Stats:        r.Stats,
		LoadTime:     r.LoadTime,
		SourceSize:   r.SourceSize,
	}
}
