package checker

import (
	"fmt"

	"github.com/erraggy/nullscan/internal/issues"
	"github.com/erraggy/nullscan/internal/severity"
	"github.com/erraggy/nullscan/parser"
	"github.com/erraggy/nullscan/walker"
)

// Severity indicates the severity level of a check issue
type Severity = severity.Severity

const (
	// SeverityError indicates a null value that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a permitted null or other advisory finding
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 10
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 10
)

// Issue represents a single check finding
type Issue = issues.Issue

// Checker scans parsed documents for null values that are not covered
// by an allow-list of optional paths.
type Checker struct {
	// IncludeWarnings determines whether permitted-null warnings are kept
	// in the result
	IncludeWarnings bool
	// StrictMode additionally reports optional paths that matched no null
	// value as informational issues
	StrictMode bool
	// EscapedPaths makes path construction escape "."/"["/"\\" in object
	// keys, so keys containing those characters can be allow-listed
	// unambiguously. Off by default: paths are joined verbatim.
	EscapedPaths bool
	// MaxNodes caps the number of nodes visited in one check.
	// Zero keeps the walker default.
	MaxNodes int
	// MaxDepth caps container nesting depth. Zero keeps the walker default.
	MaxDepth int
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to nullscan's own if not set.
	UserAgent string
	// Logger receives debug output. Defaults to a no-op logger.
	Logger parser.Logger
}

// New creates a new Checker with default settings.
func New() *Checker {
	return &Checker{
		IncludeWarnings: true,
		StrictMode:      false,
	}
}

func (c *Checker) log() parser.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return parser.NopLogger{}
}

// Check scans a document tree breadth-first and records the path of
// every null value that is not covered by optionalPaths. A nil, null,
// or scalar root is vacuously valid: only members and elements are ever
// classified. Optional paths that match nothing are ignored (reported
// as info issues in strict mode); duplicates in optionalPaths have no
// effect.
//
// The only error return is a *scanerrors.ResourceLimitError from the
// traversal guards. Disallowed nulls are findings, not errors.
func (c *Checker) Check(root *parser.Node, optionalPaths []string) (*CheckResult, error) {
	result := &CheckResult{
		Errors:   make([]Issue, 0, defaultErrorCapacity),
		Warnings: make([]Issue, 0, defaultWarningCapacity),
		Document: root,
	}

	allowed := make(map[string]struct{}, len(optionalPaths))
	for _, p := range optionalPaths {
		allowed[p] = struct{}{}
	}
	matched := make(map[string]struct{}, len(allowed))

	opts := []walker.Option{
		walker.WithNullHandler(func(wc *walker.WalkContext) walker.Action {
			if _, ok := allowed[wc.Path]; ok {
				matched[wc.Path] = struct{}{}
				c.log().Debug("permitted null", "path", wc.Path)
				result.Warnings = append(result.Warnings, Issue{
					Path:     wc.Path,
					Message:  "null value permitted by optional path",
					Severity: SeverityWarning,
					Key:      wc.Key,
				})
				return walker.Continue
			}
			result.InvalidFields = append(result.InvalidFields, wc.Path)
			result.Errors = append(result.Errors, Issue{
				Path:     wc.Path,
				Message:  "null value is not permitted",
				Severity: SeverityError,
				Key:      wc.Key,
			})
			return walker.Continue
		}),
	}
	if c.MaxNodes > 0 {
		opts = append(opts, walker.WithMaxNodes(c.MaxNodes))
	}
	if c.MaxDepth > 0 {
		opts = append(opts, walker.WithMaxDepth(c.MaxDepth))
	}
	if c.EscapedPaths {
		opts = append(opts, walker.WithEscapedKeys())
	}

	if err := walker.WalkNode(root, opts...); err != nil {
		return nil, err
	}

	if c.StrictMode {
		// Report unmatched entries in their original order, once each.
		seen := make(map[string]struct{}, len(allowed))
		for _, p := range optionalPaths {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			if _, ok := matched[p]; !ok {
				result.Warnings = append(result.Warnings, Issue{
					Path:     p,
					Message:  "optional path matched no null value",
					Severity: SeverityInfo,
				})
			}
		}
	}

	result.Stats = parser.GetDocumentStats(root)
	result.finalize(c.IncludeWarnings)
	return result, nil
}

// CheckValue converts a generic Go value to a document tree and checks
// it. Map keys are ordered lexicographically during conversion, so
// results are deterministic for the same input.
func (c *Checker) CheckValue(v any, optionalPaths []string) (*CheckResult, error) {
	root, err := parser.FromValue(v)
	if err != nil {
		return nil, fmt.Errorf("checker: failed to convert value: %w", err)
	}
	return c.Check(root, optionalPaths)
}

// CheckParsed checks an already parsed document, carrying the parse
// result's provenance (source path, format, size, load time) and
// surfacing its warnings as check warnings.
func (c *Checker) CheckParsed(parseResult parser.ParseResult, optionalPaths []string) (*CheckResult, error) {
	result, err := c.Check(parseResult.Document, optionalPaths)
	if err != nil {
		return nil, err
	}

	result.SourcePath = parseResult.SourcePath
	result.SourceFormat = parseResult.SourceFormat
	result.SourceSize = parseResult.SourceSize
	result.LoadTime = parseResult.LoadTime
	result.Stats = parseResult.Stats

	if c.IncludeWarnings {
		for _, warning := range parseResult.Warnings {
			result.Warnings = append(result.Warnings, Issue{
				Path:     "document",
				Message:  warning,
				Severity: SeverityWarning,
			})
		}
		result.WarningCount = len(result.Warnings)
	}
	return result, nil
}

// Check scans a document tree with default settings. See Checker.Check.
func Check(root *parser.Node, optionalPaths []string) (*CheckResult, error) {
	return New().Check(root, optionalPaths)
}

// CheckValue checks a generic Go value with default settings. See
// Checker.CheckValue.
func CheckValue(v any, optionalPaths []string) (*CheckResult, error) {
	return New().CheckValue(v, optionalPaths)
}

// CheckPath parses a document from a file path, URL, or "-" (stdin) and
// checks it.
func (c *Checker) CheckPath(docPath string, optionalPaths []string) (*CheckResult, error) {
	p := parser.New()
	p.Logger = c.Logger
	if c.UserAgent != "" {
		p.UserAgent = c.UserAgent
	}

	parseResult, err := p.Parse(docPath)
	if err != nil {
		return nil, fmt.Errorf("checker: failed to parse document: %w", err)
	}
	return c.CheckParsed(*parseResult, optionalPaths)
}
