package checker

import (
	"fmt"

	"github.com/erraggy/nullscan/internal/options"
	"github.com/erraggy/nullscan/parser"
)

// Option is a function that configures a check operation
type Option func(*checkConfig) error

// checkConfig holds configuration for a check operation
type checkConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	document *parser.Node
	value    *any

	// Configuration options
	optionalPaths   []string
	includeWarnings bool
	strictMode      bool
	escapedPaths    bool
	maxNodes        int
	maxDepth        int
	userAgent       string
	logger          parser.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*checkConfig, error) {
	cfg := &checkConfig{
		// Set defaults to match Checker defaults
		includeWarnings: true,
		strictMode:      false,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithParsed, WithDocument, or WithValue)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil, cfg.document != nil, cfg.value != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CheckWithOptions checks a document using functional options. This
// combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := checker.CheckWithOptions(
//	    checker.WithFilePath("payload.json"),
//	    checker.WithOptionalPaths("user.profile.address.city"),
//	)
func CheckWithOptions(opts ...Option) (*CheckResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("checker: invalid options: %w", err)
	}

	c := &Checker{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
		EscapedPaths:    cfg.escapedPaths,
		MaxNodes:        cfg.maxNodes,
		MaxDepth:        cfg.maxDepth,
		UserAgent:       cfg.userAgent,
		Logger:          cfg.logger,
	}

	// Route to the appropriate check method based on input source.
	// Pre-parsed input is checked first as the high-performance path.
	switch {
	case cfg.parsed != nil:
		return c.CheckParsed(*cfg.parsed, cfg.optionalPaths)
	case cfg.document != nil:
		return c.Check(cfg.document, cfg.optionalPaths)
	case cfg.value != nil:
		return c.CheckValue(*cfg.value, cfg.optionalPaths)
	default:
		// cfg.filePath must be non-nil here (validated by applyOptions)
		return c.CheckPath(*cfg.filePath, cfg.optionalPaths)
	}
}

// WithFilePath specifies a file path, URL, or "-" (stdin) as the input source
func WithFilePath(path string) Option {
	return func(cfg *checkConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *checkConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithDocument specifies a document tree as the input source
func WithDocument(root *parser.Node) Option {
	return func(cfg *checkConfig) error {
		cfg.document = root
		return nil
	}
}

// WithValue specifies a generic Go value as the input source. The value
// is converted with parser.FromValue before checking.
func WithValue(v any) Option {
	return func(cfg *checkConfig) error {
		cfg.value = &v
		return nil
	}
}

// WithOptionalPaths sets the allow-list of paths where null values are
// permitted. Repeated calls accumulate.
func WithOptionalPaths(paths ...string) Option {
	return func(cfg *checkConfig) error {
		cfg.optionalPaths = append(cfg.optionalPaths, paths...)
		return nil
	}
}

// WithIncludeWarnings enables or disables advisory warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode enables or disables reporting of optional paths that
// matched no null value
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithEscapedPaths enables escaping of "."/"["/"\\" in object keys when
// building paths
// Default: false (keys are joined verbatim)
func WithEscapedPaths(enabled bool) Option {
	return func(cfg *checkConfig) error {
		cfg.escapedPaths = enabled
		return nil
	}
}

// WithMaxNodes caps the number of nodes visited in one check.
// Non-positive values keep the default.
func WithMaxNodes(n int) Option {
	return func(cfg *checkConfig) error {
		if n > 0 {
			cfg.maxNodes = n
		}
		return nil
	}
}

// WithMaxDepth caps container nesting depth.
// Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(cfg *checkConfig) error {
		if depth > 0 {
			cfg.maxDepth = depth
		}
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *checkConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger for debug output
// Default: no-op logger
func WithLogger(logger parser.Logger) Option {
	return func(cfg *checkConfig) error {
		cfg.logger = logger
		return nil
	}
}
