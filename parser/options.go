package parser

import (
	"net/http"

	"github.com/erraggy/nullscan/internal/options"
)

// Option is a function that configures a parse operation.
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation.
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	content  []byte

	// Configuration options
	logger      Logger
	userAgent   string
	httpClient  *http.Client
	maxFileSize int64
	maxDepth    int
	maxNodes    int
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath or WithContent)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.content != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseWithOptions parses a document using functional options for input
// source selection and configuration.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("payload.json"),
//	    parser.WithMaxDepth(64),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := New()
	p.Logger = cfg.logger
	p.HTTPClient = cfg.httpClient
	p.MaxFileSize = cfg.maxFileSize
	p.MaxDepth = cfg.maxDepth
	p.MaxNodes = cfg.maxNodes
	if cfg.userAgent != "" {
		p.UserAgent = cfg.userAgent
	}

	if cfg.filePath != nil {
		return p.Parse(*cfg.filePath)
	}
	return p.ParseBytes(cfg.content)
}

// WithFilePath specifies a file path, URL, or "-" (stdin) as the input source.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithContent specifies in-memory document content as the input source.
func WithContent(content []byte) Option {
	return func(cfg *parseConfig) error {
		cfg.content = content
		return nil
	}
}

// WithLogger sets the structured logger used during parsing.
// Default: logging disabled.
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithUserAgent sets the User-Agent string for URL fetches.
// Default: "" (uses the parser default).
func WithUserAgent(ua string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for URL fetches.
// Default: a client with a 30-second timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithMaxFileSize sets the maximum source size in bytes.
// If size is not positive, it is silently ignored and the default (10MB) is kept.
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size > 0 {
			cfg.maxFileSize = size
		}
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth accepted while decoding.
// If depth is not positive, it is silently ignored and the default (1000) is kept.
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if depth > 0 {
			cfg.maxDepth = depth
		}
		return nil
	}
}

// WithMaxNodes sets the maximum number of nodes produced while decoding,
// counting YAML alias expansions.
// If n is not positive, it is silently ignored and the default (1,000,000) is kept.
func WithMaxNodes(n int) Option {
	return func(cfg *parseConfig) error {
		if n > 0 {
			cfg.maxNodes = n
		}
		return nil
	}
}
