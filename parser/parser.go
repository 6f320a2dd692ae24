package parser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/nullscan"
	"github.com/erraggy/nullscan/internal/pathutil"
	"github.com/erraggy/nullscan/scanerrors"
)

const (
	// defaultMaxFileSize is the maximum source size accepted (10MB).
	defaultMaxFileSize = 10 * 1024 * 1024
	// defaultMaxDepth is the maximum document nesting depth.
	defaultMaxDepth = 1000
	// defaultMaxNodes bounds total nodes produced while decoding. YAML
	// aliases expand in place, so a small source can materialize a much
	// larger tree than its byte size suggests.
	defaultMaxNodes = 1_000_000
	// defaultHTTPTimeout bounds URL fetches.
	defaultHTTPTimeout = 30 * time.Second
)

// StdinPath is the special source path that reads the document from stdin.
const StdinPath = "-"

// Parser loads JSON or YAML documents into an order-preserving node tree.
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "nullscan" if not set.
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with a 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger

	// Resource limits (0 means use default)

	// MaxFileSize is the maximum source size in bytes. Default: 10MB.
	MaxFileSize int64
	// MaxDepth is the maximum nesting depth accepted while decoding.
	// Default: 1000.
	MaxDepth int
	// MaxNodes is the maximum number of nodes produced while decoding,
	// counting alias expansions. Default: 1,000,000.
	MaxNodes int
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{
		UserAgent: nullscan.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return defaultMaxFileSize
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return defaultMaxDepth
}

func (p *Parser) maxNodes() int {
	if p.MaxNodes > 0 {
		return p.MaxNodes
	}
	return defaultMaxNodes
}

// ParseResult contains a loaded document and provenance about its source.
type ParseResult struct {
	// SourcePath is the file path, URL, or "-" the document came from.
	// Empty for documents parsed from in-memory content.
	SourcePath string
	// SourceFormat is the detected serialization format.
	SourceFormat SourceFormat
	// Document is the root of the parsed node tree.
	Document *Node
	// Warnings contains non-fatal findings from parsing, such as
	// duplicate object keys, each with the offending path.
	Warnings []string
	// Stats contains statistical information about the document.
	Stats DocumentStats
	// LoadTime is the time taken to load the source data.
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes.
	SourceSize int64
}

// Parse loads and parses a document from a file path, an http(s) URL, or
// stdin when docPath is "-".
func (p *Parser) Parse(docPath string) (*ParseResult, error) {
	var (
		data     []byte
		err      error
		format   SourceFormat
		loadTime time.Duration
	)

	loadStart := time.Now()
	switch {
	case docPath == StdinPath:
		data, err = io.ReadAll(io.LimitReader(os.Stdin, p.maxFileSize()+1))
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, &scanerrors.ParseError{Path: docPath, Message: "failed to read stdin", Cause: err}
		}
		format = detectFormatFromContent(data)
	case isURL(docPath):
		var contentType string
		data, contentType, err = p.fetchURL(docPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(docPath, contentType)
	default:
		data, err = os.ReadFile(docPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, &scanerrors.ParseError{Path: docPath, Message: "failed to read file", Cause: err}
		}
		format = detectFormatFromPath(docPath)
	}

	if int64(len(data)) > p.maxFileSize() {
		return nil, &scanerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       int64(len(data)),
			Path:         docPath,
		}
	}

	result, err := p.ParseBytes(data)
	if err != nil {
		// Attach the source path to parse failures for context.
		var parseErr *scanerrors.ParseError
		if errors.As(err, &parseErr) && parseErr.Path == "" {
			parseErr.Path = docPath
		}
		return nil, err
	}

	result.SourcePath = docPath
	result.LoadTime = loadTime
	result.SourceSize = int64(len(data))
	if format != SourceFormatUnknown {
		result.SourceFormat = format
	}

	p.log().Debug("parsed document",
		"path", docPath,
		"format", result.SourceFormat.String(),
		"nodes", result.Stats.NodeCount(),
		"nulls", result.Stats.NullCount,
	)
	return result, nil
}

// ParseBytes parses a document from in-memory content. JSON is accepted
// through the YAML decoder (JSON is a YAML subset), which preserves
// object member order for both formats.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &scanerrors.ParseError{Message: "invalid document", Cause: err}
	}

	pb := pathutil.Get()
	defer pathutil.Put(pb)

	d := &decoder{
		maxDepth: p.maxDepth(),
		maxNodes: p.maxNodes(),
		path:     pb,
		logger:   p.log(),
	}
	doc, err := d.convert(&root)
	if err != nil {
		return nil, err
	}

	return &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		Document:     doc,
		Warnings:     d.warnings,
		Stats:        GetDocumentStats(doc),
		SourceSize:   int64(len(data)),
	}, nil
}

// fetchURL fetches content from a URL and returns the bytes and the
// Content-Type header.
func (p *Parser) fetchURL(urlStr string) ([]byte, string, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", &scanerrors.ParseError{Path: urlStr, Message: "invalid URL", Cause: err}
	}
	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = "nullscan"
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", &scanerrors.ParseError{Path: urlStr, Message: "failed to fetch URL", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &scanerrors.ParseError{
			Path:    urlStr,
			Message: fmt.Sprintf("unexpected HTTP status: %s", resp.Status),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.maxFileSize()+1))
	if err != nil {
		return nil, "", &scanerrors.ParseError{Path: urlStr, Message: "failed to read response body", Cause: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
