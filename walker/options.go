package walker

import (
	"context"
	"fmt"

	"github.com/erraggy/nullscan/parser"
)

// Option configures the Walker.
type Option func(*Walker)

// WithObjectHandler sets the handler called when an object is expanded.
func WithObjectHandler(fn ObjectHandler) Option {
	return func(w *Walker) { w.onObject = fn }
}

// WithArrayHandler sets the handler called when an array is expanded.
func WithArrayHandler(fn ArrayHandler) Option {
	return func(w *Walker) { w.onArray = fn }
}

// WithValueHandler sets the handler called for every child value.
func WithValueHandler(fn ValueHandler) Option {
	return func(w *Walker) { w.onValue = fn }
}

// WithNullHandler sets the handler called for every null child.
func WithNullHandler(fn NullHandler) Option {
	return func(w *Walker) { w.onNull = fn }
}

// WithMaxNodes sets the maximum number of nodes visited in one walk.
// If n is not positive, it is silently ignored and the default
// (1,000,000) is kept.
func WithMaxNodes(n int) Option {
	return func(w *Walker) {
		if n > 0 {
			w.maxNodes = n
		}
	}
}

// WithMaxDepth sets the maximum container nesting depth.
// If depth is not positive, it is silently ignored and the default (1000) is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithEscapedKeys makes the walker escape "."/"["/"\\" in object keys
// when building paths, so literal dots in keys cannot be confused with
// path separators. By default keys are joined verbatim.
func WithEscapedKeys() Option {
	return func(w *Walker) { w.escapeKeys = true }
}

// WithUserContext sets the context made available to handlers via
// wc.Context().
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) { w.userCtx = ctx }
}

// WithParsed specifies a pre-parsed result to walk.
func WithParsed(result *parser.ParseResult) Option {
	return func(w *Walker) { w.parsed = result }
}

// WithNode specifies a document node to walk directly.
func WithNode(node *parser.Node) Option {
	return func(w *Walker) { w.node = node }
}

// Walk traverses a parsed document breadth-first, calling the configured
// handlers for each node event.
func Walk(result *parser.ParseResult, opts ...Option) error {
	if result == nil {
		return fmt.Errorf("walker: nil parse result")
	}
	return WalkNode(result.Document, opts...)
}

// WalkNode traverses a document tree breadth-first, calling the
// configured handlers for each node event. A nil, null, or scalar root
// yields no visits.
func WalkNode(root *parser.Node, opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(root)
}

// WalkWithOptions walks a document using functional options for input,
// handlers, and configuration. The input source is selected with
// WithParsed or WithNode.
//
// Example:
//
//	err := walker.WalkWithOptions(
//	    walker.WithParsed(result),
//	    walker.WithNullHandler(func(wc *walker.WalkContext) walker.Action {
//	        fmt.Println(wc.Path)
//	        return walker.Continue
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	if w.parsed == nil && w.node == nil {
		return fmt.Errorf("walker: no input source specified: use WithParsed or WithNode")
	}
	if w.parsed != nil && w.node != nil {
		return fmt.Errorf("walker: multiple input sources specified: use only one")
	}

	root := w.node
	if w.parsed != nil {
		root = w.parsed.Document
	}
	return w.walk(root)
}
