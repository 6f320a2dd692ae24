package walker

import "github.com/erraggy/nullscan/parser"

// CollectPaths walks a document and returns the path of every child
// value in visitation order. The root itself has no path and is not
// included.
func CollectPaths(root *parser.Node, opts ...Option) ([]string, error) {
	var paths []string
	opts = append(opts, WithValueHandler(func(wc *WalkContext, _ *parser.Node) Action {
		paths = append(paths, wc.Path)
		return Continue
	}))
	if err := WalkNode(root, opts...); err != nil {
		return nil, err
	}
	return paths, nil
}

// CollectNulls walks a document and returns the path of every null
// child value in visitation order.
func CollectNulls(root *parser.Node, opts ...Option) ([]string, error) {
	var paths []string
	opts = append(opts, WithNullHandler(func(wc *WalkContext) Action {
		paths = append(paths, wc.Path)
		return Continue
	}))
	if err := WalkNode(root, opts...); err != nil {
		return nil, err
	}
	return paths, nil
}
