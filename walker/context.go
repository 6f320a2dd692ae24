package walker

import "context"

// WalkContext provides contextual information about the current node
// being visited. It follows the http.Request pattern for context access.
type WalkContext struct {
	// Path is the canonical path to the current node.
	// Empty for the root container.
	Path string

	// Key is the object key that reached this node.
	// Empty for the root and for array elements.
	Key string

	// Index is the array index that reached this node.
	// -1 for the root and for object members.
	Index int

	// Depth is the number of path segments from the root.
	Depth int

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline
// propagation. Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// IsRoot returns true when the current node is the document root.
func (wc *WalkContext) IsRoot() bool {
	return wc.Path == ""
}

// IsElement returns true when the current node is an array element.
func (wc *WalkContext) IsElement() bool {
	return wc.Index >= 0
}
