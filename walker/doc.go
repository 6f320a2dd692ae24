// Package walker provides breadth-first traversal over parsed documents
// with handler callbacks for objects, arrays, child values, and nulls.
//
// Traversal starts at the document root and visits children level by
// level in a FIFO queue, so siblings are always visited before any of
// their descendants. Handlers receive a WalkContext carrying the node's
// dotted path (for example "user.friends[1].profile.age"), its key or
// index, and its depth, and return an Action to continue, skip the
// node's children, or stop the walk entirely.
//
// A nil, null, or scalar root produces no visits: only container
// children are ever classified.
//
// Walks are bounded by a node budget and a nesting-depth limit;
// exceeding either returns a *scanerrors.ResourceLimitError.
package walker
